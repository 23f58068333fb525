package sqlite

import (
	"encoding/json"

	"github.com/Masterminds/squirrel"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// Helper functions shared across repository implementations

func encodeStrings(in []string) string {
	if in == nil {
		in = []string{}
	}
	b, err := json.Marshal(in)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeStrings(in string) []string {
	var out []string
	if err := json.Unmarshal([]byte(in), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
