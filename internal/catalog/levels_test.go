package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvilela/lumo/internal/catalog"
)

func TestLevelForXP_Thresholds(t *testing.T) {
	tests := []struct {
		totalXP  int
		expected int
	}{
		{totalXP: 0, expected: 1},
		{totalXP: 499, expected: 1},
		{totalXP: 500, expected: 2},
		{totalXP: 1499, expected: 2},
		{totalXP: 1500, expected: 3},
		{totalXP: 3000, expected: 4},
		{totalXP: 5000, expected: 5},
		{totalXP: 7500, expected: 6},
		{totalXP: 10500, expected: 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, catalog.LevelForXP(tt.totalXP), "totalXP=%d", tt.totalXP)
	}
}

func TestLevelForXP_Monotonic(t *testing.T) {
	prev := catalog.LevelForXP(0)
	for xp := 0; xp <= 30000; xp += 17 {
		level := catalog.LevelForXP(xp)
		assert.GreaterOrEqual(t, level, prev, "level must never decrease as XP grows (xp=%d)", xp)
		prev = level
	}
}

func TestXPForLevel_RoundTrip(t *testing.T) {
	for level := 1; level <= 20; level++ {
		threshold := catalog.XPForLevel(level)
		assert.Equal(t, level, catalog.LevelForXP(threshold), "level %d threshold", level)
		if threshold > 0 {
			assert.Equal(t, level-1, catalog.LevelForXP(threshold-1), "one XP below level %d threshold", level)
		}
	}
}

func TestXPForLevel_ClampsBelowOne(t *testing.T) {
	assert.Equal(t, 0, catalog.XPForLevel(0))
	assert.Equal(t, 0, catalog.XPForLevel(-3))
	assert.Equal(t, 0, catalog.XPForLevel(1))
}

func TestTitleForXP(t *testing.T) {
	tests := []struct {
		totalXP  int
		expected string
	}{
		{totalXP: 0, expected: "Novice"},
		{totalXP: 499, expected: "Novice"},
		{totalXP: 500, expected: "Apprentice"},
		{totalXP: 1999, expected: "Apprentice"},
		{totalXP: 2000, expected: "Journeyman"},
		{totalXP: 4999, expected: "Journeyman"},
		{totalXP: 5000, expected: "Expert"},
		{totalXP: 9999, expected: "Expert"},
		{totalXP: 10000, expected: "Master"},
		{totalXP: 19999, expected: "Master"},
		{totalXP: 20000, expected: "Sage"},
		{totalXP: 1000000, expected: "Sage"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, catalog.TitleForXP(tt.totalXP), "totalXP=%d", tt.totalXP)
	}
}
