package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	got := StartOfDay(time.Date(2025, 6, 15, 18, 42, 7, 123, loc))
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestSameDay(t *testing.T) {
	base := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(base, base.Add(14*time.Hour)))
	assert.False(t, SameDay(base, base.Add(24*time.Hour)))
	assert.False(t, SameDay(base, base.Add(-10*time.Hour)))
}

func TestDaysBetween(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "consecutive days",
			a:    time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC),
			b:    time.Date(2025, 6, 16, 0, 30, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "one week",
			a:    time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC),
			want: 7,
		},
		{
			name: "reversed order is negative",
			a:    time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			want: -1,
		},
		{
			// The day starting 2025-03-09 in New York is 23 hours long.
			name: "across spring forward",
			a:    time.Date(2025, 3, 9, 12, 0, 0, 0, ny),
			b:    time.Date(2025, 3, 10, 12, 0, 0, 0, ny),
			want: 1,
		},
		{
			// The day starting 2025-11-02 in New York is 25 hours long.
			name: "across fall back",
			a:    time.Date(2025, 11, 2, 12, 0, 0, 0, ny),
			b:    time.Date(2025, 11, 3, 12, 0, 0, 0, ny),
			want: 1,
		},
		{
			name: "week spanning spring forward",
			a:    time.Date(2025, 3, 7, 9, 0, 0, 0, ny),
			b:    time.Date(2025, 3, 14, 9, 0, 0, 0, ny),
			want: 7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b))
		})
	}
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	clk := &Fixed{Current: start}

	assert.Equal(t, start, clk.Now())

	clk.Advance(36 * time.Hour)
	assert.Equal(t, start.Add(36*time.Hour), clk.Now())

	clk.Set(start)
	assert.Equal(t, start, clk.Now())
}
