package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day",
			from: time.Date(2025, time.October, 28, 9, 0, 0, 0, time.UTC),
			to:   time.Date(2025, time.October, 28, 23, 59, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "next day despite smaller clock time",
			from: time.Date(2025, time.October, 28, 23, 0, 0, 0, time.UTC),
			to:   time.Date(2025, time.October, 29, 1, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "across month boundary",
			from: time.Date(2025, time.October, 28, 9, 0, 0, 0, time.UTC),
			to:   time.Date(2025, time.November, 11, 9, 0, 0, 0, time.UTC),
			want: 14,
		},
		{
			name: "across year boundary",
			from: time.Date(2025, time.December, 30, 12, 0, 0, 0, time.UTC),
			to:   time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC),
			want: 3,
		},
		{
			name: "negative when to precedes from",
			from: time.Date(2025, time.November, 11, 9, 0, 0, 0, time.UTC),
			to:   time.Date(2025, time.November, 9, 9, 0, 0, 0, time.UTC),
			want: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.from, tt.to))
		})
	}
}
