package tool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundToDate(t *testing.T) {
	in := time.Date(2020, time.December, 13, 13, 27, 28, 525, time.UTC)
	assert.Equal(t, time.Date(2020, time.December, 13, 0, 0, 0, 0, time.UTC), RoundToDate(in))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "те же сутки",
			from: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2020, 1, 1, 23, 59, 59, 0, time.UTC),
			want: 0,
		},
		{
			name: "високосный год",
			from: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			want: 366,
		},
		{
			name: "в обратную сторону",
			from: time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			want: -9,
		},
		{
			name: "от нулевой даты",
			from: time.Time{},
			to:   time.Date(1, 1, 2, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.from, tt.to))
		})
	}
}
