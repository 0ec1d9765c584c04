package times

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayUTC(t *testing.T) {
	ts := time.Date(2024, 3, 15, 22, 45, 12, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, time.Date(2024, 3, 15, 21, 0, 0, 0, time.UTC).Truncate(DayDuration), DayUTC(ts))
}

func TestMonthStartUTC(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), MonthStartUTC(ts))
}

func TestMonthEndUTC(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "31 day month",
			in:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "leap february",
			in:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthEndUTC(tt.in))
		})
	}
}

func TestParseYearMonth(t *testing.T) {
	got, err := ParseYearMonth("2024-03")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseYearMonth("March 2024")
	assert.Error(t, err)
}

func TestSameYearMonth(t *testing.T) {
	a := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameYearMonth(a, b))
	assert.False(t, SameYearMonth(a, c))
}
