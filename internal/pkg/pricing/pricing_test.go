package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayCount(t *testing.T) {
	tests := []struct {
		name    string
		pickup  string
		ret     string
		want    int
		wantErr error
	}{
		{"three days", "2024-01-01", "2024-01-04", 3, nil},
		{"single day", "2024-01-01", "2024-01-02", 1, nil},
		{"same day", "2024-01-01", "2024-01-01", 0, ErrInvalidRange},
		{"reversed", "2024-01-04", "2024-01-01", 0, ErrInvalidRange},
		{"bad pickup", "01/01/2024", "2024-01-04", 0, ErrInvalidDate},
		{"bad return", "2024-01-01", "tomorrow", 0, ErrInvalidDate},
		{"empty", "", "", 0, ErrInvalidDate},
		{"across month", "2024-02-27", "2024-03-02", 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayCount(tt.pickup, tt.ret)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalPrice_ExactBeforeRounding(t *testing.T) {
	// weekly rates priced per day over d days: (p/7) * d, no rounding
	cases := []struct {
		weekly float64
		days   int
	}{
		{0, 1},
		{700, 1},
		{3500, 4},
		{999.95, 13},
	}
	for _, c := range cases {
		assert.Equal(t, c.weekly/7*float64(c.days), TotalPrice(c.weekly, c.days))
	}
}

func TestQuote_WeeklyRateScenario(t *testing.T) {
	days, total, err := Quote(3500, "2024-03-01", "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 4, days)
	assert.Equal(t, 500.0, DailyRate(3500))
	assert.Equal(t, 2000.0, total)
}

func TestQuote_InvalidRange(t *testing.T) {
	_, _, err := Quote(3500, "2024-03-05", "2024-03-01")
	assert.ErrorIs(t, err, ErrInvalidRange)
}
