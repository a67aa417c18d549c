// Package pricing derives rental charges from a car's stored weekly rate.
// Everything here is pure; rounding to currency precision is left to the
// presentation layer.
package pricing

import (
	"errors"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidRange = errors.New("return date must be after pickup date")
)

// DailyRate converts a weekly rate into a daily one.
func DailyRate(weekly float64) float64 {
	return weekly / 7
}

// DayCount parses pickup and return dates and returns the ceiling of the
// whole-day difference between them. A count of zero or less is an error.
func DayCount(pickup, ret string) (int, error) {
	start, err := time.Parse(DateLayout, pickup)
	if err != nil {
		return 0, ErrInvalidDate
	}
	end, err := time.Parse(DateLayout, ret)
	if err != nil {
		return 0, ErrInvalidDate
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days <= 0 {
		return 0, ErrInvalidRange
	}
	return days, nil
}

// TotalPrice is the daily rate multiplied by the day count, unrounded.
func TotalPrice(weekly float64, days int) float64 {
	return DailyRate(weekly) * float64(days)
}

// Quote validates the date range and prices it in one step.
func Quote(weekly float64, pickup, ret string) (days int, total float64, err error) {
	days, err = DayCount(pickup, ret)
	if err != nil {
		return 0, 0, err
	}
	return days, TotalPrice(weekly, days), nil
}
