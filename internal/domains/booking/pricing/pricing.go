// Package pricing computes the amount due for a stay from a room rate card.
package pricing

import (
	"errors"
	"fmt"
	"math"

	roomModel "lodge/internal/domains/room/model"
)

const (
	Duration12h = 12
	Duration24h = 24
)

var (
	ErrInvalidDuration    = errors.New("duration_hours must be 12 or 24")
	ErrInvalidExtraAdults = errors.New("extra_adults must not be negative")
)

// Stay holds the priced parameters of a booking.
type Stay struct {
	DurationHours int
	ExtraAdults   int
}

// Calculate returns the base price of the duration tier plus the extra adult surcharge,
// rounded to centavos.
func Calculate(rates roomModel.RateCard, stay Stay) (float64, error) {
	var base float64

	switch stay.DurationHours {
	case Duration12h:
		base = rates.BasePrice12h
	case Duration24h:
		base = rates.BasePrice24h
	default:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDuration, stay.DurationHours)
	}

	if stay.ExtraAdults < 0 {
		return 0, ErrInvalidExtraAdults
	}

	total := base + float64(stay.ExtraAdults)*rates.ExtraAdultPrice

	return math.Round(total*100) / 100, nil //nolint:mnd
}
