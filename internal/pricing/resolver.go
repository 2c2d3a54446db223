// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

var seven = decimal.NewFromInt(7)

// StayQuery describes a requested stay. Only the calendar dates of
// CheckIn and CheckOut are used.
type StayQuery struct {
	Room      RoomCategory
	Occupants int
	CheckIn   time.Time
	CheckOut  time.Time
}

// PriceQuote is derived from a StayQuery and never persisted. Amounts are
// exact; round them only for display.
type PriceQuote struct {
	Room               RoomCategory
	Occupants          int
	EffectiveOccupants int
	Nights             int
	Period             SeasonPeriod
	Nightly            decimal.Decimal
	Weekly             decimal.Decimal
	Total              decimal.Decimal
	CapacityExceeded   bool
}

type Resolver struct {
	rates *RateTable
}

func NewResolver(rates *RateTable) *Resolver {
	return &Resolver{rates: rates}
}

func (r *Resolver) Rates() *RateTable {
	return r.rates
}

// Quote prices a stay. The period is taken from the check-in date for the
// whole stay. Groups larger than the room capacity are priced at the
// capacity rate and flagged. ok is false when the input is incomplete or
// the combination has no positive rate.
func (r *Resolver) Quote(q StayQuery) (*PriceQuote, bool) {
	if q.CheckIn.IsZero() || q.CheckOut.IsZero() || q.Occupants < 1 || !q.Room.Valid() {
		return nil, false
	}

	nights := Nights(q.CheckIn, q.CheckOut)
	if nights <= 0 {
		return nil, false
	}

	period := ResolveSeason(q.CheckIn)

	effective := q.Occupants
	exceeded := false
	if capacity := q.Room.Capacity(); effective > capacity {
		effective = capacity
		exceeded = true
	}

	nightly, ok := r.rates.Nightly(q.Room, effective, period)
	if !ok || !nightly.IsPositive() {
		return nil, false
	}

	return &PriceQuote{
		Room:               q.Room,
		Occupants:          q.Occupants,
		EffectiveOccupants: effective,
		Nights:             nights,
		Period:             period,
		Nightly:            nightly,
		Weekly:             nightly.Mul(seven),
		Total:              nightly.Mul(decimal.NewFromInt(int64(nights))),
		CapacityExceeded:   exceeded,
	}, true
}

// Nights counts calendar days between two dates, ignoring time of day
// and location offsets.
func Nights(checkIn, checkOut time.Time) int {
	in := dateOf(checkIn).Unix()
	out := dateOf(checkOut).Unix()
	return int((out - in) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
