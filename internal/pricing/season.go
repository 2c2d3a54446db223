// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package pricing

import "time"

type Season string

const (
	SeasonSummer Season = "summer"
	SeasonWinter Season = "winter"
)

// WinterPeriod indexes the three winter price columns.
type WinterPeriod int

const (
	PeriodHigh WinterPeriod = iota
	PeriodMid
	PeriodLow
)

// SeasonPeriod is either summer or one of the winter periods. Period is
// only meaningful when Season is SeasonWinter.
type SeasonPeriod struct {
	Season Season
	Period WinterPeriod
}

var (
	Summer     = SeasonPeriod{Season: SeasonSummer}
	WinterHigh = SeasonPeriod{Season: SeasonWinter, Period: PeriodHigh}
	WinterMid  = SeasonPeriod{Season: SeasonWinter, Period: PeriodMid}
	WinterLow  = SeasonPeriod{Season: SeasonWinter, Period: PeriodLow}
)

// Periods lists every period in display order.
func Periods() []SeasonPeriod {
	return []SeasonPeriod{WinterHigh, WinterMid, WinterLow, Summer}
}

// Label returns the stable identifier used in urls, json and translation keys.
func (s SeasonPeriod) Label() string {
	if s.Season == SeasonSummer {
		return "summer"
	}
	switch s.Period {
	case PeriodHigh:
		return "high"
	case PeriodMid:
		return "mid"
	default:
		return "low"
	}
}

// Range is the inclusive day/month span of the period.
func (s SeasonPeriod) Range() string {
	if s.Season == SeasonSummer {
		return "01/07 - 31/08"
	}
	switch s.Period {
	case PeriodHigh:
		return "18/12 - 16/04"
	case PeriodMid:
		return "17/04 - 30/06"
	default:
		return "01/09 - 17/12"
	}
}

func (s SeasonPeriod) String() string {
	if s.Season == SeasonSummer {
		return string(SeasonSummer)
	}
	return string(SeasonWinter) + "/" + s.Label()
}

// ResolveSeason maps a calendar date to its price period. The year is
// ignored and every date resolves to exactly one period.
func ResolveSeason(date time.Time) SeasonPeriod {
	month, day := date.Month(), date.Day()
	switch {
	case month == time.July || month == time.August:
		return Summer
	case month == time.September || month == time.October || month == time.November,
		month == time.December && day < 18:
		return WinterLow
	case month == time.April && day >= 17, month == time.May, month == time.June:
		return WinterMid
	case month == time.December && day >= 18,
		month == time.January || month == time.February || month == time.March,
		month == time.April && day <= 16:
		return WinterHigh
	}
	return WinterLow
}
