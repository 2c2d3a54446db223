// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package pricing

import (
	"testing"
	"time"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveSeason(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		expected SeasonPeriod
	}{
		{name: "first day of summer", date: day(2024, time.July, 1), expected: Summer},
		{name: "last day of summer", date: day(2024, time.August, 31), expected: Summer},
		{name: "first day of low", date: day(2024, time.September, 1), expected: WinterLow},
		{name: "last day of low", date: day(2024, time.December, 17), expected: WinterLow},
		{name: "first day of high", date: day(2024, time.December, 18), expected: WinterHigh},
		{name: "new year", date: day(2025, time.January, 1), expected: WinterHigh},
		{name: "leap day", date: day(2024, time.February, 29), expected: WinterHigh},
		{name: "last day of high", date: day(2024, time.April, 16), expected: WinterHigh},
		{name: "first day of mid", date: day(2024, time.April, 17), expected: WinterMid},
		{name: "last day of mid", date: day(2024, time.June, 30), expected: WinterMid},
		{name: "year is ignored", date: day(1999, time.May, 5), expected: WinterMid},
		{name: "time of day is ignored", date: time.Date(2024, time.December, 17, 23, 59, 0, 0, time.UTC), expected: WinterLow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveSeason(tc.date); got != tc.expected {
				t.Errorf("ResolveSeason(%s) = %s, expected %s", tc.date.Format(time.DateOnly), got, tc.expected)
			}
		})
	}
}

func TestResolveSeasonCoversLeapYear(t *testing.T) {
	expected := func(d time.Time) SeasonPeriod {
		md := int(d.Month())*100 + d.Day()
		switch {
		case md >= 701 && md <= 831:
			return Summer
		case md >= 901 && md <= 1217:
			return WinterLow
		case md >= 417 && md <= 630:
			return WinterMid
		default:
			return WinterHigh
		}
	}

	counts := map[SeasonPeriod]int{}
	for d := day(2024, time.January, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		got := ResolveSeason(d)
		if got != expected(d) {
			t.Errorf("ResolveSeason(%s) = %s, expected %s", d.Format(time.DateOnly), got, expected(d))
		}
		counts[got]++
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 366 {
		t.Errorf("resolved %d days, expected 366", total)
	}
	if counts[Summer] != 62 {
		t.Errorf("summer has %d days, expected 62", counts[Summer])
	}
}

func TestSeasonPeriodLabels(t *testing.T) {
	testCases := []struct {
		period SeasonPeriod
		label  string
		span   string
	}{
		{Summer, "summer", "01/07 - 31/08"},
		{WinterHigh, "high", "18/12 - 16/04"},
		{WinterMid, "mid", "17/04 - 30/06"},
		{WinterLow, "low", "01/09 - 17/12"},
	}
	for _, tc := range testCases {
		if got := tc.period.Label(); got != tc.label {
			t.Errorf("Label() = %q, expected %q", got, tc.label)
		}
		if got := tc.period.Range(); got != tc.span {
			t.Errorf("Range() = %q, expected %q", got, tc.span)
		}
	}
}
