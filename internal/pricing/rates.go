// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package pricing

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

//go:embed rates.json
var defaultSheet []byte

var ErrInvalidRate = errors.New("invalid rate")

// RateSheet is the on-disk form of the nightly rates, one entry per room
// category and occupant count. Prices are written the way they are
// printed on the price list, e.g. "1 230,00".
type RateSheet struct {
	Currency string                             `json:"currency"`
	Summer   map[RoomCategory]map[int]string    `json:"summer"`
	Winter   map[RoomCategory]map[int][3]string `json:"winter"`
}

// RateTable holds parsed nightly rates. It is never modified after
// construction and can be shared between goroutines.
type RateTable struct {
	currency string
	summer   map[RoomCategory][]decimal.Decimal
	winter   map[RoomCategory][][3]decimal.Decimal
}

// ParseRate converts a localized price string into an exact decimal.
// Whitespace (including non-breaking spaces used as thousands separator)
// is dropped and the decimal comma becomes a point.
func ParseRate(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		if r == ',' {
			return '.'
		}
		return r
	}, s)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidRate)
	}
	if strings.ContainsFunc(cleaned, func(r rune) bool { return r != '.' && (r < '0' || r > '9') }) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative value %q", ErrInvalidRate, s)
	}
	return d, nil
}

// DefaultRateTable returns the rates compiled into the binary.
func DefaultRateTable() (*RateTable, error) {
	return LoadRateSheet(strings.NewReader(string(defaultSheet)))
}

// LoadRateFile reads a rate sheet from path.
func LoadRateFile(path string) (*RateTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadRateSheet(f)
}

func LoadRateSheet(r io.Reader) (*RateTable, error) {
	var sheet RateSheet
	if err := json.NewDecoder(r).Decode(&sheet); err != nil {
		return nil, fmt.Errorf("decode rate sheet: %w", err)
	}
	return NewRateTable(sheet)
}

// NewRateTable parses and validates every entry of the sheet. Each room
// category must be priced for 1 up to its capacity in every period.
func NewRateTable(sheet RateSheet) (*RateTable, error) {
	table := &RateTable{
		currency: sheet.Currency,
		summer:   make(map[RoomCategory][]decimal.Decimal, len(capacities)),
		winter:   make(map[RoomCategory][][3]decimal.Decimal, len(capacities)),
	}
	if table.currency == "" {
		table.currency = "DH"
	}

	for room := range sheet.Summer {
		if !room.Valid() {
			return nil, fmt.Errorf("summer: unknown room category %q", room)
		}
	}
	for room := range sheet.Winter {
		if !room.Valid() {
			return nil, fmt.Errorf("winter: unknown room category %q", room)
		}
	}

	for _, room := range Categories() {
		capacity := room.Capacity()
		summer, winter := sheet.Summer[room], sheet.Winter[room]
		if len(summer) != capacity {
			return nil, fmt.Errorf("summer: %s needs rates for 1..%d persons, got %d", room, capacity, len(summer))
		}
		if len(winter) != capacity {
			return nil, fmt.Errorf("winter: %s needs rates for 1..%d persons, got %d", room, capacity, len(winter))
		}

		table.summer[room] = make([]decimal.Decimal, capacity)
		table.winter[room] = make([][3]decimal.Decimal, capacity)
		for persons := 1; persons <= capacity; persons++ {
			raw, ok := summer[persons]
			if !ok {
				return nil, fmt.Errorf("summer: %s has no rate for %d persons", room, persons)
			}
			rate, err := ParseRate(raw)
			if err != nil {
				return nil, fmt.Errorf("summer: %s/%d: %w", room, persons, err)
			}
			table.summer[room][persons-1] = rate

			periods, ok := winter[persons]
			if !ok {
				return nil, fmt.Errorf("winter: %s has no rate for %d persons", room, persons)
			}
			for i, raw := range periods {
				rate, err := ParseRate(raw)
				if err != nil {
					return nil, fmt.Errorf("winter: %s/%d/%s: %w", room, persons, SeasonPeriod{Season: SeasonWinter, Period: WinterPeriod(i)}.Label(), err)
				}
				table.winter[room][persons-1][i] = rate
			}
		}
	}
	return table, nil
}

func (t *RateTable) Currency() string {
	return t.currency
}

// Nightly looks up the rate for the exact occupant count. ok is false
// when the combination is not priced.
func (t *RateTable) Nightly(room RoomCategory, persons int, period SeasonPeriod) (decimal.Decimal, bool) {
	if persons < 1 {
		return decimal.Zero, false
	}
	if period.Season == SeasonSummer {
		rates := t.summer[room]
		if persons > len(rates) {
			return decimal.Zero, false
		}
		return rates[persons-1], true
	}
	rates := t.winter[room]
	if persons > len(rates) || period.Period < PeriodHigh || period.Period > PeriodLow {
		return decimal.Zero, false
	}
	return rates[persons-1][period.Period], true
}

// RateRow is one line of the printed price list.
type RateRow struct {
	Persons int
	High    decimal.Decimal
	Mid     decimal.Decimal
	Low     decimal.Decimal
	Summer  decimal.Decimal
}

// Rows returns the price list of a room ordered by occupant count.
func (t *RateTable) Rows(room RoomCategory) []RateRow {
	winter := t.winter[room]
	summer := t.summer[room]
	rows := make([]RateRow, 0, len(winter))
	for i := range winter {
		rows = append(rows, RateRow{
			Persons: i + 1,
			High:    winter[i][PeriodHigh],
			Mid:     winter[i][PeriodMid],
			Low:     winter[i][PeriodLow],
			Summer:  summer[i],
		})
	}
	return rows
}
