// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package pricing

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseRate(t *testing.T) {
	testCases := []struct {
		input       string
		expected    string
		expectedErr bool
	}{
		{input: "1 230,00", expected: "1230.00"},
		{input: "485,50", expected: "485.50"},
		{input: "683,10", expected: "683.10"},
		{input: "1 055,00", expected: "1055.00"},
		{input: " 420 ", expected: "420.00"},
		{input: "572.00", expected: "572.00"},
		{input: "", expectedErr: true},
		{input: "sur demande", expectedErr: true},
		{input: "-10,00", expectedErr: true},
		{input: "1e3", expectedErr: true},
		{input: "1,2E+3", expectedErr: true},
		{input: "+420", expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseRate(tc.input)
			if (err != nil) != tc.expectedErr {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectedErr {
				if !errors.Is(err, ErrInvalidRate) {
					t.Errorf("expected ErrInvalidRate, got %v", err)
				}
				return
			}
			if got.StringFixed(2) != tc.expected {
				t.Errorf("ParseRate(%q) = %s, expected %s", tc.input, got.StringFixed(2), tc.expected)
			}
		})
	}
}

func TestDefaultRateTableCoversCapacity(t *testing.T) {
	table, err := DefaultRateTable()
	if err != nil {
		t.Fatal(err)
	}
	if table.Currency() != "DH" {
		t.Errorf("currency = %q, expected DH", table.Currency())
	}
	for _, room := range Categories() {
		for persons := 1; persons <= room.Capacity(); persons++ {
			for _, period := range Periods() {
				rate, ok := table.Nightly(room, persons, period)
				if !ok || !rate.IsPositive() {
					t.Errorf("%s/%d/%s: missing rate", room, persons, period)
				}
			}
		}
		if _, ok := table.Nightly(room, room.Capacity()+1, Summer); ok {
			t.Errorf("%s: unexpected rate above capacity", room)
		}
		if rows := table.Rows(room); len(rows) != room.Capacity() {
			t.Errorf("%s: %d rows, expected %d", room, len(rows), room.Capacity())
		}
	}
}

func TestDefaultRateTableValues(t *testing.T) {
	table, err := DefaultRateTable()
	if err != nil {
		t.Fatal(err)
	}
	testCases := []struct {
		room     RoomCategory
		persons  int
		period   SeasonPeriod
		expected string
	}{
		{RoomSuiteA, 2, WinterHigh, "572.00"},
		{RoomSuiteA, 7, Summer, "1230.00"},
		{RoomApartment, 3, Summer, "683.10"},
		{RoomSuiteC, 4, Summer, "782.50"},
		{RoomSuiteB, 6, WinterLow, "660.00"},
	}
	for _, tc := range testCases {
		rate, ok := table.Nightly(tc.room, tc.persons, tc.period)
		if !ok {
			t.Errorf("%s/%d/%s: no rate", tc.room, tc.persons, tc.period)
			continue
		}
		if rate.StringFixed(2) != tc.expected {
			t.Errorf("%s/%d/%s = %s, expected %s", tc.room, tc.persons, tc.period, rate.StringFixed(2), tc.expected)
		}
	}
}

func fullSheet(price string) RateSheet {
	sheet := RateSheet{
		Summer: map[RoomCategory]map[int]string{},
		Winter: map[RoomCategory]map[int][3]string{},
	}
	for _, room := range Categories() {
		sheet.Summer[room] = map[int]string{}
		sheet.Winter[room] = map[int][3]string{}
		for p := 1; p <= room.Capacity(); p++ {
			sheet.Summer[room][p] = price
			sheet.Winter[room][p] = [3]string{price, price, price}
		}
	}
	return sheet
}

func TestNewRateTable(t *testing.T) {
	testCases := []struct {
		name        string
		modify      func(*RateSheet)
		expectedErr bool
	}{
		{
			name:   "complete sheet",
			modify: func(*RateSheet) {},
		},
		{
			name:        "unknown room",
			modify:      func(s *RateSheet) { s.Summer["penthouse"] = map[int]string{1: "1,00"} },
			expectedErr: true,
		},
		{
			name:        "missing room",
			modify:      func(s *RateSheet) { delete(s.Winter, RoomSuiteB) },
			expectedErr: true,
		},
		{
			name:        "missing occupant count",
			modify:      func(s *RateSheet) { delete(s.Summer[RoomSuiteC], 2) },
			expectedErr: true,
		},
		{
			name: "occupant count out of range",
			modify: func(s *RateSheet) {
				delete(s.Summer[RoomSuiteC], 4)
				s.Summer[RoomSuiteC][9] = "1,00"
			},
			expectedErr: true,
		},
		{
			name:        "unparsable price",
			modify:      func(s *RateSheet) { s.Winter[RoomApartment][1] = [3]string{"1,00", "abc", "1,00"} },
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sheet := fullSheet("100,00")
			tc.modify(&sheet)
			_, err := NewRateTable(sheet)
			if (err != nil) != tc.expectedErr {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadRateSheet(t *testing.T) {
	if _, err := LoadRateSheet(strings.NewReader("{")); err == nil {
		t.Error("expected error for truncated json")
	}
	if _, err := LoadRateFile(t.TempDir() + "/missing.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"1230", "1 230,00"},
		{"485.5", "485,50"},
		{"4004", "4 004,00"},
		{"12345678.9", "12 345 678,90"},
		{"0", "0,00"},
		{"999.999", "1 000,00"},
	}
	for _, tc := range testCases {
		if got := FormatAmount(decimal.RequireFromString(tc.input)); got != tc.expected {
			t.Errorf("FormatAmount(%s) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}
