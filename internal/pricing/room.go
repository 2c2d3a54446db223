// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package pricing

import "fmt"

type RoomCategory string

const (
	RoomApartment RoomCategory = "appartement"
	RoomSuiteA    RoomCategory = "suiteA"
	RoomSuiteB    RoomCategory = "suiteB"
	RoomSuiteC    RoomCategory = "suiteC"
)

var capacities = map[RoomCategory]int{
	RoomApartment: 5,
	RoomSuiteA:    7,
	RoomSuiteB:    6,
	RoomSuiteC:    4,
}

// Categories returns all room categories in display order.
func Categories() []RoomCategory {
	return []RoomCategory{RoomApartment, RoomSuiteA, RoomSuiteB, RoomSuiteC}
}

// Capacity is the maximum number of occupants the category is priced for.
func (r RoomCategory) Capacity() int {
	return capacities[r]
}

func (r RoomCategory) Valid() bool {
	_, ok := capacities[r]
	return ok
}

func ParseRoomCategory(s string) (RoomCategory, error) {
	r := RoomCategory(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown room category %q", s)
	}
	return r, nil
}
