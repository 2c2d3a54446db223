// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package form

import (
	"errors"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

type TestStruct struct {
	UUIDField   uuid.UUID   `form:"uuid_field"`
	StringField string      `form:"string_field"`
	BoolField   bool        `form:"bool_field"`
	IntField    int         `form:"int_field"`
	FloatField  float64     `form:"float_field"`
	SliceField  []string    `form:"slice_field"`
	DateField   time.Time   `form:"date_field"`
	StructField FieldStruct `form:"struct_field"`
	Ignored     string
}

type FieldStruct struct {
	StringField string      `form:"field_struct_strfield"`
	BoolField   bool        `form:"field_struct_boolfield"`
	Inner       InnerStruct `form:"inner"`
}

type InnerStruct struct {
	Value string `form:"value"`
}

func TestUnmarshal(t *testing.T) {
	testCases := []struct {
		name        string
		input       url.Values
		expected    TestStruct
		expectedErr bool
	}{
		{
			name: "Valid input data",
			input: url.Values{
				"uuid_field":                          {"ca07d617-c87c-4ac3-affc-27a5e941b28f"},
				"string_field":                        {"test_string"},
				"bool_field":                          {"true"},
				"int_field":                           {"42"},
				"float_field":                         {"3.14"},
				"slice_field":                         {"1", "2", "3"},
				"date_field":                          {"2025-07-01"},
				"struct_field.field_struct_strfield":  {"stringfield"},
				"struct_field.field_struct_boolfield": {"on"},
				"struct_field.inner.value":            {"deep"},
			},
			expected: TestStruct{
				UUIDField:   uuid.MustParse("ca07d617-c87c-4ac3-affc-27a5e941b28f"),
				StringField: "test_string",
				BoolField:   true,
				IntField:    42,
				FloatField:  3.14,
				SliceField:  []string{"1", "2", "3"},
				DateField:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				StructField: FieldStruct{
					StringField: "stringfield",
					BoolField:   true,
					Inner:       InnerStruct{Value: "deep"},
				},
			},
		},
		{
			name:     "Empty input",
			input:    url.Values{},
			expected: TestStruct{},
		},
		{
			name: "Missing fields",
			input: url.Values{
				"string_field": {"test_string"},
			},
			expected: TestStruct{
				StringField: "test_string",
			},
		},
		{
			name: "Empty numbers are skipped",
			input: url.Values{
				"int_field":   {""},
				"float_field": {""},
				"date_field":  {""},
				"uuid_field":  {""},
			},
			expected: TestStruct{},
		},
		{
			name: "Nested key without prefix is ignored",
			input: url.Values{
				"field_struct_strfield": {"nope"},
			},
			expected: TestStruct{},
		},
		{
			name:        "Invalid int",
			input:       url.Values{"int_field": {"forty-two"}},
			expectedErr: true,
		},
		{
			name:        "Invalid date",
			input:       url.Values{"date_field": {"01/07/2025"}},
			expectedErr: true,
		},
		{
			name:        "Invalid uuid",
			input:       url.Values{"uuid_field": {"not-a-uuid"}},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var target TestStruct
			err := Unmarshal(tc.input, &target)
			if (err != nil) != tc.expectedErr {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tc.expectedErr {
				var fe *FieldError
				if !errors.As(err, &fe) {
					t.Errorf("expected *FieldError, got %T", err)
				}
				return
			}
			if !reflect.DeepEqual(target, tc.expected) {
				t.Errorf("Unmarshal did not produce expected result. got: %+v, expected: %+v", target, tc.expected)
			}
		})
	}
}

func TestUnmarshalKeepsExistingValues(t *testing.T) {
	target := TestStruct{StringField: "keep", IntField: 7}
	if err := Unmarshal(url.Values{"int_field": {"8"}}, &target); err != nil {
		t.Fatal(err)
	}
	if target.StringField != "keep" || target.IntField != 8 {
		t.Errorf("unexpected result %+v", target)
	}
}

func TestUnmarshalInvalidTarget(t *testing.T) {
	var target TestStruct
	testCases := []struct {
		name   string
		target any
	}{
		{name: "nil", target: nil},
		{name: "non-pointer", target: target},
		{name: "nil pointer", target: (*TestStruct)(nil)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Unmarshal(url.Values{}, tc.target)
			var ie *InvalidUnmarshalError
			if !errors.As(err, &ie) {
				t.Errorf("expected InvalidUnmarshalError, got %v", err)
			}
		})
	}
}
