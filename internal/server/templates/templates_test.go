// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/freroxx/residence-yasmina/internal/model"
	"github.com/freroxx/residence-yasmina/internal/pricing"
)

func TestGroupIndexedValues(t *testing.T) {
	in := url.Values{
		"en.optionX":    {"d"},
		"en.optionY.2":  {"c"},
		"en.optionY.0":  {"a"},
		"en.optionY.1":  {"b"},
		"en.optionY.10": {"k"},
		"fr.nav.home":   {"Accueil"},
	}
	want := url.Values{
		"en.optionX":  {"d"},
		"en.optionY":  {"a", "b", "c", "k"},
		"fr.nav.home": {"Accueil"},
	}
	if got := groupIndexedValues(in); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, expected %v", got, want)
	}
}

func TestParseStayQuery(t *testing.T) {
	testCases := []struct {
		name       string
		values     url.Values
		want       pricing.StayQuery
		wantFields []string
	}{
		{
			name: "complete",
			values: url.Values{
				"room": {"suiteB"}, "persons": {"4"},
				"checkin": {"2024-12-20"}, "checkout": {"2024-12-27"},
			},
			want: pricing.StayQuery{
				Room: pricing.RoomSuiteB, Occupants: 4,
				CheckIn:  time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2024, time.December, 27, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:   "partial",
			values: url.Values{"room": {"suiteC"}, "persons": {" "}},
			want:   pricing.StayQuery{Room: pricing.RoomSuiteC},
		},
		{
			name:       "unknown room",
			values:     url.Values{"room": {"villa"}},
			wantFields: []string{"room"},
		},
		{
			name:   "persons below one",
			values: url.Values{"room": {"suiteA"}, "persons": {"-1"}},
			want:   pricing.StayQuery{Room: pricing.RoomSuiteA, Occupants: -1},
		},
		{
			name:       "persons not a number",
			values:     url.Values{"persons": {"2.5"}},
			wantFields: []string{"persons"},
		},
		{
			name:       "bad dates",
			values:     url.Values{"checkin": {"2024-02-30"}, "checkout": {"tomorrow"}},
			wantFields: []string{"checkin", "checkout"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStayQuery(tc.values)
			if len(tc.wantFields) == 0 {
				if err != nil {
					t.Fatal(err)
				}
				if got != tc.want {
					t.Errorf("got %+v, expected %+v", got, tc.want)
				}
				return
			}
			ie := model.IsInputError(err)
			if ie == nil {
				t.Fatalf("expected input error, got %v", err)
			}
			for _, f := range tc.wantFields {
				if ie.First(f) == "" {
					t.Errorf("expected an error for %q, got %v", f, ie.Fields())
				}
			}
		})
	}
}

func TestTranslator(t *testing.T) {
	tr := newTranslator(model.DefaultTranslations()["en"])

	testCases := []struct {
		key  string
		want string
	}{
		{key: "nav.home", want: "Home"},
		{key: "prices.calculator.title", want: "Price calculator"},
		{key: "does.not.exist", want: "does.not.exist"},
	}
	for _, tc := range testCases {
		if got := tr.T(tc.key); got != tc.want {
			t.Errorf("T(%q) = %q, expected %q", tc.key, got, tc.want)
		}
	}
}

func TestFieldMessages(t *testing.T) {
	tr := newTranslator(model.DefaultTranslations()["en"])
	ie := model.NewInputError()
	ie.Add("subject", model.ValidationRequired)
	ie.Add("email", model.ValidationEmail)

	got := fieldMessages(tr, ie, contactFields)
	want := []string{
		tr.T("contact.form.email") + ": " + tr.T(model.ValidationEmail),
		tr.T("contact.form.subject") + ": " + tr.T(model.ValidationRequired),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, expected %v", got, want)
	}
}
