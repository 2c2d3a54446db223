// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package model

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	MaxEmailLength       = 255
	MinPasswordLength    = 6
	MaxFullNameLength    = 100
	MaxDescriptionLength = 1000
	MaxSubjectLength     = 200
	MaxMessageLength     = 2000
	MaxPasswordBytes     = 72
)

const (
	ValidationRequired = "validation.required"
	ValidationEmail    = "validation.email"
	ValidationTooLong  = "validation.tooLong"
	ValidationTooShort = "validation.tooShort"
	ValidationDate     = "validation.date"
	ValidationNumber   = "validation.number"
	ValidationRoom     = "validation.room"
	ValidationImage    = "validation.image"
)

// CheckEmail validates an already trimmed address.
func CheckEmail(ie *InputError, field, email string) {
	switch {
	case email == "":
		ie.Add(field, ValidationRequired)
	case utf8.RuneCountInString(email) > MaxEmailLength:
		ie.Add(field, ValidationTooLong)
	default:
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			ie.Add(field, ValidationEmail)
		}
	}
}

// CheckText validates the rune length of s. A minLen of zero makes the
// field optional.
func CheckText(ie *InputError, field, s string, minLen, maxLen int) {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	switch {
	case minLen > 0 && n == 0:
		ie.Add(field, ValidationRequired)
	case n < minLen:
		ie.Add(field, ValidationTooShort)
	case maxLen > 0 && n > maxLen:
		ie.Add(field, ValidationTooLong)
	}
}

func (m *ContactMessage) Validate() error {
	ie := NewInputError()
	CheckText(ie, "name", m.Name, 1, MaxFullNameLength)
	CheckEmail(ie, "email", m.Email)
	CheckText(ie, "subject", m.Subject, 1, MaxSubjectLength)
	CheckText(ie, "message", m.Message, 1, MaxMessageLength)
	return ie.OrNil()
}

func (p *Profile) Validate() error {
	ie := NewInputError()
	CheckText(ie, "full_name", p.FullName, 0, MaxFullNameLength)
	CheckText(ie, "description", p.Description, 0, MaxDescriptionLength)
	return ie.OrNil()
}
