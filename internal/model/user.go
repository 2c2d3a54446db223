// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type Profile struct {
	UserID      uuid.UUID  `json:"user_id"`
	FullName    string     `json:"full_name" form:"full_name"`
	Description string     `json:"description" form:"description"`
	AvatarURL   string     `json:"avatar_url" form:"avatar_url"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Initials returns up to two upper case letters for the avatar fallback.
func (p *Profile) Initials(email string) string {
	name := strings.TrimSpace(p.FullName)
	if name == "" {
		if email == "" {
			return "?"
		}
		return strings.ToUpper(email[:1])
	}
	var initials []rune
	for _, part := range strings.Fields(name) {
		initials = append(initials, []rune(strings.ToUpper(part))[0])
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// NormalizeEmail trims and lower cases an address before lookup or storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
