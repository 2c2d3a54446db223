// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a message sent through the contact form.
type ContactMessage struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name" form:"name"`
	Email     string     `json:"email" form:"email"`
	Subject   string     `json:"subject" form:"subject"`
	Message   string     `json:"message" form:"message"`
	Language  string     `json:"language"`
	CreatedAt *time.Time `json:"created_at"`
}
