// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/freroxx/residence-yasmina/internal/model"
)

// ResidenceStore keeps the single residence document. The gallery
// methods change the stored document atomically, so concurrent
// additions and removals are never lost.
type ResidenceStore interface {
	GetResidence(context.Context) (*model.Residence, error)
	UpdateResidence(context.Context, *model.Residence) error
	AddGalleryImage(context.Context, *model.GalleryImage) error
	// RemoveGalleryImage returns ErrNotFound for an unknown image.
	RemoveGalleryImage(context.Context, uuid.UUID) error
}
