// Package notes provides persistence for note records keyed by owner.
package notes

import (
	"context"

	"github.com/mayankt25/backend/internal/server/models"
)

// Repository is the persistence contract for notes. GetByID returns
// common.ErrNotFound when no row matches; ListByOwner returns only records
// whose OwnerID equals ownerID.
type Repository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id string) (*models.Note, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id string) error
}
