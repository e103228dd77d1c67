// Package users provides persistence for user accounts.
package users

import (
	"context"

	"github.com/mayankt25/backend/internal/server/models"
)

// Repository is the persistence contract for user records. Lookups return
// common.ErrNotFound when no row matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
