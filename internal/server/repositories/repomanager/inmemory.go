package repomanager

import (
	"context"
	"database/sql"

	"github.com/mayankt25/backend/internal/dbx"
	"github.com/mayankt25/backend/internal/server/repositories/notes"
	"github.com/mayankt25/backend/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends shared in-memory repositories. The DBTX
// argument is ignored; there is no transaction support.
type InMemoryRepositoryManager struct {
	users *users.InMemoryRepository
	notes *notes.InMemoryRepository
}

// NewInMemoryRepositoryManager constructs a manager over fresh in-memory stores.
func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewInMemoryRepository(),
		notes: notes.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Notes(db dbx.DBTX) notes.Repository {
	return m.notes
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
