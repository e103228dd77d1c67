// Package repomanager vends repository implementations bound to a database
// handle, so services can use the same repositories inside and outside of
// transactions.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mayankt25/backend/internal/dbx"
	"github.com/mayankt25/backend/internal/server/repositories/notes"
	"github.com/mayankt25/backend/internal/server/repositories/users"
)

// RepositoryManager returns repositories bound to the given DBTX
// (*sql.DB for plain calls, *sql.Tx inside dbx.WithTx).
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Notes(db dbx.DBTX) notes.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
