package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mayankt25/backend/internal/common"
	"github.com/mayankt25/backend/internal/server/models"
	"github.com/mayankt25/backend/internal/server/repositories/repomanager"
	"github.com/mayankt25/backend/internal/server/validation"
)

// NoteService provides per-user CRUD over notes. Every mutating operation
// first loads the stored record and compares its OwnerID against the caller's
// principal; the request body never participates in that comparison.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewNoteService constructs a NoteService over the given repositories.
func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// Create validates the fields and persists a note owned by ownerID.
func (s *NoteService) Create(ctx context.Context, ownerID, title, description string) (*models.Note, error) {
	var errs validation.Errors
	if !validation.MinLength(title, 5) {
		errs.Add("title", "Please enter a valid title with at least 5 characters")
	}
	if !validation.MinLength(description, 7) {
		errs.Add("description", "Please enter a valid description with at least 7 characters")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	note := &models.Note{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	repo := s.repomanager.Notes(s.db)
	if err := repo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}
	return note, nil
}

// List returns every note owned by ownerID, oldest first.
func (s *NoteService) List(ctx context.Context, ownerID string) ([]*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	notes, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}

// Update applies the supplied fields to the note. Empty fields keep their
// stored values. Returns ErrNotFound for an unknown note and ErrForbidden
// when principalID does not own it.
func (s *NoteService) Update(ctx context.Context, principalID, noteID, title, description string) (*models.Note, error) {
	repo := s.repomanager.Notes(s.db)

	note, err := s.loadOwned(ctx, principalID, noteID)
	if err != nil {
		return nil, err
	}

	if title != "" {
		note.Title = title
	}
	if description != "" {
		note.Description = description
	}

	if err := repo.Update(ctx, note); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("updating note: %w", err)
	}
	return note, nil
}

// Delete removes the note. The same ownership guard as Update applies.
func (s *NoteService) Delete(ctx context.Context, principalID, noteID string) error {
	repo := s.repomanager.Notes(s.db)

	if _, err := s.loadOwned(ctx, principalID, noteID); err != nil {
		return err
	}

	if err := repo.Delete(ctx, noteID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}

// loadOwned fetches the note and enforces ownership: an absent note yields
// ErrNotFound, a foreign one ErrForbidden.
func (s *NoteService) loadOwned(ctx context.Context, principalID, noteID string) (*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	note, err := repo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("loading note: %w", err)
	}
	if note.OwnerID != principalID {
		return nil, common.ErrForbidden
	}
	return note, nil
}
