package notes

import (
	"context"
	"sort"
	"sync"

	"github.com/mayankt25/backend/internal/common"
	"github.com/mayankt25/backend/internal/server/models"
)

// InMemoryRepository keeps notes in a map. It backs tests and any deployment
// that does not need durability.
type InMemoryRepository struct {
	mu    sync.RWMutex
	notes map[string]*models.Note // keyed by ID
}

// NewInMemoryRepository constructs an empty in-memory note store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{notes: make(map[string]*models.Note)}
}

func (r *InMemoryRepository) Create(ctx context.Context, note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := *note
	r.notes[n.ID] = &n
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.notes[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*models.Note
	for _, n := range r.notes {
		if n.OwnerID == ownerID {
			cp := *n
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[note.ID]; !ok {
		return common.ErrNotFound
	}
	n := *note
	r.notes[n.ID] = &n
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.notes, id)
	return nil
}
