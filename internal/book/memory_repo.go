package book

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo is an in-process Repository. Books are listed in insertion order.
type MemoryRepo struct {
	mu    sync.RWMutex
	books map[string]Book
	order []string
	now   func() time.Time
}

// NewMemoryRepo constructs a MemoryRepo seeded with the provided books.
// Seeded books without an id get one assigned.
func NewMemoryRepo(seed ...Book) *MemoryRepo {
	r := &MemoryRepo{
		books: make(map[string]Book, len(seed)),
		now:   time.Now,
	}
	for _, b := range seed {
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		r.books[b.ID] = b
		r.order = append(r.order, b.ID)
	}
	return r
}

func (r *MemoryRepo) List(_ context.Context, f Filter) ([]Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Summary, 0, len(r.order))
	for _, id := range r.order {
		b := r.books[id]
		if f.Matches(b) {
			out = append(out, b.summary())
		}
	}
	return out, nil
}

func (r *MemoryRepo) Get(_ context.Context, id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

func (r *MemoryRepo) Create(_ context.Context, b Book) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = uuid.NewString()
	b.InsertedAt = r.now().UTC()
	b.UpdatedAt = b.InsertedAt

	r.books[b.ID] = b
	r.order = append(r.order, b.ID)
	return b.ID, nil
}

func (r *MemoryRepo) Update(_ context.Context, id string, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.books[id]
	if !ok {
		return ErrNotFound
	}

	b.ID = id
	b.InsertedAt = existing.InsertedAt
	b.UpdatedAt = r.now().UTC()
	r.books[id] = b
	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return ErrNotFound
	}

	delete(r.books, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return nil
}
