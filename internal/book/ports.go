package book

import (
	"context"
)

//go:generate mockgen -destination=mock_repository.go -package=book bookshelf/internal/book Repository

// Repository defines the contract for book data storage.
// Get, Update and Delete return ErrNotFound when the id does not exist.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Summary, error)
	Get(ctx context.Context, id string) (Book, error)
	// Create assigns the id and timestamps and returns the new id.
	Create(ctx context.Context, b Book) (string, error)
	// Update replaces every mutable field of the book stored under id.
	Update(ctx context.Context, id string, b Book) error
	Delete(ctx context.Context, id string) error
}
