package book

import (
	"context"
	"errors"

	"bookshelf/internal/platform/logger"
)

// User-facing messages.
const (
	msgNotFound = "Book not found"

	msgListFailed = "Books could not be retrieved"

	msgAdded          = "Book added successfully"
	msgAddNoName      = "Failed to add book. Please provide the book name"
	msgAddBadReadPage = "Failed to add book. readPage cannot be greater than pageCount"
	msgAddFailed      = "Book could not be added"

	msgUpdated           = "Book updated successfully"
	msgUpdateNoName      = "Failed to update book. Please provide the book name"
	msgUpdateBadReadPage = "Failed to update book. readPage cannot be greater than pageCount"
	msgUpdateNotFound    = "Failed to update book. Id not found"
	msgUpdateFailed      = "Book could not be updated"

	msgDeleted        = "Book deleted successfully"
	msgDeleteNotFound = "Book could not be deleted. Id not found"
	msgDeleteFailed   = "Book could not be deleted"

	msgGetFailed = "Book could not be retrieved"
)

// Service provides the book operations on top of a Repository.
// It holds no state of its own.
type Service struct {
	repo Repository
	log  *logger.Logger
}

// NewService creates a new book service.
func NewService(repo Repository, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// List returns the projections of the books matching f.
func (s *Service) List(ctx context.Context, f Filter) ([]Summary, error) {
	books, err := s.repo.List(ctx, f)
	if err != nil {
		s.log.Error("list books failed", "op", "list", "error", err)
		return nil, persistenceFailed(msgListFailed, err)
	}
	if books == nil {
		books = []Summary{}
	}
	return books, nil
}

// Get returns the book stored under id.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Book{}, notFound(msgNotFound)
		}
		s.log.Error("get book failed", "op", "get", "book_id", id, "error", err)
		return Book{}, persistenceFailed(msgGetFailed, err)
	}
	return b, nil
}

// Create validates in, derives Finished and stores a new book. It returns the new id.
func (s *Service) Create(ctx context.Context, in Input) (string, error) {
	switch validateInput(in) {
	case violationMissingName:
		return "", validationFailed(msgAddNoName)
	case violationReadPageExceedsPageCount:
		return "", validationFailed(msgAddBadReadPage)
	}

	id, err := s.repo.Create(ctx, in.toBook())
	if err != nil {
		s.log.Error("create book failed", "op", "create", "error", err)
		return "", persistenceFailed(msgAddFailed, err)
	}
	s.log.Debug("book created", "book_id", id)
	return id, nil
}

// Update validates in and replaces the book stored under id.
func (s *Service) Update(ctx context.Context, id string, in Input) error {
	switch validateInput(in) {
	case violationMissingName:
		return validationFailed(msgUpdateNoName)
	case violationReadPageExceedsPageCount:
		return validationFailed(msgUpdateBadReadPage)
	}

	if err := s.repo.Update(ctx, id, in.toBook()); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(msgUpdateNotFound)
		}
		s.log.Error("update book failed", "op", "update", "book_id", id, "error", err)
		return persistenceFailed(msgUpdateFailed, err)
	}
	return nil
}

// Delete removes the book stored under id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(msgDeleteNotFound)
		}
		s.log.Error("delete book failed", "op", "delete", "book_id", id, "error", err)
		return persistenceFailed(msgDeleteFailed, err)
	}
	return nil
}
