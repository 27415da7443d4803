package repository

import (
	"context"

	"book-management-backend/internal/domains/book/model"
)

// Repository is the book data-access abstraction. Implementations must
// enforce the ISBN UNIQUE constraint and report a violation as
// model.ErrISBNTaken.
type Repository interface {
	// Create inserts a new book and returns it with the storage-assigned
	// id and timestamps. Returns model.ErrISBNTaken on a duplicate ISBN.
	Create(ctx context.Context, book *model.Book) (*model.Book, error)

	// GetByID returns model.ErrNotFound when no book has that id.
	GetByID(ctx context.Context, id int64) (*model.Book, error)

	// List returns one page of books plus the unpaged total. Storage is
	// the paging authority; the filter arrives sanitized from the service.
	List(ctx context.Context, filter model.ListFilter) ([]model.Book, int64, error)

	// Update persists a mutated book. Returns model.ErrNotFound when the
	// row no longer exists.
	Update(ctx context.Context, book *model.Book) error

	// Delete returns model.ErrNotFound when no row was removed.
	Delete(ctx context.Context, id int64) error

	// ExistsByISBN is the fast-fail uniqueness pre-check.
	ExistsByISBN(ctx context.Context, isbnCode string) (bool, error)
}
