package repository

import (
	"context"

	"book-management-backend/internal/domains/author/model"
	bookmodel "book-management-backend/internal/domains/book/model"
)

// Repository is the author data-access abstraction. Implementations must
// enforce the email UNIQUE constraint themselves and report a violation as
// model.ErrEmailTaken; the service-level existence pre-check is a latency
// optimization only.
type Repository interface {
	// Create inserts a new author and returns it with the storage-assigned
	// id and timestamps. Returns model.ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, author *model.Author) (*model.Author, error)

	// GetByID returns model.ErrNotFound when no author has that id.
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// List returns one page of authors ordered by id ascending.
	List(ctx context.Context, limit, offset int) ([]model.Author, error)

	// BooksByAuthors loads the owned books of the given authors in one
	// query, keyed by author id.
	BooksByAuthors(ctx context.Context, authorIDs []int64) (map[int64][]bookmodel.Book, error)

	// Update persists a mutated author. Returns model.ErrNotFound when the
	// row no longer exists.
	Update(ctx context.Context, author *model.Author) error

	// ExistsByEmail is the fast-fail uniqueness pre-check.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// DeleteWithBooks removes the author and every book referencing them
	// inside a single transaction.
	DeleteWithBooks(ctx context.Context, id int64) error
}
