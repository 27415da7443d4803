package service

import (
	"context"

	"book-management-backend/internal/domains/book/model"
)

// Service is the book business-logic abstraction.
type Service interface {
	// CreateBook fails with ExistData on a duplicate ISBN (pre-check or
	// storage constraint), NotExistData when the author does not exist,
	// and InvalidInput when the ISBN fails format validation.
	CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.CreateBookResponse, error)

	// GetBookList returns one page of books plus the unpaged total; a
	// non-empty title restricts to case-insensitive containment matches.
	GetBookList(ctx context.Context, filter model.ListFilter) ([]model.Book, int64, error)

	// GetBookDetails fails with NotExistData ("bookId[<id>] not found")
	// when the book does not exist.
	GetBookDetails(ctx context.Context, id int64) (*model.Book, error)

	// UpdateBook applies the aggregate's partial-update semantics: absent
	// or blank fields leave the stored values untouched.
	UpdateBook(ctx context.Context, id int64, req *model.UpdateBookRequest) error

	// DeleteBook resolves the book first so a missing id surfaces as
	// NotExistData before any deletion is attempted.
	DeleteBook(ctx context.Context, id int64) error
}
