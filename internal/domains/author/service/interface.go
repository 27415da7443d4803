package service

import (
	"context"

	"book-management-backend/internal/domains/author/model"
)

// Service is the author business-logic abstraction. Operations raise typed
// apierror failures and propagate them unchanged to the boundary.
type Service interface {
	// CreateAuthor fails with ExistData when the email is already taken,
	// whether caught by the pre-check or by the storage constraint.
	CreateAuthor(ctx context.Context, req *model.CreateAuthorRequest) (*model.CreateAuthorResponse, error)

	// GetAuthorList returns one page of authors with their books eagerly
	// loaded, ordered by id ascending.
	GetAuthorList(ctx context.Context, pageSize, pageNum int) ([]model.AuthorWithBooks, error)

	// GetAuthorDetail fails with NotExistData ("authorId[<id>] not found")
	// when the author does not exist.
	GetAuthorDetail(ctx context.Context, id int64) (*model.AuthorWithBooks, error)

	// UpdateAuthor replaces the author's name; a blank name propagates the
	// aggregate's RequiredInput failure.
	UpdateAuthor(ctx context.Context, id int64, req *model.UpdateAuthorRequest) error

	// DeleteAuthor removes the author and every book they own in a single
	// atomic operation.
	DeleteAuthor(ctx context.Context, id int64) error
}
