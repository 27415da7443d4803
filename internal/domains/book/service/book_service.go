package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	authorservice "book-management-backend/internal/domains/author/service"
	"book-management-backend/internal/domains/book/model"
	"book-management-backend/internal/domains/book/repository"
	"book-management-backend/internal/shared/apierror"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	defaultSort     = "id"
)

// sortColumns whitelists the sortable book columns; anything else is
// rejected before reaching storage.
var sortColumns = map[string]bool{
	"id":               true,
	"title":            true,
	"publication_date": true,
	"created_at":       true,
}

type bookService struct {
	authors authorservice.Service
	repo    repository.Repository
}

// NewBookService creates the book service. The owning author is resolved
// through the author service, not by reaching into author storage.
func NewBookService(authors authorservice.Service, repo repository.Repository) Service {
	return &bookService{authors: authors, repo: repo}
}

func (s *bookService) CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.CreateBookResponse, error) {
	exists, err := s.repo.ExistsByISBN(ctx, req.ISBN)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierror.Newf(apierror.ExistData, "isbn[%s] already exists", req.ISBN)
	}

	author, err := s.authors.GetAuthorDetail(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}

	book, err := model.New(req.Title, req.Description, req.ISBN, req.PublicationTime(), author.ID)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		// The pre-check races with concurrent creates; the storage UNIQUE
		// constraint is the source of truth and maps to the same failure.
		if errors.Is(err, model.ErrISBNTaken) {
			return nil, apierror.Newf(apierror.ExistData, "isbn[%s] already exists", req.ISBN)
		}
		return nil, err
	}

	log.Debug().Int64("book_id", created.ID).Int64("author_id", author.ID).Msg("book created")

	return &model.CreateBookResponse{ID: created.ID}, nil
}

func (s *bookService) GetBookList(ctx context.Context, filter model.ListFilter) ([]model.Book, int64, error) {
	if filter.Page.Size <= 0 {
		filter.Page.Size = defaultPageSize
	}
	if filter.Page.Size > maxPageSize {
		filter.Page.Size = maxPageSize
	}
	if filter.Page.Page < 0 {
		filter.Page.Page = 0
	}
	if filter.Page.Sort == "" {
		filter.Page.Sort = defaultSort
	}

	if !sortColumns[filter.Page.Sort] {
		return nil, 0, apierror.Newf(apierror.InvalidInput, "sort[%s] is not a sortable field", filter.Page.Sort)
	}

	return s.repo.List(ctx, filter)
}

func (s *bookService) GetBookDetails(ctx context.Context, id int64) (*model.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, apierror.Newf(apierror.NotExistData, "bookId[%d] not found", id)
		}
		return nil, err
	}

	return book, nil
}

func (s *bookService) UpdateBook(ctx context.Context, id int64, req *model.UpdateBookRequest) error {
	book, err := s.GetBookDetails(ctx, id)
	if err != nil {
		return err
	}

	book.ApplyUpdate(req.Title, req.Description, req.PublicationTime())

	return s.repo.Update(ctx, book)
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	if _, err := s.GetBookDetails(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
