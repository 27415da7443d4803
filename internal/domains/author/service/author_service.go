package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"book-management-backend/internal/domains/author/model"
	"book-management-backend/internal/domains/author/repository"
	"book-management-backend/internal/shared/apierror"
)

const (
	defaultPageSize = 30
	maxPageSize     = 100
)

type authorService struct {
	repo repository.Repository
}

// NewAuthorService creates the author service on top of a repository.
func NewAuthorService(repo repository.Repository) Service {
	return &authorService{repo: repo}
}

func (s *authorService) CreateAuthor(ctx context.Context, req *model.CreateAuthorRequest) (*model.CreateAuthorResponse, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierror.Newf(apierror.ExistData, "email[%s]", req.Email)
	}

	created, err := s.repo.Create(ctx, model.New(req.Name, req.Email))
	if err != nil {
		// The pre-check races with concurrent creates; the storage UNIQUE
		// constraint is the source of truth and maps to the same failure.
		if errors.Is(err, model.ErrEmailTaken) {
			return nil, apierror.Newf(apierror.ExistData, "email[%s]", req.Email)
		}
		return nil, err
	}

	log.Debug().Int64("author_id", created.ID).Msg("author created")

	return &model.CreateAuthorResponse{ID: created.ID}, nil
}

func (s *authorService) GetAuthorList(ctx context.Context, pageSize, pageNum int) ([]model.AuthorWithBooks, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if pageNum < 0 {
		pageNum = 0
	}

	authors, err := s.repo.List(ctx, pageSize, pageSize*pageNum)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(authors))
	for i := range authors {
		ids = append(ids, authors[i].ID)
	}

	booksByAuthor, err := s.repo.BooksByAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]model.AuthorWithBooks, 0, len(authors))
	for i := range authors {
		result = append(result, model.AuthorWithBooks{
			Author: authors[i],
			Books:  booksByAuthor[authors[i].ID],
		})
	}

	return result, nil
}

func (s *authorService) GetAuthorDetail(ctx context.Context, id int64) (*model.AuthorWithBooks, error) {
	author, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, apierror.Newf(apierror.NotExistData, "authorId[%d] not found", id)
		}
		return nil, err
	}

	booksByAuthor, err := s.repo.BooksByAuthors(ctx, []int64{id})
	if err != nil {
		return nil, err
	}

	return &model.AuthorWithBooks{
		Author: *author,
		Books:  booksByAuthor[id],
	}, nil
}

func (s *authorService) UpdateAuthor(ctx context.Context, id int64, req *model.UpdateAuthorRequest) error {
	detail, err := s.GetAuthorDetail(ctx, id)
	if err != nil {
		return err
	}

	author := detail.Author
	if err := author.UpdateName(req.Name); err != nil {
		return err
	}

	return s.repo.Update(ctx, &author)
}

// DeleteAuthor deletes the author's books and then the author; the
// repository performs both inside one transaction.
func (s *authorService) DeleteAuthor(ctx context.Context, id int64) error {
	if _, err := s.GetAuthorDetail(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteWithBooks(ctx, id); err != nil {
		return err
	}

	log.Debug().Int64("author_id", id).Msg("author deleted with books")

	return nil
}
