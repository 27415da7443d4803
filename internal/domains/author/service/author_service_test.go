package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-management-backend/internal/domains/author/model"
	bookmodel "book-management-backend/internal/domains/book/model"
	"book-management-backend/internal/shared/apierror"
)

// fakeAuthorRepo is an in-memory Repository. createErr lets tests simulate
// the storage constraint firing after the pre-check passed.
type fakeAuthorRepo struct {
	authors   map[int64]model.Author
	books     map[int64][]bookmodel.Book
	nextID    int64
	createErr error
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{
		authors: make(map[int64]model.Author),
		books:   make(map[int64][]bookmodel.Book),
		nextID:  1,
	}
}

func (f *fakeAuthorRepo) Create(_ context.Context, author *model.Author) (*model.Author, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := *author
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.nextID++
	f.authors[created.ID] = created

	return &created, nil
}

func (f *fakeAuthorRepo) GetByID(_ context.Context, id int64) (*model.Author, error) {
	author, ok := f.authors[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &author, nil
}

func (f *fakeAuthorRepo) List(_ context.Context, limit, offset int) ([]model.Author, error) {
	var result []model.Author
	for id := int64(1); id < f.nextID; id++ {
		if author, ok := f.authors[id]; ok {
			result = append(result, author)
		}
	}

	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeAuthorRepo) BooksByAuthors(_ context.Context, authorIDs []int64) (map[int64][]bookmodel.Book, error) {
	result := make(map[int64][]bookmodel.Book)
	for _, id := range authorIDs {
		if books, ok := f.books[id]; ok {
			result[id] = books
		}
	}
	return result, nil
}

func (f *fakeAuthorRepo) Update(_ context.Context, author *model.Author) error {
	if _, ok := f.authors[author.ID]; !ok {
		return model.ErrNotFound
	}
	f.authors[author.ID] = *author
	return nil
}

func (f *fakeAuthorRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, author := range f.authors {
		if author.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAuthorRepo) DeleteWithBooks(_ context.Context, id int64) error {
	delete(f.books, id)
	delete(f.authors, id)
	return nil
}

func seedAuthor(repo *fakeAuthorRepo, name, email string) int64 {
	created, _ := repo.Create(context.Background(), model.New(name, email))
	return created.ID
}

func TestAuthorService_CreateAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the new id", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		resp, err := svc.CreateAuthor(ctx, &model.CreateAuthorRequest{Name: "Kim", Email: "kim@example.com"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("duplicate email caught by pre-check", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		seedAuthor(repo, "Kim", "kim@example.com")
		svc := NewAuthorService(repo)

		_, err := svc.CreateAuthor(ctx, &model.CreateAuthorRequest{Name: "Other", Email: "kim@example.com"})

		apiErr, ok := apierror.From(err)
		require.True(t, ok)
		assert.Equal(t, apierror.ExistData, apiErr.Kind)
		assert.Equal(t, "email[kim@example.com]", apiErr.Detail)
	})

	t.Run("duplicate email caught by the storage constraint", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		repo.createErr = model.ErrEmailTaken
		svc := NewAuthorService(repo)

		_, err := svc.CreateAuthor(ctx, &model.CreateAuthorRequest{Name: "Kim", Email: "kim@example.com"})

		apiErr, ok := apierror.From(err)
		require.True(t, ok)
		assert.Equal(t, apierror.ExistData, apiErr.Kind)
		assert.Equal(t, "email[kim@example.com]", apiErr.Detail)
	})
}

func TestAuthorService_GetAuthorList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAuthorRepo()
	kimID := seedAuthor(repo, "Kim", "kim@example.com")
	seedAuthor(repo, "Lee", "lee@example.com")
	repo.books[kimID] = []bookmodel.Book{{ID: 1, Title: "Clean Code", AuthorID: kimID}}
	svc := NewAuthorService(repo)

	t.Run("eager loads books per author", func(t *testing.T) {
		authors, err := svc.GetAuthorList(ctx, 30, 0)
		require.NoError(t, err)
		require.Len(t, authors, 2)

		assert.Equal(t, "Kim", authors[0].Name)
		require.Len(t, authors[0].Books, 1)
		assert.Equal(t, "Clean Code", authors[0].Books[0].Title)
		assert.Empty(t, authors[1].Books)
	})

	t.Run("paging", func(t *testing.T) {
		authors, err := svc.GetAuthorList(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, authors, 1)
		assert.Equal(t, "Lee", authors[0].Name)
	})

	t.Run("non-positive size uses the default", func(t *testing.T) {
		authors, err := svc.GetAuthorList(ctx, 0, -1)
		require.NoError(t, err)
		assert.Len(t, authors, 2)
	})
}

func TestAuthorService_GetAuthorDetail(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAuthorRepo()
	kimID := seedAuthor(repo, "Kim", "kim@example.com")
	repo.books[kimID] = []bookmodel.Book{{ID: 1, Title: "Clean Code", AuthorID: kimID}}
	svc := NewAuthorService(repo)

	t.Run("found", func(t *testing.T) {
		detail, err := svc.GetAuthorDetail(ctx, kimID)
		require.NoError(t, err)
		assert.Equal(t, "Kim", detail.Name)
		assert.Len(t, detail.Books, 1)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetAuthorDetail(ctx, 99)

		apiErr, ok := apierror.From(err)
		require.True(t, ok)
		assert.Equal(t, apierror.NotExistData, apiErr.Kind)
		assert.Equal(t, "authorId[99] not found", apiErr.Detail)
	})
}

func TestAuthorService_UpdateAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the new name", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		id := seedAuthor(repo, "Kim", "kim@example.com")
		svc := NewAuthorService(repo)

		require.NoError(t, svc.UpdateAuthor(ctx, id, &model.UpdateAuthorRequest{Name: "Kim Youngwon"}))

		stored := repo.authors[id]
		assert.Equal(t, "Kim Youngwon", stored.Name)
		assert.Equal(t, "kim@example.com", stored.Email)
	})

	t.Run("blank name", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		id := seedAuthor(repo, "Kim", "kim@example.com")
		svc := NewAuthorService(repo)

		err := svc.UpdateAuthor(ctx, id, &model.UpdateAuthorRequest{Name: " "})

		apiErr, ok := apierror.From(err)
		require.True(t, ok)
		assert.Equal(t, apierror.RequiredInput, apiErr.Kind)
		assert.Equal(t, "Kim", repo.authors[id].Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		err := svc.UpdateAuthor(ctx, 99, &model.UpdateAuthorRequest{Name: "Kim"})

		apiErr, ok := apierror.From(err)
		require.True(t, ok)
		assert.Equal(t, apierror.NotExistData, apiErr.Kind)
	})
}

func TestAuthorService_DeleteAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the author and their books", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		id := seedAuthor(repo, "Kim", "kim@example.com")
		repo.books[id] = []bookmodel.Book{{ID: 1, Title: "Clean Code", AuthorID: id}}
		svc := NewAuthorService(repo)

		require.NoError(t, svc.DeleteAuthor(ctx, id))

		assert.NotContains(t, repo.authors, id)
		assert.NotContains(t, repo.books, id)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		err := svc.DeleteAuthor(ctx, 99)

		apiErr, ok := apierror.From(err)
		require.True(t, ok)
		assert.Equal(t, apierror.NotExistData, apiErr.Kind)
		assert.Equal(t, "authorId[99] not found", apiErr.Detail)
	})
}
