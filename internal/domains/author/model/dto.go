package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	bookmodel "book-management-backend/internal/domains/book/model"
)

// CreateAuthorRequest - POST /authors
type CreateAuthorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email format is invalid"),
		),
	)
}

// UpdateAuthorRequest - PATCH /authors/:id. Blank-name handling lives in
// the aggregate (RequiredInput), not here.
type UpdateAuthorRequest struct {
	Name string `json:"name"`
}

// CreateAuthorResponse - POST /authors, 201 body.
type CreateAuthorResponse struct {
	ID int64 `json:"id"`
}

// AuthorListItem - one element of GET /authors.
type AuthorListItem struct {
	Name  string                   `json:"name"`
	Email string                   `json:"email"`
	Books []bookmodel.BookListItem `json:"books"`
}

// AuthorDetailResponse - GET /authors/:id.
type AuthorDetailResponse struct {
	ID    int64                    `json:"id"`
	Name  string                   `json:"name"`
	Email string                   `json:"email"`
	Books []bookmodel.BookListItem `json:"books"`
}

func (a *AuthorWithBooks) ToListItem() AuthorListItem {
	return AuthorListItem{
		Name:  a.Name,
		Email: a.Email,
		Books: bookItems(a.Books),
	}
}

func (a *AuthorWithBooks) ToDetailResponse() *AuthorDetailResponse {
	return &AuthorDetailResponse{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Books: bookItems(a.Books),
	}
}

func bookItems(books []bookmodel.Book) []bookmodel.BookListItem {
	items := make([]bookmodel.BookListItem, 0, len(books))
	for i := range books {
		items = append(items, books[i].ToListItem())
	}
	return items
}
