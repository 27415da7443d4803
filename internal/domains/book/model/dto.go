package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-management-backend/internal/shared"
	"book-management-backend/internal/shared/isbn"
	"book-management-backend/internal/shared/pagination"
)

// CreateBookRequest - POST /books
type CreateBookRequest struct {
	Title           string       `json:"title"`
	Description     *string      `json:"description"`
	ISBN            string       `json:"isbn"`
	PublicationDate *shared.Date `json:"publication_date"`
	AuthorID        int64        `json:"author_id"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.ISBN, validation.Required.Error("isbn is required"), validation.By(validISBN10)),
		validation.Field(&r.PublicationDate, validation.By(pastOrPresent)),
		validation.Field(&r.AuthorID, validation.Required.Error("author_id is required")),
	)
}

// UpdateBookRequest - PATCH /books/:id. All fields optional; absent or
// blank fields leave the stored values untouched.
type UpdateBookRequest struct {
	Title           *string      `json:"title"`
	Description     *string      `json:"description"`
	PublicationDate *shared.Date `json:"publication_date"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PublicationDate, validation.By(pastOrPresent)),
	)
}

// PublicationTime unwraps the optional wire date into the aggregate's
// representation.
func (r UpdateBookRequest) PublicationTime() *time.Time {
	return publicationTime(r.PublicationDate)
}

// PublicationTime unwraps the optional wire date into the aggregate's
// representation.
func (r CreateBookRequest) PublicationTime() *time.Time {
	return publicationTime(r.PublicationDate)
}

func publicationTime(d *shared.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func validISBN10(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required already covers blank.
	}
	return isbn.Validate(s)
}

func pastOrPresent(value interface{}) error {
	d, _ := value.(*shared.Date)
	if d == nil || d.IsZero() {
		return nil
	}
	if d.After(shared.Today().Time) {
		return validation.NewError("validation_date_future", "publication_date must not be in the future")
	}
	return nil
}

// ListFilter carries the caller-supplied paging and title filter down to
// storage.
type ListFilter struct {
	Title string
	Page  pagination.Request
}

// CreateBookResponse - POST /books, 201 body.
type CreateBookResponse struct {
	ID int64 `json:"id"`
}

// BookListItem - one element of GET /books.
type BookListItem struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	PublicationDate shared.Date `json:"publication_date"`
}

// BookDetailResponse - GET /books/:id.
type BookDetailResponse struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	ISBN            string      `json:"isbn"`
	PublicationDate shared.Date `json:"publication_date"`
	AuthorID        int64       `json:"author_id"`
}

func (b *Book) ToListItem() BookListItem {
	return BookListItem{
		ID:              b.ID,
		Title:           b.Title,
		Description:     b.DisplayDescription(),
		PublicationDate: shared.NewDate(b.DisplayPublicationDate()),
	}
}

func (b *Book) ToDetailResponse() *BookDetailResponse {
	return &BookDetailResponse{
		ID:              b.ID,
		Title:           b.Title,
		Description:     b.DisplayDescription(),
		ISBN:            b.ISBN,
		PublicationDate: shared.NewDate(b.DisplayPublicationDate()),
		AuthorID:        b.AuthorID,
	}
}
