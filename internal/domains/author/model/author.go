package model

import (
	"strings"
	"time"

	bookmodel "book-management-backend/internal/domains/book/model"
	"book-management-backend/internal/shared/apierror"
)

// Author is the author aggregate. Name and email are never empty for a
// persisted author; email is unique across all authors and immutable after
// creation.
type Author struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func New(name, email string) *Author {
	return &Author{Name: name, Email: email}
}

// UpdateName replaces the author's name. A blank name is a RequiredInput
// failure; email has no update path by design.
func (a *Author) UpdateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apierror.Newf(apierror.RequiredInput, "name[%s] is required", name)
	}
	a.Name = name
	return nil
}

// AuthorWithBooks pairs an author with their owned books. The book list is
// a derived, on-demand view queried by author id - never a maintained
// back-pointer (Book.AuthorID stays the source of truth).
type AuthorWithBooks struct {
	Author
	Books []bookmodel.Book
}
