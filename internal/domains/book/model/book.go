package model

import (
	"strings"
	"time"

	"book-management-backend/internal/shared/isbn"
)

// Book is the book aggregate. Construction goes through New so a book with
// an invalid ISBN or without an owning author can never exist; mutation
// goes through ApplyUpdate only.
type Book struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`

	// Optional. Stored as NULL when absent; callers always see "" via
	// DisplayDescription.
	Description *string `json:"description" db:"description"`

	ISBN string `json:"isbn" db:"isbn"`

	// Optional. Stored as NULL when absent; callers see the current date
	// via DisplayPublicationDate.
	PublicationDate *time.Time `json:"publication_date" db:"publication_date"`

	// Set once at construction, immutable afterwards.
	AuthorID int64 `json:"author_id" db:"author_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// New validates the ISBN and builds an unpersisted book owned by authorID.
// The ISBN rules are the same ones the request boundary applies; a
// validation failure here propagates as the construction failure.
func New(title string, description *string, isbnCode string, publicationDate *time.Time, authorID int64) (*Book, error) {
	if err := isbn.Validate(isbnCode); err != nil {
		return nil, err
	}

	return &Book{
		Title:           title,
		Description:     description,
		ISBN:            isbnCode,
		PublicationDate: publicationDate,
		AuthorID:        authorID,
	}, nil
}

// DisplayDescription returns the stored description, or "" when absent.
func (b *Book) DisplayDescription() string {
	if b.Description == nil {
		return ""
	}
	return *b.Description
}

// DisplayPublicationDate returns the stored publication date, or the
// current date when absent. The fallback is computed at read time, so two
// reads of an unset date on different days return different values.
func (b *Book) DisplayPublicationDate() time.Time {
	if b.PublicationDate == nil {
		y, m, d := time.Now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return *b.PublicationDate
}

// ApplyUpdate overwrites only the fields that carry a usable value: a nil
// or blank title/description and a nil date are no-op signals, never a
// clear.
func (b *Book) ApplyUpdate(title, description *string, publicationDate *time.Time) {
	if title != nil && strings.TrimSpace(*title) != "" {
		b.Title = *title
	}

	if description != nil && strings.TrimSpace(*description) != "" {
		b.Description = description
	}

	if publicationDate != nil {
		b.PublicationDate = publicationDate
	}
}
