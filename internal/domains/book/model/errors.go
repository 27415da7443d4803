package model

import "errors"

// Storage-level sentinels. The service layer maps these onto the error
// taxonomy; repositories stay free of HTTP concerns.
var (
	ErrNotFound  = errors.New("book not found")
	ErrISBNTaken = errors.New("isbn already exists")
)
