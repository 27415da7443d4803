package model

import "errors"

// Storage-level sentinels, mapped onto the error taxonomy by the service.
var (
	ErrNotFound   = errors.New("author not found")
	ErrEmailTaken = errors.New("author email already exists")
)
