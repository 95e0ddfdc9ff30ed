package domain

import "errors"

var (
	ErrResultNotFound     = errors.New("saved result not found")
	ErrCatalogUnavailable = errors.New("project catalog unavailable")
	ErrInvalidAnswers     = errors.New("invalid quiz answers")
	ErrInvalidEmail       = errors.New("invalid email address")
)
