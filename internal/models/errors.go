package models

import (
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	ErrEmptyArticle  = errors.New("article text required")
	ErrNotConfigured = errors.New("feature not configured")
)
