package store

import (
	"errors"
	"fmt"

	"bubble/internal/models"
)

var (
	// ErrNotFound wraps models.ErrNotFound so callers above the store can
	// match either.
	ErrNotFound  = fmt.Errorf("store: resource %w", models.ErrNotFound)
	ErrDuplicate = errors.New("store: duplicate resource")
)
