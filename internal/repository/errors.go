package repository

import (
	"errors"

	"github.com/pedrobarros/ironlog/internal/store"
)

var (
	// ErrPersistence marks a failed adapter write or read. Repositories
	// surface it so callers can distinguish storage trouble from bad input.
	ErrPersistence = store.ErrStore

	// ErrNotFound is returned when an operation references an id absent from
	// the repository.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied is returned on an ownership mismatch between the
	// target record and the current session.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrValidation is returned for malformed input at a mutation boundary.
	ErrValidation = errors.New("validation failed")
)
