package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput = crerr.New("invalid input")

	// ErrMatchIDRequired carries its own public message and matches ErrInvalidInput.
	ErrMatchIDRequired = crerr.Mark(crerr.New("Match ID is required"), ErrInvalidInput)
)
