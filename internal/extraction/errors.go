package extraction

import "errors"

// Domain-specific errors for the extraction package.
var (
	ErrInvalidInput = errors.New("invalid raw input")
)
