package telegram

import (
	"errors"

	"autonomous-task-extraction/internal/extraction"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	if errors.Is(err, extraction.ErrInvalidInput) {
		return "⚠️ I could not read this message."
	}
	return "⚠️ Something went wrong. Please try again."
}
