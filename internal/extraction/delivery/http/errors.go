package http

import (
	"context"
	"errors"
	"net/http"

	"autonomous-task-extraction/internal/extraction"
	pkgErrors "autonomous-task-extraction/pkg/errors"
)

var (
	errTextTooLong       = pkgErrors.NewHTTPError(http.StatusBadRequest, "text exceeds the maximum length")
	errInvalidOrigin     = pkgErrors.NewHTTPError(http.StatusBadRequest, "origin must be one of: voice, chat")
	errInvalidConfidence = pkgErrors.NewHTTPError(http.StatusBadRequest, "min_confidence must be within [0, 1]")
	errInvalidInput      = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid input")
	errRequestTimeout    = pkgErrors.NewHTTPError(http.StatusRequestTimeout, "request canceled")
)

// mapError translates usecase errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, extraction.ErrInvalidInput):
		return errInvalidInput
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errRequestTimeout
	default:
		return pkgErrors.ErrInternalServerError
	}
}
