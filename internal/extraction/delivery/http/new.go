package http

import (
	"time"

	"autonomous-task-extraction/internal/extraction"
	"autonomous-task-extraction/pkg/log"
)

// Config carries the request policy applied on top of the usecase.
type Config struct {
	// MinConfidence is the default threshold when a request sets none.
	MinConfidence float64
	// MaxInputChars rejects longer texts. Zero disables the check.
	MaxInputChars int
	// MaxResults truncates the ranked list. Zero returns everything.
	MaxResults int
	// Location is used when a request carries no timestamps.
	Location *time.Location
}

type handler struct {
	l       log.Logger
	uc      extraction.UseCase
	cfg     Config
	metrics *Metrics
	now     func() time.Time
}

// New creates a new HTTP handler for the extraction domain.
func New(l log.Logger, uc extraction.UseCase, cfg Config, metrics *Metrics) *handler {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &handler{
		l:       l,
		uc:      uc,
		cfg:     cfg,
		metrics: metrics,
		now:     time.Now,
	}
}
