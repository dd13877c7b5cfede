package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"autonomous-task-extraction/internal/extraction"
	pkgLog "autonomous-task-extraction/pkg/log"
	pkgTelegram "autonomous-task-extraction/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the part of the bot client the handler needs.
type Sender interface {
	SendMessageRequest(ctx context.Context, req pkgTelegram.SendMessageRequest) error
}

// Config is the reply policy.
type Config struct {
	MinConfidence float64
	MaxResults    int
	// Location formats dates and anchors relative expressions.
	Location *time.Location
}

type handler struct {
	l     pkgLog.Logger
	uc    extraction.UseCase
	bot   Sender
	cfg   Config
	spawn func(func())
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc extraction.UseCase, bot Sender, cfg Config) Handler {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &handler{
		l:     l,
		uc:    uc,
		bot:   bot,
		cfg:   cfg,
		spawn: func(f func()) { go f() },
	}
}
