package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"autonomous-task-extraction/config"
	"autonomous-task-extraction/internal/extraction"
	extractionHTTP "autonomous-task-extraction/internal/extraction/delivery/http"
	tgDelivery "autonomous-task-extraction/internal/extraction/delivery/telegram"
	"autonomous-task-extraction/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Extraction domain
	extractionUC    extraction.UseCase
	extractionCfg   extractionHTTP.Config
	telegramHandler tgDelivery.Handler

	// Surfaces
	rateLimit config.RateLimitConfig
	metrics   config.MetricsConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// Extraction domain
	ExtractionUC     extraction.UseCase
	ExtractionConfig extractionHTTP.Config
	// TelegramHandler is optional; the webhook route is skipped when nil.
	TelegramHandler tgDelivery.Handler

	// Surfaces
	RateLimit config.RateLimitConfig
	Metrics   config.MetricsConfig
}

// New creates a new HTTPServer instance and registers all routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		extractionUC:    cfg.ExtractionUC,
		extractionCfg:   cfg.ExtractionConfig,
		telegramHandler: cfg.TelegramHandler,
		rateLimit:       cfg.RateLimit,
		metrics:         cfg.Metrics,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.extractionUC == nil {
		return errors.New("extraction usecase is required")
	}
	return nil
}

// Handler exposes the routed engine, for tests and embedding.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
