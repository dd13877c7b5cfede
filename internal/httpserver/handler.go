package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	extractionHTTP "autonomous-task-extraction/internal/extraction/delivery/http"
	"autonomous-task-extraction/internal/middleware"
	"autonomous-task-extraction/internal/model"
)

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	if srv.metrics.Enabled {
		srv.gin.GET(srv.metrics.Path, gin.WrapH(promhttp.Handler()))
	}
}

// registerDomainRoutes wires each domain: UseCase -> Handler -> Routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	var metrics *extractionHTTP.Metrics
	if srv.metrics.Enabled {
		metrics = extractionHTTP.NewMetrics()
	}
	h := extractionHTTP.New(srv.l, srv.extractionUC, srv.extractionCfg, metrics)
	extractionHTTP.RegisterRoutes(api, h, mw.RateLimit())
	srv.l.Infof(ctx, "Extraction routes registered at /api/v1/extractions")

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
