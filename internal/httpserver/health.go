package httpserver

import (
	"github.com/gin-gonic/gin"

	"autonomous-task-extraction/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "autonomous-task-extraction"
)

type statusResp struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

func (srv HTTPServer) status(c *gin.Context, status string) {
	response.OK(c, statusResp{
		Status:      status,
		Service:     ServiceName,
		Version:     HealthVersion,
		Environment: srv.environment,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	srv.status(c, "healthy")
}

// readyCheck reports ready once routes are mapped; the engine has no backing stores.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	srv.status(c, "ready")
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.status(c, "alive")
}
