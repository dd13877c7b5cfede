package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"autonomous-task-extraction/internal/model"
	"autonomous-task-extraction/pkg/response"
)

// Extract godoc
// @Summary     Extract task candidates
// @Description Segments free-form text and returns ranked, deduplicated task candidates at or above min_confidence.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Raw input"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/extractions [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()
	start := time.Now()

	req, err := h.processExtractReq(c)
	if err != nil {
		h.l.Warnf(ctx, "extraction.delivery.http.Extract: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput(h.now().In(h.cfg.Location)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	tasks := h.filter(output.Tasks, req.threshold(h.cfg.MinConfidence))
	h.metrics.observe(endpointExtract, model.Origin(req.Origin), tasks, time.Since(start))

	response.OK(c, h.newExtractResp(tasks))
}

// Explain godoc
// @Summary     Explain candidate scoring
// @Description Returns every scored candidate in span order with its base confidence, signal adjustments and whether deduplication discarded it.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Raw input"
// @Success     200  {object} explainResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/extractions/explain [POST]
func (h *handler) Explain(c *gin.Context) {
	ctx := c.Request.Context()
	start := time.Now()

	req, err := h.processExtractReq(c)
	if err != nil {
		h.l.Warnf(ctx, "extraction.delivery.http.Explain: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Explain(ctx, req.toInput(h.now().In(h.cfg.Location)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Explain: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.metrics.observe(endpointExplain, model.Origin(req.Origin), nil, time.Since(start))
	response.OK(c, h.newExplainResp(output))
}

// filter applies the caller's threshold and the result cap to an already ranked list.
func (h *handler) filter(tasks []model.ExtractedTask, threshold float64) []model.ExtractedTask {
	out := make([]model.ExtractedTask, 0, len(tasks))
	for _, t := range tasks {
		if t.OverallConfidence < threshold {
			continue
		}
		out = append(out, t)
		if h.cfg.MaxResults > 0 && len(out) == h.cfg.MaxResults {
			break
		}
	}
	return out
}
