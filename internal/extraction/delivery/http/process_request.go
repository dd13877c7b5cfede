package http

import (
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

// processExtractReq binds and validates the extraction request body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	if h.cfg.MaxInputChars > 0 && utf8.RuneCountInString(req.text()) > h.cfg.MaxInputChars {
		return req, errTextTooLong
	}
	return req, nil
}
