package http

import (
	"time"

	"autonomous-task-extraction/internal/extraction"
	"autonomous-task-extraction/internal/extraction/confidence"
	"autonomous-task-extraction/internal/model"
	"autonomous-task-extraction/pkg/response"
)

// --- Request DTOs ---

type extractReq struct {
	Text          *string    `json:"text"           binding:"required"`
	Origin        string     `json:"origin"         binding:"required"`
	ReceivedAt    *time.Time `json:"received_at"`
	ReferenceNow  *time.Time `json:"reference_now"`
	MinConfidence *float64   `json:"min_confidence"`
}

func (r extractReq) validate() error {
	if !model.Origin(r.Origin).Valid() {
		return errInvalidOrigin
	}
	if r.MinConfidence != nil && (*r.MinConfidence < 0 || *r.MinConfidence > 1) {
		return errInvalidConfidence
	}
	return nil
}

// toInput fills missing timestamps with now.
func (r extractReq) toInput(now time.Time) extraction.ExtractInput {
	received := now
	if r.ReceivedAt != nil {
		received = *r.ReceivedAt
	}
	var ref time.Time
	if r.ReferenceNow != nil {
		ref = *r.ReferenceNow
	}
	return extraction.ExtractInput{
		Input: model.RawInput{
			Text:       r.text(),
			Origin:     model.Origin(r.Origin),
			ReceivedAt: received,
		},
		ReferenceNow: ref,
	}
}

func (r extractReq) text() string {
	if r.Text == nil {
		return ""
	}
	return *r.Text
}

func (r extractReq) threshold(def float64) float64 {
	if r.MinConfidence != nil {
		return *r.MinConfidence
	}
	return def
}

// --- Response DTOs ---

type spanResp struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type taskResp struct {
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Span               spanResp       `json:"span"`
	Strategy           string         `json:"strategy"`
	Date               *response.Date `json:"date,omitempty"`
	Time               string         `json:"time,omitempty"`
	DateConfidence     float64        `json:"date_confidence"`
	Category           string         `json:"category"`
	CategoryConfidence float64        `json:"category_confidence"`
	Priority           string         `json:"priority"`
	Confidence         float64        `json:"confidence"`
	Band               string         `json:"confidence_band"`
}

func newTaskResp(t model.ExtractedTask) taskResp {
	resp := taskResp{
		Title:       t.Title,
		Description: t.Description,
		Span: spanResp{
			Text:  t.SourceSpan.Text,
			Start: t.SourceSpan.Start,
			End:   t.SourceSpan.End,
		},
		Strategy:           string(t.StrategyUsed),
		DateConfidence:     t.DateConfidence,
		Category:           t.SuggestedCategory,
		CategoryConfidence: t.CategoryConfidence,
		Priority:           string(t.Priority),
		Confidence:         t.OverallConfidence,
		Band:               confidence.Band(t.OverallConfidence),
	}
	if t.ParsedDate != nil {
		d := response.Date(*t.ParsedDate)
		resp.Date = &d
	}
	if t.ParsedTime != nil {
		resp.Time = t.ParsedTime.String()
	}
	return resp
}

type extractResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newExtractResp(tasks []model.ExtractedTask) extractResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return extractResp{Tasks: items, Count: len(items)}
}

type candidateResp struct {
	Task        taskResp                `json:"task"`
	Base        float64                 `json:"base_confidence"`
	Adjustments []confidence.Adjustment `json:"adjustments"`
	Competing   []string                `json:"competing_strategies,omitempty"`
	Discarded   bool                    `json:"discarded"`
}

type explainResp struct {
	Candidates []candidateResp `json:"candidates"`
	Count      int             `json:"count"`
}

func (h *handler) newExplainResp(out extraction.ExplainOutput) explainResp {
	items := make([]candidateResp, len(out.Candidates))
	for i, c := range out.Candidates {
		competing := make([]string, len(c.Competing))
		for j, s := range c.Competing {
			competing[j] = string(s)
		}
		adjustments := c.Adjustments
		if adjustments == nil {
			adjustments = []confidence.Adjustment{}
		}
		items[i] = candidateResp{
			Task:        newTaskResp(c.Task),
			Base:        c.Base,
			Adjustments: adjustments,
			Competing:   competing,
			Discarded:   c.Discarded,
		}
	}
	return explainResp{Candidates: items, Count: len(items)}
}
