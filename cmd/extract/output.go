package main

import (
	"time"

	"autonomous-task-extraction/internal/extraction"
	"autonomous-task-extraction/internal/extraction/confidence"
	"autonomous-task-extraction/internal/model"
	"autonomous-task-extraction/pkg/response"
)

type spanOutput struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type taskOutput struct {
	Title              string         `json:"title"`
	Span               spanOutput     `json:"span"`
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

func newTaskOutput(t model.ExtractedTask) taskOutput {
	out := taskOutput{
		Title:              t.Title,
		Span:               spanOutput{Text: t.SourceSpan.Text, Start: t.SourceSpan.Start, End: t.SourceSpan.End},
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
		out.Date = &d
	}
	if t.ParsedTime != nil {
		out.Time = t.ParsedTime.String()
	}
	return out
}

type extractOutput struct {
	ReferenceNow time.Time    `json:"reference_now"`
	Count        int          `json:"count"`
	Tasks        []taskOutput `json:"tasks"`
}

func newExtractOutput(now time.Time, tasks []model.ExtractedTask, minConfidence float64) extractOutput {
	out := extractOutput{ReferenceNow: now, Tasks: []taskOutput{}}
	for _, t := range tasks {
		if t.OverallConfidence < minConfidence {
			continue
		}
		out.Tasks = append(out.Tasks, newTaskOutput(t))
	}
	out.Count = len(out.Tasks)
	return out
}

type candidateOutput struct {
	Task        taskOutput              `json:"task"`
	Base        float64                 `json:"base_confidence"`
	Adjustments []confidence.Adjustment `json:"adjustments"`
	Competing   []model.Strategy        `json:"competing_strategies,omitempty"`
	Discarded   bool                    `json:"discarded"`
}

type explainOutput struct {
	ReferenceNow time.Time         `json:"reference_now"`
	Candidates   []candidateOutput `json:"candidates"`
}

func newExplainOutput(now time.Time, res extraction.ExplainOutput) explainOutput {
	out := explainOutput{ReferenceNow: now, Candidates: make([]candidateOutput, 0, len(res.Candidates))}
	for _, c := range res.Candidates {
		out.Candidates = append(out.Candidates, candidateOutput{
			Task:        newTaskOutput(c.Task),
			Base:        c.Base,
			Adjustments: c.Adjustments,
			Competing:   c.Competing,
			Discarded:   c.Discarded,
		})
	}
	return out
}
