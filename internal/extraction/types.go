package extraction

import (
	"time"

	"autonomous-task-extraction/internal/extraction/confidence"
	"autonomous-task-extraction/internal/model"
)

// ExtractInput is the input for Extract and Explain.
type ExtractInput struct {
	Input model.RawInput
	// ReferenceNow anchors relative dates. Zero falls back to Input.ReceivedAt.
	ReferenceNow time.Time
}

// ExtractOutput is the ranked extraction result.
type ExtractOutput struct {
	Tasks []model.ExtractedTask
}

// Explanation describes how one candidate was scored.
type Explanation struct {
	Task        model.ExtractedTask
	Base        float64
	Adjustments []confidence.Adjustment
	// Competing lists the other strategies that fired on the same span.
	Competing []model.Strategy
	// Discarded is set when an overlapping, higher-scoring candidate won deduplication.
	Discarded bool
}

// ExplainOutput lists every scored candidate in span order.
type ExplainOutput struct {
	Candidates []Explanation
}
