package strategy

import (
	"autonomous-task-extraction/internal/model"
	"autonomous-task-extraction/pkg/datemath"
)

// Input is what every matcher sees: one span plus its temporal resolution.
// Temporal ranges are offsets into Span.Text.
type Input struct {
	Span     model.Span
	Temporal datemath.Resolution
}

// Candidate is a matcher's proposal before enrichment and aggregation.
type Candidate struct {
	Strategy model.Strategy
	Base     float64
	Title    string
	// Hint is an optional priority the phrasing implies ("" for none).
	Hint model.Priority
}

// Matcher is one independent extraction strategy.
type Matcher struct {
	Strategy model.Strategy
	Base     float64
	Match    func(in Input) (Candidate, bool)
}

// Base confidences per strategy.
const (
	BaseReminder      = 0.92
	BaseDeadline      = 0.93
	BaseAppointment   = 0.86
	BaseDirectRequest = 0.85
	BaseScheduledItem = 0.84
	BaseHousehold     = 0.76
	BaseShopping      = 0.75
	BaseActionItem    = 0.65
	BaseImperative    = 0.60
)
