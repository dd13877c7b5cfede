package model

import (
	"time"

	"autonomous-task-extraction/pkg/datemath"
)

// Strategy identifies the matcher that produced a candidate.
type Strategy string

const (
	StrategyDirectRequest Strategy = "direct_request"
	StrategyScheduledItem Strategy = "scheduled_item"
	StrategyShoppingList  Strategy = "shopping_list"
	StrategyAppointment   Strategy = "appointment"
	StrategyReminder      Strategy = "reminder"
	StrategyDeadline      Strategy = "deadline"
	StrategyActionItem    Strategy = "action_item"
	StrategyHouseholdTask Strategy = "household_task"
)

// Priority is the inferred urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ExtractedTask is one ranked task candidate.
type ExtractedTask struct {
	Title       string
	Description string
	SourceSpan  Span

	StrategyUsed Strategy

	ParsedDate     *time.Time
	ParsedTime     *datemath.TimeOfDay
	DateConfidence float64

	SuggestedCategory  string
	CategoryConfidence float64

	Priority Priority

	// OverallConfidence is always the confidence aggregator's output.
	OverallConfidence float64
}
