package priority

import (
	"autonomous-task-extraction/internal/model"
	"autonomous-task-extraction/pkg/lexicon"
)

// Inferencer maps urgency vocabulary to a priority.
type Inferencer struct {
	lib *lexicon.Library
}

// New creates an Inferencer backed by lib.
func New(lib *lexicon.Library) *Inferencer {
	return &Inferencer{lib: lib}
}

// Infer returns urgent or high on the first matching tier, otherwise medium.
// It never returns low.
func (i *Inferencer) Infer(text string) model.Priority {
	switch i.lib.UrgencyTier(text) {
	case lexicon.TierUrgent:
		return model.PriorityUrgent
	case lexicon.TierHigh:
		return model.PriorityHigh
	default:
		return model.PriorityMedium
	}
}

// Resolve merges an inferred priority with a matcher's hint. Inferred urgency wins,
// then the hint, then medium.
func Resolve(inferred, hint model.Priority) model.Priority {
	switch inferred {
	case model.PriorityUrgent, model.PriorityHigh:
		return inferred
	}
	if hint != "" {
		return hint
	}
	return model.PriorityMedium
}
