package confidence

import (
	"strings"
	"unicode/utf8"

	"autonomous-task-extraction/pkg/lexicon"
)

// Signal names one adjustment the aggregator can apply.
type Signal string

const (
	SignalActionVerb    Signal = "action_verb"
	SignalTimeReference Signal = "time_reference"
	SignalRequest       Signal = "request_keyword"
	SignalStrongKeyword Signal = "strong_category_keyword"
	SignalUrgency       Signal = "urgency_word"
	SignalPronoun       Signal = "instruction_pronoun"
	SignalGeneric       Signal = "generic_phrase"
	SignalTooShort      Signal = "too_short"
	SignalQuestion      Signal = "question_without_action"
	SignalTooLong       Signal = "too_many_words"
)

// Weights are the per-signal deltas.
var Weights = map[Signal]float64{
	SignalActionVerb:    0.30,
	SignalTimeReference: 0.20,
	SignalRequest:       0.25,
	SignalStrongKeyword: 0.15,
	SignalUrgency:       0.10,
	SignalPronoun:       0.05,
	SignalGeneric:       -0.40,
	SignalTooShort:      -0.30,
	SignalQuestion:      -0.20,
	SignalTooLong:       -0.10,
}

const (
	minChars = 3
	maxWords = 8
)

// Adjustment is one applied signal.
type Adjustment struct {
	Signal Signal  `json:"signal"`
	Delta  float64 `json:"delta"`
}

// Score is the aggregated confidence of a candidate.
type Score struct {
	Base        float64
	Final       float64
	Adjustments []Adjustment
}

// Aggregator combines a strategy's base confidence with lexical signals.
type Aggregator struct {
	lib *lexicon.Library
}

// New creates an Aggregator backed by lib.
func New(lib *lexicon.Library) *Aggregator {
	return &Aggregator{lib: lib}
}

// Aggregate sums base and every applicable adjustment, then clamps to [0, 1].
func (a *Aggregator) Aggregate(base float64, text string, hasTimeRef bool) Score {
	text = strings.TrimSpace(text)
	hasVerb := a.lib.ContainsActionVerb(text)

	var adj []Adjustment
	apply := func(ok bool, s Signal) {
		if ok {
			adj = append(adj, Adjustment{Signal: s, Delta: Weights[s]})
		}
	}

	apply(hasVerb, SignalActionVerb)
	apply(hasTimeRef, SignalTimeReference)
	apply(a.lib.IsRequestPhrase(text), SignalRequest)
	apply(a.lib.HasStrongCategoryKeyword(text), SignalStrongKeyword)
	apply(a.lib.UrgencyTier(text) != lexicon.TierNone, SignalUrgency)
	apply(a.lib.HasInstructionPronoun(text), SignalPronoun)
	apply(a.lib.IsGenericPhrase(text), SignalGeneric)
	apply(utf8.RuneCountInString(text) < minChars, SignalTooShort)
	apply(a.lib.HasQuestionIndicator(text) && !hasVerb, SignalQuestion)
	apply(len(strings.Fields(text)) > maxWords, SignalTooLong)

	total := base
	for _, x := range adj {
		total += x.Delta
	}
	return Score{Base: base, Final: clamp(total), Adjustments: adj}
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Band names the descriptive band a score falls in.
func Band(score float64) string {
	switch {
	case score >= 0.8:
		return "very_high"
	case score >= 0.6:
		return "high"
	case score >= 0.4:
		return "medium"
	case score >= 0.2:
		return "low"
	default:
		return "very_low"
	}
}
