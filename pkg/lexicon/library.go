package lexicon

import "strings"

// Library holds the trigger-word catalogs. It is built once and never mutated, so it is
// safe for unsynchronized concurrent reads.
type Library struct {
	actionVerbs    map[string]struct{}
	actionPhrases  []string
	requestPhrases []string
	urgent         []string
	high           []string
	lowUrgency     []string
	generic        map[string]struct{}
	genericWords   map[string]struct{}
	choreVerbs     []string
	questionWords  map[string]struct{}
	pronouns       map[string]struct{}
	categories     map[Category]map[string]Strength
}

var std = build()

// Default returns the shared, process-wide Library.
func Default() *Library {
	return std
}

func build() *Library {
	return &Library{
		actionVerbs:    toSet(actionVerbWords),
		actionPhrases:  actionVerbPhrases,
		requestPhrases: requestPhrases,
		urgent:         urgentWords,
		high:           highWords,
		lowUrgency:     lowUrgencyPhrases,
		generic:        toSet(genericPhrases),
		genericWords:   toSet(genericWords),
		choreVerbs:     choreVerbWords,
		questionWords:  toSet(questionWords),
		pronouns:       toSet(instructionPronouns),
		categories:     categoryTable,
	}
}

// IsActionVerb reports whether word (or a multi-word verb like "pick up") is an action verb.
func (l *Library) IsActionVerb(word string) bool {
	w := strings.TrimSpace(Normalize(word))
	if _, ok := l.actionVerbs[w]; ok {
		return true
	}
	for _, p := range l.actionPhrases {
		if w == p {
			return true
		}
	}
	return false
}

// ContainsActionVerb reports whether any action verb appears in text.
func (l *Library) ContainsActionVerb(text string) bool {
	norm := Normalize(text)
	for _, tok := range strings.Fields(norm) {
		if _, ok := l.actionVerbs[tok]; ok {
			return true
		}
	}
	for _, p := range l.actionPhrases {
		if ContainsPhrase(norm, p) {
			return true
		}
	}
	return false
}

// LeadingActionVerb returns the action verb text opens with, if any.
// Multi-word verbs are preferred over their first word.
func (l *Library) LeadingActionVerb(text string) (string, bool) {
	norm := Normalize(text)
	for _, p := range l.actionPhrases {
		if strings.HasPrefix(norm, " "+p+" ") {
			return p, true
		}
	}
	toks := strings.Fields(norm)
	if len(toks) == 0 {
		return "", false
	}
	if _, ok := l.actionVerbs[toks[0]]; ok {
		return toks[0], true
	}
	return "", false
}

// IsRequestPhrase reports whether text contains a request phrase such as "can you".
func (l *Library) IsRequestPhrase(text string) bool {
	norm := Normalize(text)
	for _, p := range l.requestPhrases {
		if ContainsPhrase(norm, p) {
			return true
		}
	}
	return false
}

// IsUrgencyWord reports whether word belongs to the urgent or high tier.
func (l *Library) IsUrgencyWord(word string) bool {
	w := strings.TrimSpace(Normalize(word))
	for _, u := range l.urgent {
		if w == u {
			return true
		}
	}
	for _, h := range l.high {
		if w == h {
			return true
		}
	}
	return false
}

// UrgencyTier returns the highest urgency tier present in text. Low-urgency phrases are
// removed first.
func (l *Library) UrgencyTier(text string) Tier {
	norm := l.stripLowUrgency(Normalize(text))
	for _, u := range l.urgent {
		if ContainsPhrase(norm, u) {
			return TierUrgent
		}
	}
	for _, h := range l.high {
		if ContainsPhrase(norm, h) {
			return TierHigh
		}
	}
	return TierNone
}

// IsLowUrgency reports whether text contains deliberately low-urgency phrasing.
func (l *Library) IsLowUrgency(text string) bool {
	norm := Normalize(text)
	for _, p := range l.lowUrgency {
		if ContainsPhrase(norm, p) {
			return true
		}
	}
	return false
}

func (l *Library) stripLowUrgency(norm string) string {
	for _, p := range l.lowUrgency {
		norm = strings.ReplaceAll(norm, " "+p+" ", " ")
	}
	return norm
}

// CategoryKeywords returns a copy of the keyword set for c.
func (l *Library) CategoryKeywords(c Category) map[string]Strength {
	src := l.categories[c]
	out := make(map[string]Strength, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// CategoryScores returns the weighted keyword score per category, keyed in Categories order.
func (l *Library) CategoryScores(text string) map[Category]int {
	norm := Normalize(text)
	scores := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		for kw, strength := range l.categories[c] {
			if ContainsPhrase(norm, kw) {
				scores[c] += int(strength)
			}
		}
	}
	return scores
}

// HasStrongCategoryKeyword reports whether text contains any strong category keyword.
func (l *Library) HasStrongCategoryKeyword(text string) bool {
	norm := Normalize(text)
	for _, c := range Categories {
		for kw, strength := range l.categories[c] {
			if strength == Strong && ContainsPhrase(norm, kw) {
				return true
			}
		}
	}
	return false
}

// IsGenericPhrase reports whether text is conversational noise ("ok", "thanks", "hello").
func (l *Library) IsGenericPhrase(text string) bool {
	toks := strings.Fields(Normalize(text))
	if len(toks) == 0 {
		return false
	}
	if _, ok := l.generic[strings.Join(toks, " ")]; ok {
		return true
	}
	for _, tok := range toks {
		if _, ok := l.genericWords[tok]; !ok {
			return false
		}
	}
	return true
}

// HasQuestionIndicator reports whether text reads as a question.
func (l *Library) HasQuestionIndicator(text string) bool {
	if strings.Contains(text, "?") {
		return true
	}
	for _, tok := range Tokens(text) {
		if _, ok := l.questionWords[tok]; ok {
			return true
		}
	}
	return false
}

// HasInstructionPronoun reports whether "i" or "you" frames the text.
func (l *Library) HasInstructionPronoun(text string) bool {
	for _, tok := range Tokens(text) {
		if _, ok := l.pronouns[tok]; ok {
			return true
		}
	}
	return false
}

// ContainsChoreVerb reports whether text contains a chore verb such as "clean" or "take out".
func (l *Library) ContainsChoreVerb(text string) bool {
	norm := Normalize(text)
	for _, v := range l.choreVerbs {
		if ContainsPhrase(norm, v) {
			return true
		}
	}
	return false
}

// HasKeyword reports whether text contains a keyword of category c with at least strength s.
func (l *Library) HasKeyword(text string, c Category, s Strength) bool {
	norm := Normalize(text)
	for kw, strength := range l.categories[c] {
		if strength >= s && ContainsPhrase(norm, kw) {
			return true
		}
	}
	return false
}

// RequestPhrases returns a copy of the request phrase catalog.
func (l *Library) RequestPhrases() []string {
	return append([]string(nil), l.requestPhrases...)
}

// LowUrgencyPhrases returns a copy of the low-urgency phrase catalog.
func (l *Library) LowUrgencyPhrases() []string {
	return append([]string(nil), l.lowUrgency...)
}
