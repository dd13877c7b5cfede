package strategy

import (
	"regexp"
	"strings"

	"autonomous-task-extraction/internal/model"
	"autonomous-task-extraction/pkg/datemath"
	"autonomous-task-extraction/pkg/lexicon"
)

var (
	reminderRe = regexp.MustCompile(`(?i)\b(?:remind\s+me(?:\s+(?:to|about|that))?|don['’]?t\s+let\s+me\s+forget(?:\s+(?:to|about))?|note\s+to\s+self|set\s+a\s+reminder(?:\s+(?:to|for))?|reminder(?:\s*:|\s+to))`)

	deadlineRe = regexp.MustCompile(`(?i)\b(?:due(?:\s+(?:date|by|on|at|before))?|deadline(?:\s+(?:is|for|on))?|(?:must|needs?\s+to|has\s+to)\s+be\s+(?:done|finished|completed|submitted|sent|paid|in|ready)(?:\s+(?:by|before))?|no\s+later\s+than)\b`)

	deadlineLead = regexp.MustCompile(`(?i)^(?:by|before|until|no\s+later\s+than)\s`)

	appointmentRe = regexp.MustCompile(`(?i)\b(?:appointment|appt|doctor|dentist|dr|physician|meeting|checkup|check-up|interview|consultation|session|haircut|vet|therapist|therapy|physio|orthodontist|optometrist|dermatologist|surgery|conference|standup|(?:call|lunch|dinner|coffee|meet|meeting)\s+with)\b`)

	bookingRe = regexp.MustCompile(`(?i)\b(?:appointment|appt|booked|scheduled|reservation|with)\b`)

	buyRe       = regexp.MustCompile(`(?i)^(?:buy|purchase|restock)\b`)
	fetchRe     = regexp.MustCompile(`(?i)^(?:get|grab|pick\s+up|order)\b`)
	needToBuyRe = regexp.MustCompile(`(?i)\b(?:we\s+need(?:\s+(?:more|some))?|we['’]?re\s+(?:out\s+of|low\s+on)|we\s+are\s+(?:out\s+of|low\s+on)|running\s+low\s+on|ran\s+out\s+of|out\s+of|need\s+more|shopping\s+list|grocery\s+list)\b[\s:,-]*`)

	labelRe = regexp.MustCompile(`(?i)^\s*(?:action\s+items?|to-?dos?|to\s+do|tasks?|next\s+steps?|ai)\s*[:\-]\s*`)
)

// Default returns the eight matchers in registry order. Select breaks base-confidence
// ties by this order.
func Default(lib *lexicon.Library) []Matcher {
	m := &matchers{
		lib:     lib,
		titles:  newTitler(lib.LowUrgencyPhrases()),
		request: phraseRegexp(lib.RequestPhrases()),
	}
	return []Matcher{
		{Strategy: model.StrategyReminder, Base: BaseReminder, Match: m.reminder},
		{Strategy: model.StrategyDeadline, Base: BaseDeadline, Match: m.deadline},
		{Strategy: model.StrategyAppointment, Base: BaseAppointment, Match: m.appointment},
		{Strategy: model.StrategyDirectRequest, Base: BaseDirectRequest, Match: m.directRequest},
		{Strategy: model.StrategyScheduledItem, Base: BaseScheduledItem, Match: m.scheduledItem},
		{Strategy: model.StrategyHouseholdTask, Base: BaseHousehold, Match: m.householdTask},
		{Strategy: model.StrategyShoppingList, Base: BaseShopping, Match: m.shoppingList},
		{Strategy: model.StrategyActionItem, Base: BaseActionItem, Match: m.actionItem},
	}
}

type matchers struct {
	lib     *lexicon.Library
	titles  *titler
	request *regexp.Regexp
}

func (m *matchers) candidate(s model.Strategy, base float64, title string, in Input) (Candidate, bool) {
	if title == "" || m.lib.IsGenericPhrase(title) {
		return Candidate{}, false
	}
	var hint model.Priority
	if m.lib.IsLowUrgency(in.Span.Text) {
		hint = model.PriorityLow
	}
	return Candidate{Strategy: s, Base: base, Title: title, Hint: hint}, true
}

// triggered cleans the text with the trigger and everything before it removed. When that
// leaves nothing ("buy milk, remind me") only the trigger is removed.
func (m *matchers) triggered(in Input, loc []int) string {
	cuts := append([]datemath.Range{{Start: 0, End: loc[1]}}, in.Temporal.Ranges...)
	if title := m.titles.clean(in.Span.Text, cuts...); title != "" {
		return title
	}
	cuts[0] = datemath.Range{Start: loc[0], End: loc[1]}
	return m.titles.clean(in.Span.Text, cuts...)
}

func (m *matchers) untimed(in Input) string {
	return m.titles.clean(in.Span.Text, in.Temporal.Ranges...)
}

func (m *matchers) reminder(in Input) (Candidate, bool) {
	loc := reminderRe.FindStringIndex(in.Span.Text)
	if loc == nil {
		return Candidate{}, false
	}
	return m.candidate(model.StrategyReminder, BaseReminder, m.triggered(in, loc), in)
}

func (m *matchers) deadline(in Input) (Candidate, bool) {
	text := in.Span.Text
	var cuts []datemath.Range
	for _, loc := range deadlineRe.FindAllStringIndex(text, -1) {
		// "due to the rain"
		if strings.HasPrefix(strings.ToLower(text[loc[0]:]), "due") && strings.HasPrefix(strings.ToLower(text[loc[1]:]), " to ") {
			continue
		}
		cuts = append(cuts, datemath.Range{Start: loc[0], End: loc[1]})
	}
	if len(cuts) == 0 {
		for _, r := range in.Temporal.Ranges {
			if deadlineLead.MatchString(text[r.Start:r.End]) && m.lib.ContainsActionVerb(text) {
				cuts = append(cuts, r)
			}
		}
	}
	if len(cuts) == 0 {
		return Candidate{}, false
	}

	title := m.titles.clean(text, append(cuts, in.Temporal.Ranges...)...)
	c, ok := m.candidate(model.StrategyDeadline, BaseDeadline, title, in)
	if !ok {
		return Candidate{}, false
	}
	c.Hint = model.PriorityHigh
	return c, true
}

func (m *matchers) appointment(in Input) (Candidate, bool) {
	text := in.Span.Text
	if !appointmentRe.MatchString(text) {
		return Candidate{}, false
	}
	if !in.Temporal.Found() && !bookingRe.MatchString(text) {
		return Candidate{}, false
	}
	return m.candidate(model.StrategyAppointment, BaseAppointment, m.untimed(in), in)
}

func (m *matchers) directRequest(in Input) (Candidate, bool) {
	if m.request == nil {
		return Candidate{}, false
	}
	loc := m.request.FindStringIndex(in.Span.Text)
	if loc == nil {
		return Candidate{}, false
	}
	title := m.triggered(in, loc)
	if !m.lib.ContainsActionVerb(title) && !in.Temporal.Found() {
		return Candidate{}, false
	}
	return m.candidate(model.StrategyDirectRequest, BaseDirectRequest, title, in)
}

func (m *matchers) scheduledItem(in Input) (Candidate, bool) {
	if !in.Temporal.Found() {
		return Candidate{}, false
	}
	title := m.untimed(in)
	if !m.lib.ContainsActionVerb(title) && wordCount(title) < 2 {
		return Candidate{}, false
	}
	return m.candidate(model.StrategyScheduledItem, BaseScheduledItem, title, in)
}

func (m *matchers) householdTask(in Input) (Candidate, bool) {
	text := in.Span.Text
	if !m.lib.ContainsChoreVerb(text) || !m.lib.HasKeyword(text, lexicon.CategoryHousehold, lexicon.Strong) {
		return Candidate{}, false
	}
	return m.candidate(model.StrategyHouseholdTask, BaseHousehold, m.untimed(in), in)
}

func (m *matchers) shoppingList(in Input) (Candidate, bool) {
	title := m.untimed(in)
	switch {
	case buyRe.MatchString(title):
		if !hasObject(buyRe, title) {
			return Candidate{}, false
		}
	case fetchRe.MatchString(title) && !m.strongOutsideHousehold(title):
		if !hasObject(fetchRe, title) {
			return Candidate{}, false
		}
	default:
		loc := needToBuyRe.FindStringIndex(in.Span.Text)
		if loc == nil {
			return Candidate{}, false
		}
		rest := m.titles.clean(in.Span.Text, append([]datemath.Range{{Start: 0, End: loc[1]}}, in.Temporal.Ranges...)...)
		if rest == "" {
			return Candidate{}, false
		}
		title = "Buy " + lowerFirst(rest)
	}
	return m.candidate(model.StrategyShoppingList, BaseShopping, title, in)
}

// hasObject reports whether anything follows the leading verb matched by re.
func hasObject(re *regexp.Regexp, title string) bool {
	loc := re.FindStringIndex(title)
	return loc != nil && strings.Trim(title[loc[1]:], trimSet) != ""
}

// strongOutsideHousehold keeps "pick up the kids" or "get the report done" off the list.
func (m *matchers) strongOutsideHousehold(text string) bool {
	for _, c := range lexicon.Categories {
		if c != lexicon.CategoryHousehold && m.lib.HasKeyword(text, c, lexicon.Strong) {
			return true
		}
	}
	return false
}

func (m *matchers) actionItem(in Input) (Candidate, bool) {
	text := in.Span.Text
	if loc := labelRe.FindStringIndex(text); loc != nil {
		title := m.titles.clean(text, append([]datemath.Range{{Start: loc[0], End: loc[1]}}, in.Temporal.Ranges...)...)
		return m.candidate(model.StrategyActionItem, BaseActionItem, title, in)
	}

	title := m.untimed(in)
	if in.Span.Listed {
		return m.candidate(model.StrategyActionItem, BaseActionItem, title, in)
	}
	// a bare verb ("buy", "pick up") is not a task
	if verb, ok := m.lib.LeadingActionVerb(title); ok && wordCount(title) > wordCount(verb) {
		return m.candidate(model.StrategyActionItem, BaseImperative, title, in)
	}
	return Candidate{}, false
}
