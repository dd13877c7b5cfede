package segment

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"autonomous-task-extraction/internal/model"
	"autonomous-task-extraction/pkg/datemath"
)

var (
	// "- [ ] ", "[x] ", "- ", "* ", "• ", "1. ", "2) ", "a) "
	lineMarkerRe = regexp.MustCompile(`^[ \t]*(?:[-*+•][ \t]+\[[ xX]\]|\[[ xX]\]|[-*+•]|\d{1,3}[.)]|[a-zA-Z]\))[ \t]+`)

	inlineMarkerRe = regexp.MustCompile(`(?:^|[ \t])(\d{1,2})[.)][ \t]+`)

	connectiveRe = regexp.MustCompile(`(?i)[ \t]*,?[ \t]*\b(?:and\s+then|after\s+that|and\s+also)\b[ \t,]*`)
)

var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "st": {}, "vs": {}, "etc": {}, "jr": {}, "sr": {},
	"prof": {}, "approx": {}, "no": {}, "e.g": {}, "i.e": {}, "inc": {}, "ltd": {}, "co": {},
	"ave": {}, "rd": {}, "mt": {}, "jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {},
	"jul": {}, "aug": {}, "sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
}

// segRef anchors temporal scanning. Only expression ranges are used here, so any leap
// year works.
var segRef = time.Date(2000, time.January, 3, 12, 0, 0, 0, time.UTC)

// Segmenter splits raw text into candidate spans.
type Segmenter struct {
	dates *datemath.Parser
}

// New creates a Segmenter. dates is used to avoid cutting through date and time
// expressions.
func New(dates *datemath.Parser) *Segmenter {
	return &Segmenter{dates: dates}
}

type frag struct {
	start, end int
	listed     bool
	// joined is set when the fragment follows a sentence or connective break inside the
	// same line item, so it may continue the previous fragment's clause.
	joined bool
}

// Segment splits raw on line breaks, list markers and sentence boundaries, and for voice
// input on spoken connectives. When a fragment opens with a temporal expression an extra
// span covering it and the previous fragment is emitted. Spans are ordered by start
// offset and never blank.
func (s *Segmenter) Segment(raw string, origin model.Origin) []model.Span {
	var spans []model.Span
	for _, line := range lines(raw) {
		for _, item := range s.items(raw, line) {
			frags := s.sentences(raw, item)
			if origin == model.OriginVoice {
				frags = connectives(raw, frags)
			}
			spans = append(spans, s.emit(raw, frags)...)
		}
	}

	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
	return spans
}

func lines(raw string) []frag {
	var out []frag
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i < len(raw) && raw[i] != '\n' {
			continue
		}
		end := i
		if end > start && raw[end-1] == '\r' {
			end--
		}
		out = append(out, frag{start: start, end: end})
		start = i + 1
	}
	return out
}

// items splits a line on an inline numbered run ("1. a 2. b 3. c") or strips a single
// leading list marker.
func (s *Segmenter) items(raw string, line frag) []frag {
	text := raw[line.start:line.end]

	if cuts := inlineRun(text); len(cuts) >= 2 {
		out := make([]frag, 0, len(cuts))
		for i, c := range cuts {
			end := len(text)
			if i+1 < len(cuts) {
				end = cuts[i+1][0]
			}
			out = append(out, frag{start: line.start + c[1], end: line.start + end, listed: true})
		}
		return out
	}

	if m := lineMarkerRe.FindStringIndex(text); m != nil {
		return []frag{{start: line.start + m[1], end: line.end, listed: true}}
	}
	return []frag{line}
}

// inlineRun returns the [markerStart, contentStart) offsets of a numbered run that starts
// at 1 and counts up by one.
func inlineRun(text string) [][2]int {
	var cuts [][2]int
	want := 1
	for _, m := range inlineMarkerRe.FindAllStringSubmatchIndex(text, -1) {
		n, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil || n != want {
			continue
		}
		cuts = append(cuts, [2]int{m[0], m[1]})
		want++
	}
	return cuts
}

// sentences splits an item at terminal punctuation followed by whitespace and a capital
// letter, except inside date/time expressions and after known abbreviations.
func (s *Segmenter) sentences(raw string, item frag) []frag {
	text := raw[item.start:item.end]
	ranges := s.dates.Expressions(text, segRef)

	var out []frag
	start := 0
	for i := 0; i < len(text); i++ {
		if !isTerminal(text[i]) {
			continue
		}
		j := i
		for j < len(text) && isTerminal(text[j]) {
			j++
		}
		k := j
		for k < len(text) && (text[k] == ' ' || text[k] == '\t') {
			k++
		}
		if k == j || k >= len(text) {
			i = j - 1
			continue
		}
		r, _ := utf8.DecodeRuneInString(text[k:])
		if !unicode.IsUpper(r) || insideExpression(ranges, i) || (text[i] == '.' && abbreviated(text[:i])) {
			i = j - 1
			continue
		}
		out = append(out, frag{start: item.start + start, end: item.start + j, listed: item.listed, joined: len(out) > 0})
		start = k
		i = k - 1
	}
	out = append(out, frag{start: item.start + start, end: item.end, listed: item.listed, joined: len(out) > 0})
	return out
}

func isTerminal(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// insideExpression reports whether offset i falls inside a temporal range but not on its
// final byte ("a.m." may still end a sentence).
func insideExpression(ranges []datemath.Range, i int) bool {
	for _, r := range ranges {
		if r.Start <= i && i < r.End-1 {
			return true
		}
	}
	return false
}

// abbreviated reports whether text ends in a known abbreviation ("Dr", "e.g").
func abbreviated(text string) bool {
	i := len(text)
	for i > 0 {
		c := text[i-1]
		if c != '.' && !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z') {
			break
		}
		i--
	}
	_, ok := abbreviations[strings.ToLower(text[i:])]
	return ok
}

func connectives(raw string, frags []frag) []frag {
	var out []frag
	for _, f := range frags {
		text := raw[f.start:f.end]
		start := 0
		for _, m := range connectiveRe.FindAllStringIndex(text, -1) {
			out = append(out, frag{start: f.start + start, end: f.start + m[0], listed: f.listed, joined: f.joined || start > 0})
			start = m[1]
		}
		out = append(out, frag{start: f.start + start, end: f.end, listed: f.listed, joined: f.joined || start > 0})
	}
	return out
}

// emit trims fragments into spans and adds the merged span for a fragment that opens
// with a temporal expression.
func (s *Segmenter) emit(raw string, frags []frag) []model.Span {
	var (
		out     []model.Span
		prev    model.Span
		hasPrev bool
	)
	for _, f := range frags {
		start, end, ok := trim(raw, f.start, f.end)
		if !ok {
			continue
		}
		span := model.Span{Text: raw[start:end], Start: start, End: end, Listed: f.listed}
		out = append(out, span)

		if f.joined && hasPrev && s.opensWithExpression(span.Text) {
			out = append(out, model.Span{
				Text:   raw[prev.Start:end],
				Start:  prev.Start,
				End:    end,
				Listed: prev.Listed,
			})
		}
		prev, hasPrev = span, true
	}
	return out
}

func (s *Segmenter) opensWithExpression(text string) bool {
	ranges := s.dates.Expressions(text, segRef)
	return len(ranges) > 0 && ranges[0].Start == 0
}

// trim narrows [start, end) past surrounding whitespace and separator punctuation. A
// trailing "?" is kept. It reports false when no letter or digit remains.
func trim(raw string, start, end int) (int, int, bool) {
	for start < end && strings.IndexByte(" \t\r\n,;:-", raw[start]) >= 0 {
		start++
	}
	for end > start && strings.IndexByte(" \t\r\n,;:.!", raw[end-1]) >= 0 {
		end--
	}
	for _, r := range raw[start:end] {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return start, end, true
		}
	}
	return start, end, false
}
