package strategy

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"autonomous-task-extraction/pkg/datemath"
)

const trimSet = " \t\r\n,;:.!?-–—*•\"“”‘’'()[]"

var (
	leadingFiller = regexp.MustCompile(`(?i)^(?:please|pls|plz|hey|hi|ok|okay|so|and then|and|then|also|oh|um|uh|well|` +
		`i need to|i have to|i must|i should|i gotta|i want to|i'?ll|we need to|we have to|we should|we must|you need to|you should|` +
		`need to|have to|gotta|got to|must|should|` +
		`i have an?|i['’]ve got an?|we have an?|there['’]?s an?|there is an?|have an?|got an?|` +
		`can you|could you|would you|will you|don['’]?t forget to|don['’]?t forget|do not forget to|make sure to|make sure you|make sure|remember to|let['’]?s|` +
		`urgent|important|asap|emergency|fyi|reminder|note|to)\b[\s,:;.!-]*`)

	trailingFiller = regexp.MustCompile(`(?i)[\s,:;.!-]*\b(?:at|on|by|for|to|before|until|in|due|is|are|the|and|please|pls|ok|thanks|this|next|around|of|with|asap|right away|immediately|urgently|right now)$`)
)

// titler turns span text into a short task title.
type titler struct {
	noise *regexp.Regexp
}

func newTitler(noisePhrases []string) *titler {
	return &titler{noise: phraseRegexp(noisePhrases)}
}

// clean blanks every cut range, strips noise, filler and dangling words, collapses
// whitespace and capitalises the first letter. It may return "".
func (t *titler) clean(text string, cuts ...datemath.Range) string {
	b := []byte(text)
	for _, c := range cuts {
		for i := max(c.Start, 0); i < c.End && i < len(b); i++ {
			b[i] = ' '
		}
	}
	s := string(b)
	if t.noise != nil {
		s = t.noise.ReplaceAllString(s, " ")
	}
	s = strings.Join(strings.Fields(s), " ")

	for {
		prev := s
		s = strings.Trim(s, trimSet)
		s = leadingFiller.ReplaceAllString(s, "")
		s = trailingFiller.ReplaceAllString(s, "")
		if s == prev {
			break
		}
	}
	return capitalize(s)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// phraseRegexp builds a case-insensitive, word-bounded alternation, longest phrase first.
// Apostrophes match straight, curly or missing.
func phraseRegexp(phrases []string) *regexp.Regexp {
	if len(phrases) == 0 {
		return nil
	}
	sorted := append([]string(nil), phrases...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	alts := make([]string, 0, len(sorted))
	for _, p := range sorted {
		q := regexp.QuoteMeta(p)
		q = strings.ReplaceAll(q, "'", `['’]?`)
		q = strings.ReplaceAll(q, " ", `\s+`)
		alts = append(alts, q)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
