package lexicon

import (
	"strings"
	"unicode"
)

// Normalize lowercases text and reduces it to space-separated word tokens padded with a
// leading and trailing space, so that phrase lookups are word-boundary matches:
// strings.Contains(Normalize(s), " pick up ").
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + 2)
	sb.WriteByte(' ')

	space := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r == '’' || r == '‘':
			r = '\''
			fallthrough
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			sb.WriteRune(r)
			space = false
		default:
			if !space {
				sb.WriteByte(' ')
				space = true
			}
		}
	}
	if !space {
		sb.WriteByte(' ')
	}
	return sb.String()
}

// Tokens returns the lowercase word tokens of text.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}

// ContainsPhrase reports whether the normalized text contains phrase as whole words.
// norm must come from Normalize.
func ContainsPhrase(norm, phrase string) bool {
	return strings.Contains(norm, " "+phrase+" ")
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
