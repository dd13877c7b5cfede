package category

import (
	"math"

	"autonomous-task-extraction/pkg/lexicon"
)

// Normalizer divides the weighted keyword score: one strong plus one weak hit is full
// confidence.
const Normalizer = 3.0

// Classifier scores text against the six category keyword sets.
type Classifier struct {
	lib *lexicon.Library
}

// New creates a Classifier backed by lib.
func New(lib *lexicon.Library) *Classifier {
	return &Classifier{lib: lib}
}

// Classify returns the best-scoring category and min(1, score/Normalizer).
// Ties go to the earlier category in lexicon.Categories. No hits returns ("", 0).
func (c *Classifier) Classify(text string) (string, float64) {
	scores := c.lib.CategoryScores(text)

	var best lexicon.Category
	bestScore := 0
	for _, cat := range lexicon.Categories {
		if scores[cat] > bestScore {
			best, bestScore = cat, scores[cat]
		}
	}
	if bestScore == 0 {
		return "", 0
	}
	return string(best), math.Min(1, float64(bestScore)/Normalizer)
}
