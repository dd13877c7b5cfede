package extraction

import "context"

// UseCase turns raw text into ranked task candidates.
type UseCase interface {
	// Extract segments the input, runs every strategy matcher per span and returns the
	// deduplicated candidates sorted by descending confidence.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// Explain runs the same pipeline but reports every candidate, including the ones
	// deduplication discarded, with the confidence adjustments applied to each.
	Explain(ctx context.Context, input ExtractInput) (ExplainOutput, error)
}
