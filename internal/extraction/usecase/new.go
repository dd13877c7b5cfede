package usecase

import (
	"autonomous-task-extraction/internal/extraction"
	"autonomous-task-extraction/internal/extraction/category"
	"autonomous-task-extraction/internal/extraction/confidence"
	"autonomous-task-extraction/internal/extraction/priority"
	"autonomous-task-extraction/internal/extraction/segment"
	"autonomous-task-extraction/internal/extraction/strategy"
	"autonomous-task-extraction/pkg/datemath"
	"autonomous-task-extraction/pkg/lexicon"
	pkgLog "autonomous-task-extraction/pkg/log"
)

// Options tunes the pipeline.
type Options struct {
	// ParallelMatchers evaluates the strategy matchers of each span concurrently.
	// Output is identical to sequential evaluation.
	ParallelMatchers bool
}

type implUseCase struct {
	l          pkgLog.Logger
	dates      *datemath.Parser
	segmenter  *segment.Segmenter
	matchers   []strategy.Matcher
	classifier *category.Classifier
	inferencer *priority.Inferencer
	aggregator *confidence.Aggregator
	parallel   bool
}

// New creates a new extraction UseCase instance backed by the shared lexicon.
func New(l pkgLog.Logger, dates *datemath.Parser, opts Options) *implUseCase {
	lib := lexicon.Default()
	return &implUseCase{
		l:          l,
		dates:      dates,
		segmenter:  segment.New(dates),
		matchers:   strategy.Default(lib),
		classifier: category.New(lib),
		inferencer: priority.New(lib),
		aggregator: confidence.New(lib),
		parallel:   opts.ParallelMatchers,
	}
}

var _ extraction.UseCase = (*implUseCase)(nil)
