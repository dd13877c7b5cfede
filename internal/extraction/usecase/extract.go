package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"autonomous-task-extraction/internal/extraction"
	"autonomous-task-extraction/internal/extraction/confidence"
	"autonomous-task-extraction/internal/extraction/priority"
	"autonomous-task-extraction/internal/extraction/strategy"
	"autonomous-task-extraction/internal/model"
	"autonomous-task-extraction/pkg/datemath"
)

// scored is one span's winning candidate after enrichment and aggregation.
type scored struct {
	task      model.ExtractedTask
	score     confidence.Score
	competing []model.Strategy
}

// Extract runs the full pipeline and returns deduplicated, ranked candidates.
func (uc *implUseCase) Extract(ctx context.Context, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	cands, err := uc.score(ctx, input)
	if err != nil {
		return extraction.ExtractOutput{}, err
	}

	kept := dedupe(cands)
	tasks := make([]model.ExtractedTask, 0, len(kept))
	for _, i := range kept {
		tasks = append(tasks, cands[i].task)
	}
	rank(tasks)

	uc.l.Debugf(ctx, "Extract: origin=%s candidates=%d kept=%d", input.Input.Origin, len(cands), len(tasks))
	return extraction.ExtractOutput{Tasks: tasks}, nil
}

// Explain reports every scored candidate with its adjustments, in span order.
func (uc *implUseCase) Explain(ctx context.Context, input extraction.ExtractInput) (extraction.ExplainOutput, error) {
	cands, err := uc.score(ctx, input)
	if err != nil {
		return extraction.ExplainOutput{}, err
	}

	kept := make(map[int]bool, len(cands))
	for _, i := range dedupe(cands) {
		kept[i] = true
	}

	out := make([]extraction.Explanation, 0, len(cands))
	for i, c := range cands {
		out = append(out, extraction.Explanation{
			Task:        c.task,
			Base:        c.score.Base,
			Adjustments: c.score.Adjustments,
			Competing:   c.competing,
			Discarded:   !kept[i],
		})
	}
	return extraction.ExplainOutput{Candidates: out}, nil
}

func validate(input extraction.ExtractInput) (time.Time, error) {
	if !input.Input.Origin.Valid() {
		return time.Time{}, fmt.Errorf("%w: unknown origin %q", extraction.ErrInvalidInput, input.Input.Origin)
	}
	if !utf8.ValidString(input.Input.Text) {
		return time.Time{}, fmt.Errorf("%w: text is not valid UTF-8", extraction.ErrInvalidInput)
	}
	ref := input.ReferenceNow
	if ref.IsZero() {
		ref = input.Input.ReceivedAt
	}
	if ref.IsZero() {
		return time.Time{}, fmt.Errorf("%w: no reference time", extraction.ErrInvalidInput)
	}
	return ref, nil
}

// score segments the input and returns one candidate per span on which a matcher fired,
// in span order.
func (uc *implUseCase) score(ctx context.Context, input extraction.ExtractInput) ([]scored, error) {
	ref, err := validate(input)
	if err != nil {
		return nil, err
	}
	text := input.Input.Text
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	spans := uc.segmenter.Segment(text, input.Input.Origin)
	cands := make([]scored, 0, len(spans))
	for _, span := range spans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		temporal := uc.dates.Resolve(span.Text, ref)
		fired, err := uc.evaluate(ctx, strategy.Input{Span: span, Temporal: temporal})
		if err != nil {
			return nil, err
		}
		cand, ok := strategy.Select(fired)
		if !ok {
			continue
		}

		score := uc.aggregator.Aggregate(cand.Base, span.Text, temporal.Found())
		task := uc.enrich(span, cand, temporal)
		task.OverallConfidence = score.Final

		cands = append(cands, scored{task: task, score: score, competing: competing(fired, cand.Strategy)})
	}
	return cands, nil
}

func (uc *implUseCase) enrich(span model.Span, cand strategy.Candidate, temporal datemath.Resolution) model.ExtractedTask {
	cat, catConf := uc.classifier.Classify(span.Text)
	return model.ExtractedTask{
		Title:              cand.Title,
		Description:        span.Text,
		SourceSpan:         span,
		StrategyUsed:       cand.Strategy,
		ParsedDate:         temporal.Date,
		ParsedTime:         temporal.Time,
		DateConfidence:     temporal.Confidence,
		SuggestedCategory:  cat,
		CategoryConfidence: catConf,
		Priority:           priority.Resolve(uc.inferencer.Infer(span.Text), cand.Hint),
	}
}

func competing(fired []strategy.Fired, winner model.Strategy) []model.Strategy {
	var out []model.Strategy
	for _, f := range fired {
		if f.Candidate.Strategy != winner {
			out = append(out, f.Candidate.Strategy)
		}
	}
	return out
}
