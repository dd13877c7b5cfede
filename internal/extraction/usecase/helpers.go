package usecase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"autonomous-task-extraction/internal/extraction/strategy"
	"autonomous-task-extraction/internal/model"
)

// evaluate runs every matcher on in. In parallel mode results are collected by matcher
// index so the outcome matches the sequential run.
func (uc *implUseCase) evaluate(ctx context.Context, in strategy.Input) ([]strategy.Fired, error) {
	if !uc.parallel {
		return strategy.Run(uc.matchers, in), nil
	}

	results := make([]*strategy.Candidate, len(uc.matchers))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range uc.matchers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if c, ok := m.Match(in); ok {
				results[i] = &c
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var fired []strategy.Fired
	for i, c := range results {
		if c != nil {
			fired = append(fired, strategy.Fired{Index: i, Candidate: *c})
		}
	}
	return fired, nil
}

// dedupe sweeps candidates in span order and keeps the best of every cluster of
// overlapping spans. It returns the kept indices in span order.
func dedupe(cands []scored) []int {
	if len(cands) == 0 {
		return nil
	}

	order := make([]int, len(cands))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := cands[order[a]].task.SourceSpan, cands[order[b]].task.SourceSpan
		if sa.Start != sb.Start {
			return sa.Start < sb.Start
		}
		return sa.End < sb.End
	})

	var kept []int
	best := order[0]
	clusterEnd := cands[best].task.SourceSpan.End
	for _, i := range order[1:] {
		span := cands[i].task.SourceSpan
		if span.Start < clusterEnd {
			if better(cands[i], cands[best]) {
				best = i
			}
			clusterEnd = max(clusterEnd, span.End)
			continue
		}
		kept = append(kept, best)
		best, clusterEnd = i, span.End
	}
	return append(kept, best)
}

// better orders by confidence, then base confidence, then earlier and longer span.
func better(a, b scored) bool {
	if a.task.OverallConfidence != b.task.OverallConfidence {
		return a.task.OverallConfidence > b.task.OverallConfidence
	}
	if a.score.Base != b.score.Base {
		return a.score.Base > b.score.Base
	}
	sa, sb := a.task.SourceSpan, b.task.SourceSpan
	if sa.Start != sb.Start {
		return sa.Start < sb.Start
	}
	return sa.Len() > sb.Len()
}

// rank sorts by descending confidence. Equal scores keep span order.
func rank(tasks []model.ExtractedTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].OverallConfidence > tasks[j].OverallConfidence
	})
}
