package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autonomous-task-extraction/internal/extraction"
	"autonomous-task-extraction/internal/model"
	"autonomous-task-extraction/pkg/datemath"
)

var refNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

func newTestUseCase(t *testing.T, parallel bool) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	return New(&mockLogger{}, parser, Options{ParallelMatchers: parallel})
}

func extract(t *testing.T, uc *implUseCase, text string, origin model.Origin) []model.ExtractedTask {
	t.Helper()
	out, err := uc.Extract(context.Background(), extraction.ExtractInput{
		Input: model.RawInput{Text: text, Origin: origin, ReceivedAt: refNow},
	})
	require.NoError(t, err)
	return out.Tasks
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var corpus = []struct {
	text   string
	origin model.Origin
}{
	{"remind me to call mom tonight", model.OriginVoice},
	{"Doctor appointment next Friday at 3:30 PM", model.OriginVoice},
	{"Report due by Friday 5 PM", model.OriginChat},
	{"1. Buy milk 2. Call dentist 3. Submit report", model.OriginChat},
	{"Call the plumber. Tomorrow at 9.", model.OriginChat},
	{"buy milk and then call mom after that pay rent", model.OriginVoice},
	{"Hey!\n- [ ] Clean the garage\n- [x] Pay the electricity bill by the 20th of May\nThanks", model.OriginChat},
	{"Could you pick up the kids at 3? Also we're out of eggs.", model.OriginChat},
	{"ok", model.OriginChat},
	{"what a day", model.OriginVoice},
	{"URGENT: fix the sink asap. No rush on the shelf, fix it when possible.", model.OriginChat},
}

func TestExtractEmptyInput(t *testing.T) {
	uc := newTestUseCase(t, false)

	for _, text := range []string{"", "   ", "\n\t\n"} {
		tasks := extract(t, uc, text, model.OriginChat)
		assert.Empty(t, tasks, "text %q", text)
	}
}

func TestExtractInvalidInput(t *testing.T) {
	uc := newTestUseCase(t, false)

	tests := []struct {
		name  string
		input extraction.ExtractInput
	}{
		{
			name:  "Unknown origin",
			input: extraction.ExtractInput{Input: model.RawInput{Text: "buy milk", Origin: "email", ReceivedAt: refNow}},
		},
		{
			name:  "Invalid UTF-8",
			input: extraction.ExtractInput{Input: model.RawInput{Text: "buy \xff milk", Origin: model.OriginChat, ReceivedAt: refNow}},
		},
		{
			name:  "No reference time",
			input: extraction.ExtractInput{Input: model.RawInput{Text: "buy milk", Origin: model.OriginChat}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Extract(context.Background(), tt.input)
			assert.ErrorIs(t, err, extraction.ErrInvalidInput)

			_, err = uc.Explain(context.Background(), tt.input)
			assert.ErrorIs(t, err, extraction.ErrInvalidInput)
		})
	}
}

func TestExtractReferenceNowOverridesReceivedAt(t *testing.T) {
	uc := newTestUseCase(t, false)

	out, err := uc.Extract(context.Background(), extraction.ExtractInput{
		Input:        model.RawInput{Text: "remind me to pay rent tomorrow", Origin: model.OriginVoice},
		ReferenceNow: refNow,
	})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	require.NotNil(t, out.Tasks[0].ParsedDate)
	assert.True(t, out.Tasks[0].ParsedDate.Equal(day(2024, 5, 2)))
}

func TestExtractReminder(t *testing.T) {
	uc := newTestUseCase(t, false)

	tasks := extract(t, uc, "remind me to call mom tonight", model.OriginVoice)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, model.StrategyReminder, task.StrategyUsed)
	assert.Equal(t, "Call mom", task.Title)
	assert.GreaterOrEqual(t, task.OverallConfidence, 0.8)
	require.NotNil(t, task.ParsedDate)
	assert.True(t, task.ParsedDate.Equal(day(2024, 5, 1)), "got %v", task.ParsedDate)
	require.NotNil(t, task.ParsedTime)
	assert.Equal(t, "20:00", task.ParsedTime.String())
	assert.Equal(t, "family", task.SuggestedCategory)
	assert.Equal(t, model.PriorityMedium, task.Priority)
}

func TestExtractAppointment(t *testing.T) {
	uc := newTestUseCase(t, false)

	tasks := extract(t, uc, "Doctor appointment next Friday at 3:30 PM", model.OriginVoice)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Contains(t, []model.Strategy{model.StrategyAppointment, model.StrategyScheduledItem}, task.StrategyUsed)
	require.NotNil(t, task.ParsedTime)
	assert.Equal(t, datemath.TimeOfDay{Hour: 15, Minute: 30}, *task.ParsedTime)
	require.NotNil(t, task.ParsedDate)
	assert.True(t, task.ParsedDate.Equal(day(2024, 5, 3)), "got %v", task.ParsedDate)
	assert.Equal(t, "health", task.SuggestedCategory)
	assert.Equal(t, 0.85, task.DateConfidence)
}

func TestExtractDeadline(t *testing.T) {
	uc := newTestUseCase(t, false)

	tasks := extract(t, uc, "Report due by Friday 5 PM", model.OriginChat)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, model.StrategyDeadline, task.StrategyUsed)
	assert.Contains(t, []model.Priority{model.PriorityHigh, model.PriorityUrgent}, task.Priority)
	assert.GreaterOrEqual(t, task.OverallConfidence, 0.85)
	assert.Equal(t, "Report", task.Title)
}

func TestExtractGenericText(t *testing.T) {
	uc := newTestUseCase(t, false)

	for _, text := range []string{"ok", "thanks", "Thank you!", "hello", "buy"} {
		assert.Empty(t, extract(t, uc, text, model.OriginChat), "text %q", text)
	}
}

func TestExtractNumberedList(t *testing.T) {
	uc := newTestUseCase(t, false)

	tasks := extract(t, uc, "1. Buy milk 2. Call dentist 3. Submit report", model.OriginChat)
	require.Len(t, tasks, 3)

	titles := make([]string, 0, len(tasks))
	for i, a := range tasks {
		titles = append(titles, a.Title)
		for _, b := range tasks[i+1:] {
			assert.False(t, a.SourceSpan.Overlaps(b.SourceSpan), "%+v overlaps %+v", a.SourceSpan, b.SourceSpan)
		}
	}
	assert.ElementsMatch(t, []string{"Buy milk", "Call dentist", "Submit report"}, titles)
}

func TestExtractTemporalContinuation(t *testing.T) {
	uc := newTestUseCase(t, false)

	tasks := extract(t, uc, "Call the plumber. Tomorrow at 9.", model.OriginChat)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, model.StrategyScheduledItem, task.StrategyUsed)
	assert.Equal(t, "Call the plumber", task.Title)
	assert.Equal(t, "Call the plumber. Tomorrow at 9", task.SourceSpan.Text)
	require.NotNil(t, task.ParsedDate)
	assert.True(t, task.ParsedDate.Equal(day(2024, 5, 2)))
	require.NotNil(t, task.ParsedTime)
	assert.Equal(t, "09:00", task.ParsedTime.String())
}

func TestExtractClockTimes(t *testing.T) {
	uc := newTestUseCase(t, false)

	tests := []struct {
		name      string
		text      string
		wantTitle string
		wantDate  time.Time
		wantTime  string
	}{
		{name: "Dotted time", text: "Meet at 3.30 tomorrow", wantTitle: "Meet", wantDate: day(2024, 5, 2), wantTime: "15:30"},
		{name: "Dotted time after date", text: "Tomorrow 15.30 review the budget", wantTitle: "Review the budget", wantDate: day(2024, 5, 2), wantTime: "15:30"},
		{name: "Daypart sets evening", text: "remind me to call mom tonight at 9", wantTitle: "Call mom", wantDate: day(2024, 5, 1), wantTime: "21:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := extract(t, uc, tt.text, model.OriginChat)
			require.Len(t, tasks, 1)

			task := tasks[0]
			assert.Equal(t, tt.wantTitle, task.Title)
			require.NotNil(t, task.ParsedDate)
			assert.True(t, task.ParsedDate.Equal(tt.wantDate), "got %v", task.ParsedDate)
			require.NotNil(t, task.ParsedTime)
			assert.Equal(t, tt.wantTime, task.ParsedTime.String())
		})
	}
}

func TestExtractVoiceConnectives(t *testing.T) {
	uc := newTestUseCase(t, false)

	tasks := extract(t, uc, "buy milk and then call mom after that pay rent", model.OriginVoice)
	assert.Len(t, tasks, 3)
}

func TestExtractPriority(t *testing.T) {
	uc := newTestUseCase(t, false)

	urgent := extract(t, uc, "Fix the sink ASAP", model.OriginChat)
	require.Len(t, urgent, 1)
	assert.Equal(t, model.PriorityUrgent, urgent[0].Priority)
	assert.Equal(t, "Fix the sink", urgent[0].Title)

	low := extract(t, uc, "No rush, fix the shelf", model.OriginChat)
	require.Len(t, low, 1)
	assert.Equal(t, model.PriorityLow, low[0].Priority)
}

func TestExtractInvariants(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		uc := newTestUseCase(t, parallel)

		for _, c := range corpus {
			tasks := extract(t, uc, c.text, c.origin)

			for i, task := range tasks {
				assert.NotEmpty(t, task.Title)
				assert.InDelta(t, 0.5, task.OverallConfidence, 0.5, "overall confidence of %q", task.Title)
				assert.InDelta(t, 0.5, task.DateConfidence, 0.5, "date confidence of %q", task.Title)
				assert.InDelta(t, 0.5, task.CategoryConfidence, 0.5, "category confidence of %q", task.Title)
				assert.Equal(t, c.text[task.SourceSpan.Start:task.SourceSpan.End], task.SourceSpan.Text)

				if i > 0 {
					assert.LessOrEqual(t, task.OverallConfidence, tasks[i-1].OverallConfidence, "result not sorted for %q", c.text)
				}
				for _, other := range tasks[i+1:] {
					assert.False(t, task.SourceSpan.Overlaps(other.SourceSpan), "overlapping spans for %q", c.text)
				}
			}
		}
	}
}

func TestExtractIdempotentAndParallelSafe(t *testing.T) {
	seq := newTestUseCase(t, false)
	par := newTestUseCase(t, true)

	for _, c := range corpus {
		first := extract(t, seq, c.text, c.origin)
		second := extract(t, seq, c.text, c.origin)
		assert.Equal(t, first, second, "repeat run differs for %q", c.text)

		parallel := extract(t, par, c.text, c.origin)
		assert.Equal(t, first, parallel, "parallel run differs for %q", c.text)
	}
}

func TestExplain(t *testing.T) {
	uc := newTestUseCase(t, false)

	out, err := uc.Explain(context.Background(), extraction.ExtractInput{
		Input: model.RawInput{Text: "Call the plumber. Tomorrow at 9.", Origin: model.OriginChat, ReceivedAt: refNow},
	})
	require.NoError(t, err)
	require.Len(t, out.Candidates, 2)

	discarded := 0
	for _, c := range out.Candidates {
		assert.NotEmpty(t, c.Adjustments)
		if c.Discarded {
			discarded++
			assert.Equal(t, model.StrategyActionItem, c.Task.StrategyUsed)
			assert.Equal(t, 0.60, c.Base)
		}
	}
	assert.Equal(t, 1, discarded)
}

func TestExtractCancelledContext(t *testing.T) {
	uc := newTestUseCase(t, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Extract(ctx, extraction.ExtractInput{
		Input: model.RawInput{Text: "buy milk", Origin: model.OriginChat, ReceivedAt: refNow},
	})
	assert.ErrorIs(t, err, context.Canceled)
}
