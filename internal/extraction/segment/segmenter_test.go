package segment_test

import (
	"testing"

	"autonomous-task-extraction/internal/extraction/segment"
	"autonomous-task-extraction/internal/model"
	"autonomous-task-extraction/pkg/datemath"
)

func newSegmenter(t *testing.T) *segment.Segmenter {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return segment.New(parser)
}

func texts(spans []model.Span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSegment(t *testing.T) {
	seg := newSegmenter(t)

	tests := []struct {
		name   string
		raw    string
		origin model.Origin
		want   []string
	}{
		{name: "Empty", raw: "", origin: model.OriginChat, want: []string{}},
		{name: "Whitespace", raw: "  \n\t \n", origin: model.OriginChat, want: []string{}},
		{name: "Single sentence", raw: "remind me to call mom tonight", origin: model.OriginVoice, want: []string{"remind me to call mom tonight"}},
		{name: "Lines", raw: "Buy milk\r\nCall dentist\n\nSubmit report", origin: model.OriginChat, want: []string{"Buy milk", "Call dentist", "Submit report"}},
		{name: "Bullets and checkboxes", raw: "- Buy milk\n* Call dentist\n- [ ] Submit report\n[x] Pay rent", origin: model.OriginChat, want: []string{"Buy milk", "Call dentist", "Submit report", "Pay rent"}},
		{name: "Numbered lines", raw: "1. Buy milk\n2) Call dentist", origin: model.OriginChat, want: []string{"Buy milk", "Call dentist"}},
		{name: "Inline numbered", raw: "1. Buy milk 2. Call dentist 3. Submit report", origin: model.OriginChat, want: []string{"Buy milk", "Call dentist", "Submit report"}},
		{name: "Sentences", raw: "Buy milk. Call the bank! Is it open?", origin: model.OriginChat, want: []string{"Buy milk", "Call the bank", "Is it open?"}},
		{name: "No split before lowercase", raw: "Buy milk. then go home", origin: model.OriginChat, want: []string{"Buy milk. then go home"}},
		{name: "Abbreviation", raw: "Call Dr. Smith about the results", origin: model.OriginChat, want: []string{"Call Dr. Smith about the results"}},
		{name: "Time with dot", raw: "Meet at 3.30 pm. Bring the slides", origin: model.OriginChat, want: []string{"Meet at 3.30 pm", "Bring the slides"}},
		{name: "Month abbreviation", raw: "Pay rent on Jan. 5 please", origin: model.OriginChat, want: []string{"Pay rent on Jan. 5 please"}},
		{name: "Meridiem ends sentence", raw: "Gym at 7 a.m. Then work", origin: model.OriginChat, want: []string{"Gym at 7 a.m", "Then work"}},
		{name: "Voice connectives", raw: "buy milk and then call mom after that pay rent", origin: model.OriginVoice, want: []string{"buy milk", "call mom", "pay rent"}},
		{name: "Chat keeps connectives", raw: "buy milk and then call mom", origin: model.OriginChat, want: []string{"buy milk and then call mom"}},
		{name: "Temporal continuation", raw: "Call the plumber. Tomorrow at 9.", origin: model.OriginChat, want: []string{"Call the plumber", "Call the plumber. Tomorrow at 9", "Tomorrow at 9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texts(seg.Segment(tt.raw, tt.origin))
			if !equal(got, tt.want) {
				t.Errorf("Segment(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSegmentOffsets(t *testing.T) {
	seg := newSegmenter(t)
	raw := "Hi!\n1. Buy milk 2. Call dentist 3. Submit report\n- Fix the sink"

	spans := seg.Segment(raw, model.OriginChat)
	for _, s := range spans {
		if raw[s.Start:s.End] != s.Text {
			t.Errorf("span %+v does not match raw[%d:%d] = %q", s, s.Start, s.End, raw[s.Start:s.End])
		}
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].Start < spans[i-1].Start {
			t.Errorf("spans not ordered by start: %+v", spans)
		}
	}
}

func TestSegmentListed(t *testing.T) {
	seg := newSegmenter(t)

	spans := seg.Segment("Groceries\n- eggs\n- bread", model.OriginChat)
	if len(spans) != 3 {
		t.Fatalf("got %d spans, want 3", len(spans))
	}
	if spans[0].Listed {
		t.Error("heading should not be listed")
	}
	if !spans[1].Listed || !spans[2].Listed {
		t.Error("bulleted lines should be listed")
	}
}

func TestSegmentInlineRunMustStartAtOne(t *testing.T) {
	seg := newSegmenter(t)

	got := texts(seg.Segment("Room 4. 5. floor is wet", model.OriginChat))
	if len(got) != 1 {
		t.Errorf("Segment() = %q, want a single span", got)
	}
}
