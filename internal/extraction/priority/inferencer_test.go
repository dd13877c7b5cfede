package priority_test

import (
	"testing"

	"autonomous-task-extraction/internal/extraction/priority"
	"autonomous-task-extraction/internal/model"
	"autonomous-task-extraction/pkg/lexicon"
)

func TestInfer(t *testing.T) {
	inf := priority.New(lexicon.Default())

	tests := []struct {
		text string
		want model.Priority
	}{
		{"fix the leak asap", model.PriorityUrgent},
		{"Emergency: call the plumber", model.PriorityUrgent},
		{"important: renew passport", model.PriorityHigh},
		{"urgent and important", model.PriorityUrgent},
		{"buy milk", model.PriorityMedium},
		{"no rush, sort the photos", model.PriorityMedium},
		{"not urgent", model.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := inf.Infer(tt.text); got != tt.want {
				t.Errorf("Infer(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		inferred model.Priority
		hint     model.Priority
		want     model.Priority
	}{
		{name: "Urgent beats low hint", inferred: model.PriorityUrgent, hint: model.PriorityLow, want: model.PriorityUrgent},
		{name: "High beats low hint", inferred: model.PriorityHigh, hint: model.PriorityLow, want: model.PriorityHigh},
		{name: "High hint lifts medium", inferred: model.PriorityMedium, hint: model.PriorityHigh, want: model.PriorityHigh},
		{name: "Low hint lowers medium", inferred: model.PriorityMedium, hint: model.PriorityLow, want: model.PriorityLow},
		{name: "No hint", inferred: model.PriorityMedium, hint: "", want: model.PriorityMedium},
		{name: "Empty inferred", inferred: "", hint: "", want: model.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := priority.Resolve(tt.inferred, tt.hint); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.inferred, tt.hint, got, tt.want)
			}
		})
	}
}
