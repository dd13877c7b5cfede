package telegram

import (
	"fmt"
	"strings"
	"time"

	"autonomous-task-extraction/internal/model"
)

const (
	startMessage = "👋 Welcome!\n\nForward me a chat message or paste a voice transcript and I will point out the tasks hiding in it, with dates, priority and category.\n\nNothing is saved: you decide what to keep."
	helpMessage  = "*How to use:*\n\nSend or forward any message, for example:\n`Can you pick up milk tomorrow? Also the report is due Friday 5 PM`\n\nI reply with the tasks I am confident about, best first."

	noTasksMessage = "🤷 No tasks found in this message."
)

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// formatTasks renders ranked tasks as a Markdown list.
func formatTasks(tasks []model.ExtractedTask, loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found *%d task(s)*:\n\n", len(tasks))
	for i, t := range tasks {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, markdownEscaper.Replace(t.Title))
		if due := formatDue(t, loc); due != "" {
			fmt.Fprintf(&b, "   📅 %s\n", due)
		}
		meta := []string{string(t.Priority)}
		if t.SuggestedCategory != "" {
			meta = append(meta, t.SuggestedCategory)
		}
		meta = append(meta, fmt.Sprintf("%.0f%%", t.OverallConfidence*100))
		fmt.Fprintf(&b, "   %s\n\n", strings.Join(meta, " · "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatDue(t model.ExtractedTask, loc *time.Location) string {
	var parts []string
	if t.ParsedDate != nil {
		parts = append(parts, t.ParsedDate.In(loc).Format("Mon Jan 2"))
	}
	if t.ParsedTime != nil {
		parts = append(parts, t.ParsedTime.String())
	}
	return strings.Join(parts, " ")
}
