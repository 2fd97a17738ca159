// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

// FormatTask formats a task line.
// Format: "{ID:>4}  [x] {TEXT}\n" (4-wide right-aligned id, two spaces, checkbox, text)
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", task.ID, Checkbox(task.Completed), normalizeText(task.Text))
}

// FormatCounts formats the remaining/total summary line.
func FormatCounts(w io.Writer, remaining, total int) {
	fmt.Fprintln(w, Counts(remaining, total))
}

// Counts returns "{REMAINING} of {TOTAL} remaining".
func Counts(remaining, total int) string {
	return fmt.Sprintf("%d of %d remaining", remaining, total)
}

// Checkbox returns "[x]" for completed tasks and "[ ]" otherwise.
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// normalizeText keeps a task on one line.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
