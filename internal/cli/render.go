package cli

import (
	"fmt"
	"io"
	"strings"

	"campusplanner/internal/domain"
	"campusplanner/internal/search"
)

// formatTaskLine renders one task as a fixed-width listing row.
func formatTaskLine(task *domain.Task) string {
	slot := ""
	if task.HasTimes() {
		slot = task.StartTime + "-" + task.EndTime
	}
	return fmt.Sprintf("%-36s  %-30s  %-19s  %-11s  %4dm  #%s",
		task.ID, task.Title, task.DueDate, slot, task.Duration, task.Tag)
}

// printTasks renders a task listing with a header row.
func printTasks(out io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks.")
		return
	}

	fmt.Fprintf(out, "%-36s  %-30s  %-19s  %-11s  %5s  %s\n",
		"ID", "TITLE", "DUE", "SLOT", "DUR", "TAG")
	for _, task := range tasks {
		fmt.Fprintln(out, formatTaskLine(task))
	}
}

// highlightTitle marks every match span in the title with brackets, e.g.
// "[Study] Session" for a hit on "Study". Spans are byte offsets, ordered
// and non-overlapping as produced by the search engine.
func highlightTitle(title string, spans [][2]int) string {
	if len(spans) == 0 {
		return title
	}

	var b strings.Builder
	prev := 0
	for _, span := range spans {
		b.WriteString(title[prev:span[0]])
		b.WriteString("[")
		b.WriteString(title[span[0]:span[1]])
		b.WriteString("]")
		prev = span[1]
	}
	b.WriteString(title[prev:])
	return b.String()
}

// printMatches renders search results with highlighted titles.
func printMatches(out io.Writer, matches []search.Match) {
	if len(matches) == 0 {
		fmt.Fprintln(out, "No matching tasks.")
		return
	}

	for _, match := range matches {
		fmt.Fprintf(out, "%-36s  %s\n", match.Task.ID, highlightTitle(match.Task.Title, match.Spans))
	}
}
