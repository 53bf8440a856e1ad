package search

import (
	"regexp"

	"campusplanner/internal/domain"
	"campusplanner/internal/logging"
	"campusplanner/internal/store"
)

// Match pairs a task with the byte spans of every pattern hit in its title,
// for the presentation layer to highlight.
type Match struct {
	Task  *domain.Task
	Spans [][2]int
}

// Engine filters the live task collection by case-insensitive regular
// expression over titles. It remembers its last result set so that an
// invalid pattern degrades to the previous view instead of an error.
type Engine struct {
	store *store.TaskStore
	last  []Match
}

// NewEngine creates a search engine over the given store.
func NewEngine(s *store.TaskStore) *Engine {
	return &Engine{store: s}
}

// Search returns the tasks whose title matches the pattern, compiled
// case-insensitively. An empty pattern returns every task with no spans.
// A pattern that fails to compile logs a warning and returns the previous
// result set unchanged.
func (e *Engine) Search(pattern string) []Match {
	if pattern == "" {
		e.last = e.unfiltered()
		return e.last
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		logging.Warnf("invalid search pattern %q: %v", pattern, err)
		if e.last == nil {
			e.last = e.unfiltered()
		}
		return e.last
	}

	matches := make([]Match, 0)
	for _, task := range e.store.GetAll() {
		spans := re.FindAllStringIndex(task.Title, -1)
		if len(spans) == 0 {
			continue
		}
		match := Match{Task: task, Spans: make([][2]int, 0, len(spans))}
		for _, span := range spans {
			match.Spans = append(match.Spans, [2]int{span[0], span[1]})
		}
		matches = append(matches, match)
	}

	e.last = matches
	return e.last
}

func (e *Engine) unfiltered() []Match {
	tasks := e.store.GetAll()
	matches := make([]Match, 0, len(tasks))
	for _, task := range tasks {
		matches = append(matches, Match{Task: task})
	}
	return matches
}
