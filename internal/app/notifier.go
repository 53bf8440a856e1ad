package app

// Notifier is the channel through which the planner core signals the
// presentation layer. The core never touches a display surface itself;
// it raises these events and the UI decides how to render them.
type Notifier interface {
	// TasksChanged signals that the visible task list needs re-rendering.
	TasksChanged()
	// ValidationFailed carries the joined human-readable error message for
	// a rejected form submission.
	ValidationFailed(message string)
	// ImportCompleted reports how many records an import merged and how
	// many it dropped.
	ImportCompleted(accepted, rejected int)
}

// NopNotifier discards every signal. Useful for tests and for callers that
// poll state instead of reacting to events.
type NopNotifier struct{}

func (NopNotifier) TasksChanged()            {}
func (NopNotifier) ValidationFailed(string)  {}
func (NopNotifier) ImportCompleted(int, int) {}
