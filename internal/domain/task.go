package domain

import (
	"time"
)

// Task represents one planner entry in the domain model.
// This is a pure domain model without storage-specific concerns; the JSON
// tags define the exchange schema used by the durable slot and the
// export/import files.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	DueDate   string    `json:"dueDate"`             // YYYY-MM-DD, or YYYY-MM-DDTHH:MM:SS when combined with a start time
	StartTime string    `json:"startTime,omitempty"` // HH:MM, empty when unset
	EndTime   string    `json:"endTime,omitempty"`   // HH:MM, empty when unset
	Duration  int       `json:"duration"`            // minutes
	Tag       string    `json:"tag"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasTimes returns true if both clock times are set.
func (t Task) HasTimes() bool {
	return t.StartTime != "" && t.EndTime != ""
}

// DueTimestamp returns the task's due point in time for sorting. Tasks whose
// due date cannot be parsed sort to the zero time.
func (t Task) DueTimestamp() time.Time {
	return ParseDueTimestamp(t.DueDate)
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// TaskPatch enumerates the updatable fields of a Task. A nil field leaves
// the existing value untouched. ID and CreatedAt are deliberately absent;
// they are immutable after creation.
type TaskPatch struct {
	Title     *string
	DueDate   *string
	StartTime *string
	EndTime   *string
	Duration  *int
	Tag       *string
}

// Apply merges the patch onto the task. It does not touch UpdatedAt; the
// store owns modification timestamps.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.StartTime != nil {
		t.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		t.EndTime = *p.EndTime
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.Tag != nil {
		t.Tag = *p.Tag
	}
}

// FieldValue returns the raw string form of a named task field. Used by the
// store for sorting fields that have no dedicated comparison.
func (t Task) FieldValue(field string) string {
	switch field {
	case "id":
		return t.ID
	case "title":
		return t.Title
	case "dueDate":
		return t.DueDate
	case "startTime":
		return t.StartTime
	case "endTime":
		return t.EndTime
	case "tag":
		return t.Tag
	default:
		return ""
	}
}
