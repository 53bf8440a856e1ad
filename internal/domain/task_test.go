package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskPatch_Apply(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	intPtr := func(n int) *int { return &n }

	base := Task{
		ID:        "task-1",
		Title:     "Study Session",
		DueDate:   "2025-03-10T09:00:00",
		StartTime: "09:00",
		EndTime:   "10:30",
		Duration:  90,
		Tag:       "uni",
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		patch    TaskPatch
		expected Task
	}{
		{
			name:     "Empty patch leaves everything untouched",
			patch:    TaskPatch{},
			expected: base,
		},
		{
			name:  "Title only",
			patch: TaskPatch{Title: strPtr("Revision")},
			expected: func() Task {
				t := base
				t.Title = "Revision"
				return t
			}(),
		},
		{
			name: "All updatable fields",
			patch: TaskPatch{
				Title:     strPtr("Exam"),
				DueDate:   strPtr("2025-04-01T14:00:00"),
				StartTime: strPtr("14:00"),
				EndTime:   strPtr("16:00"),
				Duration:  intPtr(120),
				Tag:       strPtr("exams"),
			},
			expected: Task{
				ID:        "task-1",
				Title:     "Exam",
				DueDate:   "2025-04-01T14:00:00",
				StartTime: "14:00",
				EndTime:   "16:00",
				Duration:  120,
				Tag:       "exams",
				CreatedAt: base.CreatedAt,
			},
		},
		{
			name:  "Explicit empty string clears a time field",
			patch: TaskPatch{StartTime: strPtr(""), EndTime: strPtr("")},
			expected: func() Task {
				t := base
				t.StartTime = ""
				t.EndTime = ""
				return t
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := base
			tt.patch.Apply(&task)
			assert.Equal(t, tt.expected, task)
		})
	}
}

func TestTask_HasTimes(t *testing.T) {
	assert.True(t, Task{StartTime: "09:00", EndTime: "10:00"}.HasTimes())
	assert.False(t, Task{StartTime: "09:00"}.HasTimes())
	assert.False(t, Task{EndTime: "10:00"}.HasTimes())
	assert.False(t, Task{}.HasTimes())
}

func TestTask_DueTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		dueDate  string
		expected time.Time
	}{
		{"Full due-timestamp", "2025-03-10T09:30:00", time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)},
		{"Date only", "2025-03-10", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"Unparseable sorts to zero time", "not-a-date", time.Time{}},
		{"Empty sorts to zero time", "", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Task{DueDate: tt.dueDate}.DueTimestamp())
		})
	}
}

func TestTask_FieldValue(t *testing.T) {
	task := Task{ID: "a", Title: "b", DueDate: "c", StartTime: "d", EndTime: "e", Tag: "f"}

	tests := []struct {
		field    string
		expected string
	}{
		{"id", "a"},
		{"title", "b"},
		{"dueDate", "c"},
		{"startTime", "d"},
		{"endTime", "e"},
		{"tag", "f"},
		{"unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, task.FieldValue(tt.field))
		})
	}
}
