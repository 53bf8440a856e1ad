package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected Task
	}{
		{
			name:     "Missing both times gets the placeholder slot",
			task:     Task{Title: "Read notes"},
			expected: Task{Title: "Read notes", StartTime: "09:00", EndTime: "10:00", Duration: 60},
		},
		{
			// The present end time is discarded, not preserved. Documented
			// behavior of the reconciler; changing it breaks import
			// compatibility with previously exported files.
			name:     "Missing start time overwrites the present end time",
			task:     Task{Title: "Lab", EndTime: "17:00", Duration: 30},
			expected: Task{Title: "Lab", StartTime: "09:00", EndTime: "10:00", Duration: 60},
		},
		{
			name:     "Missing end time overwrites the present start time",
			task:     Task{Title: "Lab", StartTime: "16:00"},
			expected: Task{Title: "Lab", StartTime: "09:00", EndTime: "10:00", Duration: 60},
		},
		{
			name:     "Both times present with missing duration computes it",
			task:     Task{StartTime: "09:00", EndTime: "10:30"},
			expected: Task{StartTime: "09:00", EndTime: "10:30", Duration: 90},
		},
		{
			name:     "Both times present with negative duration recomputes it",
			task:     Task{StartTime: "09:00", EndTime: "10:30", Duration: -5},
			expected: Task{StartTime: "09:00", EndTime: "10:30", Duration: 90},
		},
		{
			name:     "End before start wraps past midnight",
			task:     Task{StartTime: "23:30", EndTime: "00:15"},
			expected: Task{StartTime: "23:30", EndTime: "00:15", Duration: 45},
		},
		{
			name:     "Complete task passes through untouched",
			task:     Task{StartTime: "09:00", EndTime: "10:30", Duration: 90},
			expected: Task{StartTime: "09:00", EndTime: "10:30", Duration: 90},
		},
		{
			name:     "Existing duration wins even if inconsistent",
			task:     Task{StartTime: "09:00", EndTime: "10:30", Duration: 45},
			expected: Task{StartTime: "09:00", EndTime: "10:30", Duration: 45},
		},
		{
			name:     "Unparseable clock values pass through for the validator",
			task:     Task{StartTime: "9am", EndTime: "10:30"},
			expected: Task{StartTime: "9am", EndTime: "10:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reconcile(tt.task))
		})
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	tasks := []Task{
		{Title: "No times"},
		{Title: "Partial", StartTime: "08:00"},
		{Title: "Needs duration", StartTime: "23:30", EndTime: "00:15"},
		{Title: "Complete", StartTime: "09:00", EndTime: "10:30", Duration: 90},
	}

	for _, task := range tasks {
		once := Reconcile(task)
		twice := Reconcile(once)
		assert.Equal(t, once, twice, "Reconcile must be idempotent for %q", task.Title)
	}
}

func TestReconcile_DurationInvariant(t *testing.T) {
	tasks := []Task{
		{StartTime: "09:00", EndTime: "10:30"},
		{StartTime: "23:30", EndTime: "00:15"},
		{StartTime: "00:00", EndTime: "00:00"},
		{Title: "placeholder path"},
	}

	for _, task := range tasks {
		got := Reconcile(task)
		if !got.HasTimes() {
			t.Fatalf("task %+v has no times after reconciliation", got)
		}
		start, err := ParseClock(got.StartTime)
		assert.NoError(t, err)
		end, err := ParseClock(got.EndTime)
		assert.NoError(t, err)
		if task.Duration <= 0 {
			assert.Equal(t, WrapMinutes(start, end), got.Duration)
		}
	}
}
