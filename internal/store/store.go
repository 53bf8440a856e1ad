package store

import (
	"sort"
	"time"

	"campusplanner/internal/domain"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// TaskStore is the in-memory ordered collection of tasks and the sole owner
// of live task state during a session. It trusts its callers to have
// validated records before insertion; it does not re-validate. It is not
// safe for concurrent use; all mutation happens on the single control
// flow, one operation at a time.
type TaskStore struct {
	tasks []*domain.Task
}

// New creates an empty TaskStore.
func New() *TaskStore {
	return &TaskStore{
		tasks: make([]*domain.Task, 0),
	}
}

// SetTasks replaces the whole collection and applies the canonical initial
// ordering: due-timestamp ascending, ties broken by creation time ascending.
func (s *TaskStore) SetTasks(tasks []*domain.Task) {
	s.tasks = tasks
	sort.SliceStable(s.tasks, func(i, j int) bool {
		di, dj := s.tasks[i].DueTimestamp(), s.tasks[j].DueTimestamp()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return s.tasks[i].CreatedAt.Before(s.tasks[j].CreatedAt)
	})
}

// Add appends a task. The collection is not re-sorted; callers that care
// about view order must call Sort afterwards.
func (s *TaskStore) Add(task *domain.Task) {
	s.tasks = append(s.tasks, task)
}

// Update merges the patch onto the task with the given id, refreshes its
// UpdatedAt, and reports whether a match was found. Absent patch fields
// leave the stored values untouched; ID and CreatedAt are never changed.
func (s *TaskStore) Update(id string, patch domain.TaskPatch) bool {
	task := s.GetByID(id)
	if task == nil {
		return false
	}
	patch.Apply(task)
	task.UpdatedAt = timeNow()
	return true
}

// Remove removes the task with the given id if present and reports whether
// anything was removed. Removing an absent id is not an error.
func (s *TaskStore) Remove(id string) bool {
	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// GetByID returns the task with the given id, or nil.
func (s *TaskStore) GetByID(id string) *domain.Task {
	for _, task := range s.tasks {
		if task.ID == id {
			return task
		}
	}
	return nil
}

// GetAll exposes the live ordering, not a copy. Callers must not assume
// immutability and must route mutations through the store's operations.
func (s *TaskStore) GetAll() []*domain.Task {
	return s.tasks
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// Sort orders the collection by the given field. dueDate compares as
// timestamps and duration numerically; any other field compares its raw
// string value. The sort is stable, so equal keys keep their relative
// order and repeated sorts are deterministic.
func (s *TaskStore) Sort(field string, ascending bool) {
	var less func(a, b *domain.Task) bool

	switch field {
	case "dueDate":
		less = func(a, b *domain.Task) bool {
			return a.DueTimestamp().Before(b.DueTimestamp())
		}
	case "duration":
		less = func(a, b *domain.Task) bool {
			return a.Duration < b.Duration
		}
	default:
		less = func(a, b *domain.Task) bool {
			return a.FieldValue(field) < b.FieldValue(field)
		}
	}

	sort.SliceStable(s.tasks, func(i, j int) bool {
		if ascending {
			return less(s.tasks[i], s.tasks[j])
		}
		return less(s.tasks[j], s.tasks[i])
	})
}

// ReconcileDurations repairs the time-span fields of every stored task:
// tasks missing a start or end time get the placeholder one-hour slot, and
// tasks with both times but a missing or non-positive duration get it
// recomputed from the times.
func (s *TaskStore) ReconcileDurations() {
	for _, task := range s.tasks {
		*task = domain.Reconcile(*task)
	}
}
