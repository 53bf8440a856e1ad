package app

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"campusplanner/internal/domain"
	"campusplanner/internal/persistence"
	"campusplanner/internal/search"
	"campusplanner/internal/store"
	"campusplanner/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// newID is a variable that can be replaced in tests
var newID = uuid.NewString

// FormInput is the raw task form as captured from the user, before any
// normalization. Clock components arrive separately so the planner can pad
// single-digit entries; Duration stays text because the validator inspects
// what was typed, not a parsed number.
type FormInput struct {
	Title       string
	DueDate     string // YYYY-MM-DD
	StartHour   string
	StartMinute string
	EndHour     string
	EndMinute   string
	Duration    string
	Tag         string
}

// Planner orchestrates the task core in response to external events. It
// holds only transient interaction state (the id being edited, the id
// pending deletion); all task state lives in the store.
type Planner struct {
	store     *store.TaskStore
	gateway   *persistence.Gateway
	validator *validation.Validator
	engine    *search.Engine
	notifier  Notifier

	editingID       string
	pendingDeleteID string
}

// NewPlanner wires a planner over its collaborators. A nil notifier is
// replaced by NopNotifier.
func NewPlanner(s *store.TaskStore, g *persistence.Gateway, n Notifier) *Planner {
	if n == nil {
		n = NopNotifier{}
	}
	return &Planner{
		store:     s,
		gateway:   g,
		validator: validation.NewValidator(),
		engine:    search.NewEngine(s),
		notifier:  n,
	}
}

// LoadTasks populates the store from durable storage, repairs time-span
// fields on everything loaded, and signals a render.
func (p *Planner) LoadTasks(ctx context.Context) {
	p.store.SetTasks(p.gateway.Load(ctx))
	p.store.ReconcileDurations()
	p.notifier.TasksChanged()
}

// Tasks exposes the store's live ordering.
func (p *Planner) Tasks() []*domain.Task {
	return p.store.GetAll()
}

// SubmitForm handles a task form submission. It normalizes the clock
// components, derives a blank duration from the times, validates the
// candidate, and on success creates or updates the task, saves, and
// signals a render. A validation failure notifies the joined message and
// commits nothing.
func (p *Planner) SubmitForm(ctx context.Context, input FormInput) error {
	startTime := assembleClock(input.StartHour, input.StartMinute)
	endTime := assembleClock(input.EndHour, input.EndMinute)

	duration := input.Duration
	if duration == "" && startTime != "" && endTime != "" {
		start, startErr := domain.ParseClock(startTime)
		end, endErr := domain.ParseClock(endTime)
		if startErr == nil && endErr == nil {
			duration = strconv.Itoa(domain.WrapMinutes(start, end))
		}
	}

	candidate := validation.Candidate{
		Title:    input.Title,
		DueDate:  input.DueDate,
		Duration: duration,
		Tag:      input.Tag,
	}
	if validationErr := p.validator.Validate(candidate); validationErr != nil {
		p.notifier.ValidationFailed(validationErr.GetUserFriendlyMessage())
		return validationErr
	}

	minutes := parseDurationMinutes(duration)
	dueTimestamp := domain.ComposeDueTimestamp(input.DueDate, startTime)

	if p.editingID != "" {
		patch := domain.TaskPatch{
			Title:     &input.Title,
			DueDate:   &dueTimestamp,
			StartTime: &startTime,
			EndTime:   &endTime,
			Duration:  &minutes,
			Tag:       &input.Tag,
		}
		p.store.Update(p.editingID, patch)
		p.editingID = ""
	} else {
		now := timeNow()
		p.store.Add(&domain.Task{
			ID:        newID(),
			Title:     input.Title,
			DueDate:   dueTimestamp,
			StartTime: startTime,
			EndTime:   endTime,
			Duration:  minutes,
			Tag:       input.Tag,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	p.gateway.Save(ctx, p.store.GetAll())
	p.notifier.TasksChanged()
	return nil
}

// BeginEdit puts the planner in edit mode for the given task and returns it
// for form population, or nil when the id is unknown.
func (p *Planner) BeginEdit(id string) *domain.Task {
	task := p.store.GetByID(id)
	if task == nil {
		return nil
	}
	p.editingID = id
	return task
}

// CancelEdit leaves edit mode without committing anything.
func (p *Planner) CancelEdit() {
	p.editingID = ""
}

// EditingID returns the id of the task currently being edited, or empty.
func (p *Planner) EditingID() string {
	return p.editingID
}

// RequestDelete marks a task for deletion. The removal happens only when
// ConfirmDelete is called with confirmation.
func (p *Planner) RequestDelete(id string) {
	p.pendingDeleteID = id
}

// ConfirmDelete resolves a pending delete request. With confirmation the
// task is removed, the list saved, and a render signalled; without it the
// request is dropped. Reports whether a task was removed.
func (p *Planner) ConfirmDelete(ctx context.Context, confirmed bool) bool {
	id := p.pendingDeleteID
	p.pendingDeleteID = ""
	if !confirmed || id == "" {
		return false
	}

	if !p.store.Remove(id) {
		return false
	}
	p.gateway.Save(ctx, p.store.GetAll())
	p.notifier.TasksChanged()
	return true
}

// Search filters tasks by title pattern. See search.Engine for the
// degradation rules on invalid patterns.
func (p *Planner) Search(pattern string) []search.Match {
	return p.engine.Search(pattern)
}

// Sort reorders the visible list and signals a render. The new order is a
// view concern; it is not persisted.
func (p *Planner) Sort(field string, ascending bool) {
	p.store.Sort(field, ascending)
	p.notifier.TasksChanged()
}

// Import merges a JSON array of task records into the store. Records whose
// id already exists are dropped: first write wins, an import never
// overwrites. Format errors abort the whole import with no partial commit.
func (p *Planner) Import(ctx context.Context, raw []byte) (*persistence.ImportResult, error) {
	result, err := p.gateway.ImportJSON(raw)
	if err != nil {
		return nil, err
	}

	merged := 0
	for _, task := range result.Accepted {
		if p.store.GetByID(task.ID) != nil {
			continue
		}
		p.store.Add(task)
		merged++
	}

	p.gateway.Save(ctx, p.store.GetAll())
	p.notifier.ImportCompleted(merged, result.Rejected)
	p.notifier.TasksChanged()
	return result, nil
}

// ExportJSON renders the current task list as a JSON blob.
func (p *Planner) ExportJSON() (persistence.Blob, error) {
	return p.gateway.ExportJSON(p.store.GetAll())
}

// ExportCSV renders the current task list as a CSV blob.
func (p *Planner) ExportCSV(columns ...string) (persistence.Blob, error) {
	return p.gateway.ExportCSV(p.store.GetAll(), columns...)
}

// assembleClock builds an HH:MM value from separate components, padding
// each to two digits. Both components must be present for a time to exist.
func assembleClock(hour, minute string) string {
	if hour == "" || minute == "" {
		return ""
	}
	return domain.PadClockComponent(hour) + ":" + domain.PadClockComponent(minute)
}

// parseDurationMinutes converts validated duration text to whole minutes.
// The format rule allows up to two decimals; fractional values round to
// the nearest minute.
func parseDurationMinutes(duration string) int {
	value, err := strconv.ParseFloat(duration, 64)
	if err != nil {
		return 0
	}
	return int(value + 0.5)
}
