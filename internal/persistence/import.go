package persistence

import (
	"encoding/json"

	"campusplanner/internal/domain"
	"campusplanner/internal/errors"
	"campusplanner/internal/logging"
)

// ImportResult reports the outcome of a JSON import. Rejected records are
// counted, not itemised.
type ImportResult struct {
	Accepted []*domain.Task
	Rejected int
}

// ImportJSON parses raw file content as a JSON array of task records. The
// whole import fails only when the content is unparseable or the top-level
// value is not an array. Individual records lacking any of id, title,
// dueDate, duration, or tag are dropped silently and counted; the duration
// reconciler runs over every accepted record. Merging into the live store
// is the caller's job, since the store owns the collection.
func (g *Gateway) ImportJSON(raw []byte) (*ImportResult, error) {
	if !json.Valid(raw) {
		return nil, errors.NewImportFormatError("Failed to parse JSON. Please check the file format.", nil)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.NewImportFormatError("Invalid JSON format: expected an array of tasks.", err)
	}

	result := &ImportResult{Accepted: make([]*domain.Task, 0, len(entries))}

	for _, entry := range entries {
		var task domain.Task
		if err := json.Unmarshal(entry, &task); err != nil {
			logging.Debugf("import: dropping malformed record: %v\n", err)
			result.Rejected++
			continue
		}
		if !hasRequiredFields(task) {
			result.Rejected++
			continue
		}

		reconciled := domain.Reconcile(task)
		result.Accepted = append(result.Accepted, &reconciled)
	}

	return result, nil
}

// hasRequiredFields mirrors the record filter of the exchange format:
// id, title, dueDate, duration, and tag must all carry a value. A zero
// duration counts as missing; the reconciler cannot help a record that
// never declared one.
func hasRequiredFields(task domain.Task) bool {
	return task.ID != "" &&
		task.Title != "" &&
		task.DueDate != "" &&
		task.Duration != 0 &&
		task.Tag != ""
}
