package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"campusplanner/internal/domain"
)

// ErrNoTasks is returned when there is nothing to export.
var ErrNoTasks = errors.New("no tasks to export")

// DefaultCSVColumns is the standard CSV header. Callers may pass a superset
// to ExportCSV (e.g. adding CreatedAt and UpdatedAt).
var DefaultCSVColumns = []string{"ID", "Title", "DueDate", "StartTime", "EndTime", "Duration", "Tag"}

// ExportJSON renders the task list as a pretty-printed JSON array blob.
func (g *Gateway) ExportJSON(tasks []*domain.Task) (Blob, error) {
	if len(tasks) == 0 {
		return Blob{}, ErrNoTasks
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return Blob{}, fmt.Errorf("serializing tasks for export: %w", err)
	}

	return Blob{Name: g.jsonFilename, Data: data}, nil
}

// ExportCSV renders the task list as a CSV blob. With no columns given the
// default header is used. The Title field is the only quoted one: it is
// wrapped in double quotes with internal double quotes doubled, and no
// other escaping is applied to any field.
func (g *Gateway) ExportCSV(tasks []*domain.Task, columns ...string) (Blob, error) {
	if len(tasks) == 0 {
		return Blob{}, ErrNoTasks
	}
	if len(columns) == 0 {
		columns = DefaultCSVColumns
	}

	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, strings.Join(columns, ","))

	for _, task := range tasks {
		fields := make([]string, 0, len(columns))
		for _, column := range columns {
			value, err := csvField(task, column)
			if err != nil {
				return Blob{}, err
			}
			fields = append(fields, value)
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return Blob{Name: g.csvFilename, Data: []byte(strings.Join(lines, "\n"))}, nil
}

func csvField(task *domain.Task, column string) (string, error) {
	switch column {
	case "ID":
		return task.ID, nil
	case "Title":
		return `"` + strings.ReplaceAll(task.Title, `"`, `""`) + `"`, nil
	case "DueDate":
		return task.DueDate, nil
	case "StartTime":
		return task.StartTime, nil
	case "EndTime":
		return task.EndTime, nil
	case "Duration":
		return strconv.Itoa(task.Duration), nil
	case "Tag":
		return task.Tag, nil
	case "CreatedAt":
		return task.CreatedAt.Format(time.RFC3339), nil
	case "UpdatedAt":
		return task.UpdatedAt.Format(time.RFC3339), nil
	default:
		return "", fmt.Errorf("unknown CSV column: %s", column)
	}
}
