package persistence

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusplanner/internal/domain"
)

func exportGateway() *Gateway {
	return NewGateway(newFakeSlot(), "tasks")
}

func TestExportJSON_EmptyListRefused(t *testing.T) {
	_, err := exportGateway().ExportJSON(nil)
	assert.ErrorIs(t, err, ErrNoTasks)
}

func TestExportJSON_PrettyPrintedArray(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "t1", Title: "Essay draft", DueDate: "2026-09-05T09:00:00", StartTime: "09:00", EndTime: "11:00", Duration: 120, Tag: "Writing"},
	}

	blob, err := exportGateway().ExportJSON(tasks)

	require.NoError(t, err)
	assert.Equal(t, DefaultJSONFilename, blob.Name)
	assert.True(t, strings.HasPrefix(string(blob.Data), "[\n"), "output should be indented")

	var decoded []*domain.Task
	require.NoError(t, json.Unmarshal(blob.Data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Essay draft", decoded[0].Title)
}

func TestExportCSV_DefaultColumns(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "t1", Title: "Essay draft", DueDate: "2026-09-05T09:00:00", StartTime: "09:00", EndTime: "11:00", Duration: 120, Tag: "Writing"},
	}

	blob, err := exportGateway().ExportCSV(tasks)

	require.NoError(t, err)
	assert.Equal(t, DefaultCSVFilename, blob.Name)

	lines := strings.Split(string(blob.Data), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Title,DueDate,StartTime,EndTime,Duration,Tag", lines[0])
	assert.Equal(t, `t1,"Essay draft",2026-09-05T09:00:00,09:00,11:00,120,Writing`, lines[1])
}

func TestExportCSV_TitleQuotesDoubled(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "t1", Title: `Read "Dune", ch. 2`, DueDate: "2026-09-05T09:00:00", Duration: 45, Tag: "Reading"},
	}

	blob, err := exportGateway().ExportCSV(tasks)

	require.NoError(t, err)
	lines := strings.Split(string(blob.Data), "\n")
	assert.Contains(t, lines[1], `"Read ""Dune"", ch. 2"`)
}

func TestExportCSV_SupersetColumns(t *testing.T) {
	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tasks := []*domain.Task{
		{ID: "t1", Title: "X", DueDate: "2026-09-05T09:00:00", Duration: 30, Tag: "A", CreatedAt: created, UpdatedAt: created},
	}
	columns := append(append([]string{}, DefaultCSVColumns...), "CreatedAt", "UpdatedAt")

	blob, err := exportGateway().ExportCSV(tasks, columns...)

	require.NoError(t, err)
	lines := strings.Split(string(blob.Data), "\n")
	assert.Equal(t, "ID,Title,DueDate,StartTime,EndTime,Duration,Tag,CreatedAt,UpdatedAt", lines[0])
	assert.Contains(t, lines[1], "2026-08-30T12:00:00Z")
}

func TestExportCSV_UnknownColumn(t *testing.T) {
	tasks := []*domain.Task{{ID: "t1", Title: "X", Duration: 30, Tag: "A"}}

	_, err := exportGateway().ExportCSV(tasks, "ID", "Priority")

	assert.ErrorContains(t, err, "unknown CSV column")
}

func TestExportCSV_EmptyListRefused(t *testing.T) {
	_, err := exportGateway().ExportCSV(nil)
	assert.ErrorIs(t, err, ErrNoTasks)
}
