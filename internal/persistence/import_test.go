package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusplanner/internal/domain"
	apperrors "campusplanner/internal/errors"
)

func TestImportJSON_UnparseableContent(t *testing.T) {
	gw := exportGateway()

	_, err := gw.ImportJSON([]byte("{broken"))

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeImportFormat))
	assert.Contains(t, err.Error(), "Failed to parse JSON")
}

func TestImportJSON_NotAnArray(t *testing.T) {
	gw := exportGateway()

	_, err := gw.ImportJSON([]byte(`{"id": "t1"}`))

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeImportFormat))
	assert.Contains(t, err.Error(), "expected an array of tasks")
}

func TestImportJSON_FiltersIncompleteRecords(t *testing.T) {
	// One complete record, one missing its tag.
	raw := []byte(`[
		{"id": "t1", "title": "Revise notes", "dueDate": "2026-09-03T09:00:00", "startTime": "09:00", "endTime": "10:30", "duration": 90, "tag": "Study"},
		{"id": "t2", "title": "No tag here", "dueDate": "2026-09-04T09:00:00", "duration": 30, "tag": ""}
	]`)

	result, err := exportGateway().ImportJSON(raw)

	require.NoError(t, err)
	require.Len(t, result.Accepted, 1)
	assert.Equal(t, 1, result.Rejected)
	assert.Equal(t, "t1", result.Accepted[0].ID)
}

func TestImportJSON_ZeroDurationRejected(t *testing.T) {
	raw := []byte(`[{"id": "t1", "title": "X", "dueDate": "2026-09-03T09:00:00", "duration": 0, "tag": "A"}]`)

	result, err := exportGateway().ImportJSON(raw)

	require.NoError(t, err)
	assert.Empty(t, result.Accepted)
	assert.Equal(t, 1, result.Rejected)
}

func TestImportJSON_ReconcilesAcceptedRecords(t *testing.T) {
	// Times present but the duration is negative: the reconciler recomputes
	// it from the clock values.
	raw := []byte(`[{"id": "t1", "title": "X", "dueDate": "2026-09-03T09:00:00", "startTime": "09:00", "endTime": "10:30", "duration": -10, "tag": "A"}]`)

	result, err := exportGateway().ImportJSON(raw)

	require.NoError(t, err)
	require.Len(t, result.Accepted, 1)
	assert.Equal(t, 90, result.Accepted[0].Duration)
}

func TestImportJSON_EmptyArray(t *testing.T) {
	result, err := exportGateway().ImportJSON([]byte(`[]`))

	require.NoError(t, err)
	assert.Empty(t, result.Accepted)
	assert.Zero(t, result.Rejected)
}

func TestImportJSON_ExportRoundTrip(t *testing.T) {
	gw := exportGateway()
	original := []*domain.Task{
		{ID: "t1", Title: "Read chapter 4", DueDate: "2026-09-01T09:00:00", StartTime: "09:00", EndTime: "10:30", Duration: 90, Tag: "Reading"},
		{ID: "t2", Title: "Lab report", DueDate: "2026-09-02T14:00:00", StartTime: "14:00", EndTime: "15:00", Duration: 60, Tag: "Chemistry"},
	}

	blob, err := gw.ExportJSON(original)
	require.NoError(t, err)

	result, err := gw.ImportJSON(blob.Data)
	require.NoError(t, err)

	require.Len(t, result.Accepted, 2)
	assert.Zero(t, result.Rejected)
	assert.Equal(t, original[0].Title, result.Accepted[0].Title)
	assert.Equal(t, original[1].Duration, result.Accepted[1].Duration)
}
