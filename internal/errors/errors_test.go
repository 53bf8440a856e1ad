package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "Error without cause",
			err:      &AppError{Type: ErrorTypeValidation, Message: "title is malformed"},
			expected: "validation: title is malformed",
		},
		{
			name:     "Error with cause",
			err:      &AppError{Type: ErrorTypeStorage, Message: "save failed", Cause: errors.New("disk full")},
			expected: "storage: save failed (caused by: disk full)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeStorage, "storage"},
		{ErrorTypeImportFormat, "import_format"},
		{ErrorTypeInternal, "internal"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.errorType.String(); got != tt.expected {
				t.Errorf("String() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name         string
		err          *AppError
		expectedType ErrorType
		expectedCode string
	}{
		{"Validation", NewValidationError("bad input", nil), ErrorTypeValidation, "VALIDATION_FAILED"},
		{"NotFound", NewNotFoundError("task", "abc"), ErrorTypeNotFound, "NOT_FOUND"},
		{"Storage", NewStorageError("save tasks", errors.New("quota")), ErrorTypeStorage, "STORAGE_ERROR"},
		{"ImportFormat", NewImportFormatError("expected an array of tasks", nil), ErrorTypeImportFormat, "IMPORT_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.expectedType {
				t.Errorf("Type = %v, expected %v", tt.err.Type, tt.expectedType)
			}
			if tt.err.Code != tt.expectedCode {
				t.Errorf("Code = %q, expected %q", tt.err.Code, tt.expectedCode)
			}
		})
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NewStorageError("load tasks", nil)
	wrapped := fmt.Errorf("outer: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("AsAppError(wrapped) expected true")
	}
	if got != appErr {
		t.Error("AsAppError(wrapped) did not unwrap to the original error")
	}

	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Error("AsAppError(plain) expected false")
	}
}

func TestIsErrorType(t *testing.T) {
	err := NewImportFormatError("not an array", nil)

	if !IsErrorType(err, ErrorTypeImportFormat) {
		t.Error("IsErrorType expected true for matching type")
	}
	if IsErrorType(err, ErrorTypeStorage) {
		t.Error("IsErrorType expected false for mismatched type")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation errors are user errors", NewValidationError("bad", nil), false},
		{"Not found errors are user errors", NewNotFoundError("task", "x"), false},
		{"Import format errors are surfaced, not logged", NewImportFormatError("bad", nil), false},
		{"Storage errors are system errors", NewStorageError("save", nil), true},
		{"Unknown errors are logged", errors.New("mystery"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLogError(tt.err); got != tt.expected {
				t.Errorf("ShouldLogError() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestGetUserMessage(t *testing.T) {
	storageErr := NewStorageError("save tasks", errors.New("quota exceeded"))
	msg := GetUserMessage(storageErr)
	if msg == storageErr.Message {
		t.Error("GetUserMessage should not expose raw storage error details")
	}

	validationErr := NewValidationError("Title contains duplicated words.", nil)
	if got := GetUserMessage(validationErr); got != "Title contains duplicated words." {
		t.Errorf("GetUserMessage() = %q, expected validation message verbatim", got)
	}
}
