package validation

import (
	"regexp"
	"strings"
)

// Candidate is a task record as captured from a form, before it becomes a
// domain Task. Duration stays a raw string here: the format rule inspects
// the text the user typed, not the parsed number.
type Candidate struct {
	Title    string
	DueDate  string // YYYY-MM-DD, the date part only
	Duration string
	Tag      string
}

// Field format rules. The date rule is syntactic only: it bounds month to
// 01-12 and day to 01-31 but accepts impossible calendar dates such as
// 2024-02-31. Known gap, kept for compatibility with previously stored data.
var (
	titleRegex    = regexp.MustCompile(`^\S(.*\S)?$`)
	durationRegex = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{1,2})?$`)
	dateRegex     = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	tagRegex      = regexp.MustCompile(`^[A-Za-z]+(?:[ -][A-Za-z]+)*$`)
	wordRegex     = regexp.MustCompile(`\w+`)
)

// rule is one independent validation check. Every rule runs; failures
// accumulate instead of short-circuiting so the user sees the full list.
type rule struct {
	field string
	check func(Candidate) *FieldError
}

// Validator checks a candidate task record against the field-format rules.
type Validator struct {
	rules []rule
}

// NewValidator creates a validator with the full rule table.
func NewValidator() *Validator {
	return &Validator{
		rules: []rule{
			{"title", checkTitleWhitespace},
			{"title", checkTitleDuplicateWord},
			{"duration", checkDuration},
			{"due_date", checkDueDate},
			{"tag", checkTag},
		},
	}
}

// Validate evaluates every rule against the candidate. It returns nil when
// the candidate is valid; invalid input is reported through the returned
// value, never through a panic.
func (v *Validator) Validate(c Candidate) *ValidationError {
	validationError := NewValidationError()

	for _, r := range v.rules {
		if fieldErr := r.check(c); fieldErr != nil {
			validationError.Errors = append(validationError.Errors, *fieldErr)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

func checkTitleWhitespace(c Candidate) *FieldError {
	if titleRegex.MatchString(c.Title) {
		return nil
	}
	return &FieldError{
		Field:   "title",
		Type:    ErrorTypeInvalidFormat,
		Message: "Title cannot have leading/trailing spaces or empty.",
		Value:   c.Title,
	}
}

func checkTitleDuplicateWord(c Candidate) *FieldError {
	if !hasImmediateDuplicateWord(c.Title) {
		return nil
	}
	return &FieldError{
		Field:   "title",
		Type:    ErrorTypeDuplicateWord,
		Message: "Title contains duplicated words.",
		Value:   c.Title,
	}
}

func checkDuration(c Candidate) *FieldError {
	if durationRegex.MatchString(c.Duration) {
		return nil
	}
	return &FieldError{
		Field:   "duration",
		Type:    ErrorTypeInvalidFormat,
		Message: "Duration must be a positive number (max 2 decimals).",
		Value:   c.Duration,
	}
}

func checkDueDate(c Candidate) *FieldError {
	if dateRegex.MatchString(c.DueDate) {
		return nil
	}
	return &FieldError{
		Field:   "due_date",
		Type:    ErrorTypeInvalidFormat,
		Message: "Date must be in YYYY-MM-DD format.",
		Value:   c.DueDate,
	}
}

func checkTag(c Candidate) *FieldError {
	if tagRegex.MatchString(c.Tag) {
		return nil
	}
	return &FieldError{
		Field:   "tag",
		Type:    ErrorTypeInvalidFormat,
		Message: "Tag can only contain letters, spaces, or hyphens.",
		Value:   c.Tag,
	}
}

// hasImmediateDuplicateWord reports whether any whole word immediately
// repeats, case-sensitively, with only whitespace between the occurrences.
// RE2 has no backreferences, so the \b(\w+)\s+\1\b check is done by scanning
// word spans and comparing neighbours.
func hasImmediateDuplicateWord(s string) bool {
	spans := wordRegex.FindAllStringIndex(s, -1)
	for i := 1; i < len(spans); i++ {
		prev, cur := spans[i-1], spans[i]
		if s[prev[0]:prev[1]] != s[cur[0]:cur[1]] {
			continue
		}
		sep := s[prev[1]:cur[0]]
		if sep != "" && strings.TrimSpace(sep) == "" {
			return true
		}
	}
	return false
}
