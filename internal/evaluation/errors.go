package evaluation

import (
	"fmt"
	"strings"
)

// NoJSONError indicates the model response contained no JSON-shaped substring.
// The raw response is carried in full to aid debugging.
type NoJSONError struct {
	Raw string
}

func (e *NoJSONError) Error() string {
	return fmt.Sprintf("model did not return JSON.\nRaw output:\n%s", e.Raw)
}

// MalformedJSONError indicates the extracted substring failed to parse.
type MalformedJSONError struct {
	Message string
	Cause   error
}

func (e *MalformedJSONError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed JSON: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed JSON: %s", e.Message)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Cause
}

// MissingKeysError indicates required top-level keys were absent.
type MissingKeysError struct {
	Missing []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("JSON missing expected keys: %s", strings.Join(e.Missing, ", "))
}

// CriteriaMismatchError indicates the criterion key set did not exactly match
// the rubric.
type CriteriaMismatchError struct {
	Missing []string
	Extras  []string
}

func (e *CriteriaMismatchError) Error() string {
	msg := "criteria keys mismatch"
	if len(e.Missing) > 0 {
		msg += fmt.Sprintf("; missing: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Extras) > 0 {
		msg += fmt.Sprintf("; unexpected: %s", strings.Join(e.Extras, ", "))
	}
	return msg
}
