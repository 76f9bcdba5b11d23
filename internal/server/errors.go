package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/qa-coach/internal/evaluation"
	"github.com/jonathan/qa-coach/internal/schemas"
)

// HTTPStatus maps an evaluation failure to a status code. The four response
// defects and schema violations are the user's to fix by retrying or editing
// the transcript (422); anything else means the model call itself failed.
func HTTPStatus(err error) int {
	var (
		noJSON    *evaluation.NoJSONError
		malformed *evaluation.MalformedJSONError
		missing   *evaluation.MissingKeysError
		mismatch  *evaluation.CriteriaMismatchError
		violation *schemas.SchemaViolationError
	)
	switch {
	case errors.As(err, &noJSON),
		errors.As(err, &malformed),
		errors.As(err, &missing),
		errors.As(err, &mismatch),
		errors.As(err, &violation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
