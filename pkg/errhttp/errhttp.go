// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/ecoleta/pkg/httpx"
	pointdomain "github.com/ghuser/ecoleta/services/point/domain"
)

// ErrorResponse is the body written for every mapped error.
// Field is set only for submission validation failures.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid submission: name: must not be empty"`
	Field string `json:"field,omitempty" example:"name"`
} // @name ErrorResponse

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become a 500 with a generic message.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	body := ErrorResponse{Error: err.Error()}
	if status == http.StatusInternalServerError {
		body.Error = "internal server error"
	}
	var fe *pointdomain.FieldError
	if errors.As(err, &fe) {
		body.Field = fe.Field
	}
	httpx.JSON(w, status, body)
}

// StatusOf reports the status WriteError would use for err.
func StatusOf(err error) int {
	return mapErrorToStatus(err)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, pointdomain.ErrPointNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, pointdomain.ErrInvalidSubmission),
		errors.Is(err, pointdomain.ErrUnknownItem):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, pointdomain.ErrImageRejected):
		return http.StatusUnsupportedMediaType // 415
	case errors.Is(err, pointdomain.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge // 413
	case errors.Is(err, pointdomain.ErrImageStorage):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}
