package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"fjacquet/budget-form/internal/entryerror"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
	// Fields names the offending record fields of a validation error.
	Fields []string `json:"fields,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes err as a JSON error response with the status it maps to.
func writeError(w http.ResponseWriter, err error) {
	resp := Response{Error: err.Error()}
	var vErr *entryerror.ValidationError
	if errors.As(err, &vErr) {
		resp.Fields = vErr.Fields
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(err))
	_ = json.NewEncoder(w).Encode(resp)
}

// StatusFor maps an entry error to an HTTP status code.
func StatusFor(err error) int {
	var (
		validationErr *entryerror.ValidationError
		exhaustedErr  *entryerror.WriteExhaustedError
		invalidErr    *entryerror.InvalidPathError
		configErr     *entryerror.ConfigurationError
		templateErr   *entryerror.TemplateError
		sourceErr     *entryerror.OptionSourceError
		storeErr      *entryerror.StoreError
		tooLarge      *http.MaxBytesError
		badRequest    *badRequestError
	)

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &exhaustedErr):
		return http.StatusConflict
	case errors.As(err, &invalidErr):
		return http.StatusBadRequest
	case errors.As(err, &configErr), errors.As(err, &templateErr), errors.As(err, &sourceErr):
		return http.StatusPreconditionFailed
	case errors.As(err, &storeErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type badRequestError struct {
	err error
}

func (e *badRequestError) Error() string {
	return "invalid request body: " + e.err.Error()
}

func (e *badRequestError) Unwrap() error {
	return e.err
}
