// Package server provides the HTTP REST API for the construction estimator.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/buildwise/internal/schemas"
	"github.com/jonathan/buildwise/internal/types"
)

// ErrMalformedBody indicates the request body could not be read or is not JSON.
type ErrMalformedBody struct {
	Cause error
}

func (e *ErrMalformedBody) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Cause)
}

func (e *ErrMalformedBody) Unwrap() error {
	return e.Cause
}

// ErrValidation indicates a well-formed request that breaks a field rule.
type ErrValidation struct {
	Details []schemas.FieldError
}

func (e *ErrValidation) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Field+": "+d.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string               `json:"error"`
	Details []schemas.FieldError `json:"details,omitempty"`
}

// errorFrom builds the response body for err.
func errorFrom(err error) errorBody {
	var invalid *ErrValidation
	if errors.As(err, &invalid) {
		return errorBody{Error: "validation failed", Details: invalid.Details}
	}
	return errorBody{Error: err.Error()}
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var malformed *ErrMalformedBody
	var invalid *ErrValidation
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &malformed):
		return http.StatusBadRequest
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// validationFromRequest converts the error of types.EstimationRequest.Validate
// into an *ErrValidation with one detail per broken rule.
func validationFromRequest(err error) error {
	var targetErr *types.ErrTargetNotShorter
	if errors.As(err, &targetErr) {
		return &ErrValidation{Details: []schemas.FieldError{{
			Field:   "compression.target_timeline_weeks",
			Message: targetErr.Error(),
		}}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]schemas.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			field := fe.Namespace()
			if i := strings.Index(field, "."); i >= 0 {
				field = field[i+1:]
			}
			details = append(details, schemas.FieldError{
				Field:   field,
				Message: fmt.Sprintf("failed %q rule", fe.Tag()),
			})
		}
		return &ErrValidation{Details: details}
	}

	return err
}
