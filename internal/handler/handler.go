package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"foodzy/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse represents a plain confirmation response.
type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already flushed; nothing left to do.
		return
	}
}

// writeError maps a domain error kind to an HTTP status and writes the
// client-safe code and message. Unknown errors become a generic 500.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		domainErr = model.NewInfrastructureError("internal server error", err)
	}

	status := http.StatusInternalServerError
	switch domainErr.Kind {
	case model.KindValidation:
		status = http.StatusBadRequest
	case model.KindNotFound:
		status = http.StatusNotFound
	}

	evt := logger.Error()
	if status < http.StatusInternalServerError {
		evt = logger.Warn()
	}
	evt.Err(domainErr.Err).
		Str("code", domainErr.Code).
		Int("status", status).
		Msg(domainErr.Message)

	writeJSON(w, status, ErrorResponse{Error: domainErr.Code, Message: domainErr.Message})
}

// decodeAndValidate decodes the request body into dst and applies its
// validation tags, returning a field-level validation error on failure.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &model.DomainError{
			Kind:    model.KindValidation,
			Code:    model.ErrCodeInvalidJSON,
			Message: "invalid request body",
			Err:     err,
		}
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, len(fieldErrs))
			for i, fe := range fieldErrs {
				msgs[i] = fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
			}
			return &model.DomainError{
				Kind:    model.KindValidation,
				Code:    model.ErrCodeValidationFailed,
				Message: strings.Join(msgs, "; "),
				Err:     err,
			}
		}
		return &model.DomainError{
			Kind:    model.KindValidation,
			Code:    model.ErrCodeValidationFailed,
			Message: "invalid request",
			Err:     err,
		}
	}

	return nil
}
