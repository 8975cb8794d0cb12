// SPDX-License-Identifier: MIT

package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/sptable/export"
	"github.com/katalvlaran/sptable/ingest"
	"github.com/katalvlaran/sptable/samples"
)

// Error codes of the JSON error envelope.
const (
	CodeInvalidJSON     = "invalid_json"
	CodeValidation      = "validation_failed"
	CodeInvalidInput    = "invalid_input"
	CodeNotFound        = "not_found"
	CodePayloadTooLarge = "payload_too_large"
	CodeRateLimited     = "rate_limited"
	CodeInternal        = "internal"
)

var (
	// errBadQuery marks an unusable query parameter.
	errBadQuery = errors.New("httpapi: invalid query parameter")

	// errInvalidJSON marks a request body that does not decode into the
	// request type: empty, truncated, malformed or with unknown fields.
	errInvalidJSON = errors.New("httpapi: invalid JSON body")
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError names one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// classify maps err to a status code and an envelope.
func classify(err error) (int, ErrorResponse) {
	var (
		tooLarge *http.MaxBytesError
		verrs    validator.ValidationErrors
		syntax   *json.SyntaxError
		typeErr  *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, ErrorResponse{Error: CodePayloadTooLarge, Message: err.Error()}
	case errors.As(err, &verrs):
		resp := ErrorResponse{Error: CodeValidation, Message: "request failed validation"}
		for _, fe := range verrs {
			resp.Fields = append(resp.Fields, FieldError{Field: fe.Namespace(), Rule: fe.Tag()})
		}
		return http.StatusBadRequest, resp
	case errors.Is(err, errInvalidJSON), errors.As(err, &syntax), errors.As(err, &typeErr):
		return http.StatusBadRequest, ErrorResponse{Error: CodeInvalidJSON, Message: err.Error()}
	case errors.Is(err, samples.ErrUnknownSample):
		return http.StatusNotFound, ErrorResponse{Error: CodeNotFound, Message: err.Error()}
	case ingest.IsInputError(err), errors.Is(err, export.ErrUnknownFormat), errors.Is(err, errBadQuery):
		return http.StatusBadRequest, ErrorResponse{Error: CodeInvalidInput, Message: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: CodeInternal, Message: "internal error"}
	}
}

// fail writes the error envelope for err.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, body := classify(err)
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.logger.Log(r.Context(), level, "request failed",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Int("status", status),
		slog.String("error", err.Error()))

	render.Status(r, status)
	render.JSON(w, r, body)
}
