// Package dto provides HTTP request/response data transfer objects and the
// uniform success/error envelope for the inbound HTTP adapter layer.
package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/project-tracker/internal/platform/requestid"
)

// MsgInternal is the only message an INTERNAL_ERROR ever carries.
const MsgInternal = "an unexpected error occurred"

// Envelope is the body of every API response.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Meta    Meta       `json:"meta"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    domain.Code       `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Field   string            `json:"field,omitempty"`
}

// Meta accompanies every envelope.
type Meta struct {
	Timestamp  string      `json:"timestamp"`
	RequestID  string      `json:"requestId"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination is the wire form of query.Meta.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// ToPagination converts page metadata to its wire form.
func ToPagination(m query.Meta) *Pagination {
	return &Pagination{
		Page:       m.Page,
		Limit:      m.Limit,
		Total:      m.Total,
		TotalPages: m.TotalPages,
		HasNext:    m.HasNext,
		HasPrev:    m.HasPrev,
	}
}

func newMeta(r *http.Request) Meta {
	return Meta{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		RequestID: requestid.FromContext(r.Context()),
	}
}

// WriteJSON writes a success envelope wrapping data with the given status.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeEnvelope(w, r, status, Envelope{Success: true, Data: data, Meta: newMeta(r)})
}

// WriteList writes a success envelope wrapping one page of items.
func WriteList(w http.ResponseWriter, r *http.Request, items any, page query.Meta) {
	meta := newMeta(r)
	meta.Pagination = ToPagination(page)
	writeEnvelope(w, r, http.StatusOK, Envelope{Success: true, Data: items, Meta: meta})
}

// WriteError writes an error envelope for err. The code and status are
// derived from the sentinel the error wraps; anything unrecognized is logged
// and reported as an opaque INTERNAL_ERROR.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.CodeOf(err)
	body := &ErrorBody{Code: code, Message: err.Error()}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		body.Message = "request validation failed"
		body.Details = verr.Fields
		body.Field = verr.Field()
	case code == domain.CodeInternal:
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		body.Message = MsgInternal
	}

	writeEnvelope(w, r, StatusOf(code), Envelope{Error: body, Meta: newMeta(r)})
}

// WriteErrorStatus writes an error envelope with an explicit status, for
// failures raised by the transport itself (timeouts, throttling, panics).
func WriteErrorStatus(w http.ResponseWriter, r *http.Request, status int, code domain.Code, message string) {
	writeEnvelope(w, r, status, Envelope{
		Error: &ErrorBody{Code: code, Message: message},
		Meta:  newMeta(r),
	})
}

// StatusOf maps an envelope code to its HTTP status.
func StatusOf(code domain.Code) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeForbidden:
		return http.StatusForbidden
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeConflict:
		return http.StatusConflict
	case domain.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(env); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}
