// Package webhook delivers domain events to an external HTTP receiver
// through the instrumented platform HTTP client. Receiver failures are
// translated into domain errors so callers can log them uniformly.
package webhook

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/platform/httpclient"
)

// errorBody covers the common shapes receivers use for error replies:
// RFC 7807 problem details ("detail") and plain {"error"} / {"message"}.
type errorBody struct {
	Detail  string `json:"detail"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	for _, s := range []string{b.Detail, b.Message, b.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// statusErrors maps receiver replies onto domain sentinels. Anything
// unlisted below 500 stays an untyped error and surfaces as INTERNAL_ERROR.
var statusErrors = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusGone:                domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusTooManyRequests:     domain.ErrRateLimited,
}

// TranslateResponse maps a rejected delivery to a domain error.
func TranslateResponse(resp *httpclient.Response) error {
	detail := parseErrorBody(resp).text()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	if sentinel, ok := statusErrors[resp.StatusCode]; ok {
		return fmt.Errorf("webhook receiver: %s: %w", detail, sentinel)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("webhook receiver: %s: %w", detail, domain.ErrUnavailable)
	}
	return fmt.Errorf("webhook receiver: unexpected status %d: %s", resp.StatusCode, detail)
}

// parseErrorBody decodes a JSON error reply. Other content types and
// malformed bodies yield an empty errorBody.
func parseErrorBody(resp *httpclient.Response) errorBody {
	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/json") && !strings.HasPrefix(ct, "application/problem+json") {
		return errorBody{}
	}

	var eb errorBody
	if err := json.Unmarshal(resp.Body, &eb); err != nil {
		return errorBody{}
	}
	return eb
}
