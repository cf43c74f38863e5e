package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"resty.dev/v3"
)

// Error is the structured error shape the backend returns for non-2xx
// responses: a problem title/detail plus an optional per-field errors map.
// When the body does not decode, Detail falls back to the raw text.
type Error struct {
	Status int                 `json:"-"`
	Title  string              `json:"title"`
	Detail string              `json:"detail"`
	Fields map[string][]string `json:"errors"`
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "api: %d", e.Status)
	if e.Title != "" {
		b.WriteString(" " + e.Title)
	}
	if e.Detail != "" {
		b.WriteString(": " + e.Detail)
	}
	for field, msgs := range e.Fields {
		fmt.Fprintf(&b, "; %s: %s", field, strings.Join(msgs, ", "))
	}
	return b.String()
}

func (e *Error) NotFound() bool {
	return e.Status == http.StatusNotFound
}

func (e *Error) Forbidden() bool {
	return e.Status == http.StatusForbidden || e.Status == http.StatusUnauthorized
}

func decodeAPIError(res *resty.Response) error {
	apiErr := &Error{Status: res.StatusCode()}

	body := res.String()
	if err := json.Unmarshal([]byte(body), apiErr); err != nil || (apiErr.Title == "" && apiErr.Detail == "" && len(apiErr.Fields) == 0) {
		apiErr.Detail = strings.TrimSpace(body)
	}

	return apiErr
}
