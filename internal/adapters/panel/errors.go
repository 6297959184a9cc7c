package panel

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/vpnadm/internal/domain"
	json "github.com/goccy/go-json"
)

// APIError is a non-2xx answer from the panel. Detail is the backend's own
// message and is shown to the operator verbatim.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
	RequestID  string

	sentinel error
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func newAPIError(method, path, requestID string, status int, body []byte, notFound error) *APIError {
	apiErr := &APIError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Detail:     detailFromBody(body),
		RequestID:  requestID,
	}

	switch status {
	case http.StatusUnauthorized:
		apiErr.sentinel = domain.ErrUnauthorized
	case http.StatusForbidden:
		apiErr.sentinel = domain.ErrForbidden
	case http.StatusNotFound:
		apiErr.sentinel = notFound
	}

	return apiErr
}

// detailFromBody extracts FastAPI's "detail" field, which is a string for
// HTTPException and a list of objects for request validation failures.
func detailFromBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	var parsed errorBody
	if err := json.Unmarshal(trimmed, &parsed); err != nil || len(parsed.Detail) == 0 {
		if trimmed[0] == '{' || trimmed[0] == '<' {
			return ""
		}
		return string(trimmed)
	}

	var text string
	if err := json.Unmarshal(parsed.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(parsed.Detail, &items); err == nil && len(items) > 0 {
		messages := make([]string, 0, len(items))
		for _, item := range items {
			if len(item.Loc) > 0 {
				messages = append(messages, fmt.Sprintf("%v: %s", item.Loc[len(item.Loc)-1], item.Msg))
				continue
			}
			messages = append(messages, item.Msg)
		}
		return strings.Join(messages, "; ")
	}

	return string(parsed.Detail)
}
