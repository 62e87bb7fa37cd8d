package musixmatch

import (
	"encoding/json"
	"fmt"
)

// APIError is an application error reported in the envelope header.
type APIError struct {
	Endpoint   string
	StatusCode int
	Header     Header
	Body       json.RawMessage // Raw body as sent; usually empty on errors.
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("musixmatch %s: status %d: %s", e.Endpoint, e.StatusCode, StatusText(e.StatusCode))
	if e.Header.Hint != "" {
		msg += " (" + e.Header.Hint + ")"
	}
	return msg
}

// StatusText describes an envelope status code.
func StatusText(code int) string {
	switch code {
	case 200:
		return "ok"
	case 400:
		return "bad request syntax"
	case 401:
		return "authentication failed"
	case 402:
		return "usage limit reached"
	case 403:
		return "not authorized"
	case 404:
		return "resource not found"
	case 405:
		return "method not found"
	case 500:
		return "internal server error"
	case 503:
		return "system busy"
	}
	return "unknown status"
}
