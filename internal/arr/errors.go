package arr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the organizer could not be reached.
	ErrUnavailable = errors.New("organizer unavailable")

	// ErrUnauthorized indicates the API key was rejected.
	ErrUnauthorized = errors.New("invalid organizer api key")

	// ErrUnexpectedStatus indicates any other non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected organizer response")

	// ErrUnknownKind indicates an arr name other than radarr or sonarr.
	ErrUnknownKind = errors.New("unknown arr")
)

// StatusError carries the HTTP status of a failed organizer request.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap maps the status to a sentinel error.
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case 401, 403:
		return ErrUnauthorized
	default:
		return ErrUnexpectedStatus
	}
}
