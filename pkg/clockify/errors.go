package clockify

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when Clockify rejects the API key.
var ErrUnauthorized = errors.New("clockify rejected the API key")

// APIError is a non-2xx response from the Clockify API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("clockify API error %d: %s", e.StatusCode, e.Body)
}
