package apikey

import "errors"

// Domain-specific errors for the apikey package.
var (
	ErrEmptyKey = errors.New("API key is required")
)
