package middleware

import (
	"clockify-exporter/pkg/log"
)

// Middleware bundles the gin middlewares shared across routes.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
