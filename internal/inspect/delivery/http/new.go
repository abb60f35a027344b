package http

import (
	"botschema/internal/inspect"
	"botschema/pkg/log"
)

type handler struct {
	l  log.Logger
	uc inspect.UseCase
}

// New creates a new HTTP handler for the inspect domain.
func New(l log.Logger, uc inspect.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
