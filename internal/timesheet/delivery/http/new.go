package http

import (
	"voice-timesheet/internal/timesheet"
	"voice-timesheet/pkg/log"
)

type handler struct {
	l              log.Logger
	uc             timesheet.UseCase
	maxUploadBytes int64
}

// New creates a new HTTP handler for the timesheet domain.
// maxUploadBytes caps the size of uploaded recordings.
func New(l log.Logger, uc timesheet.UseCase, maxUploadBytes int64) *handler {
	return &handler{
		l:              l,
		uc:             uc,
		maxUploadBytes: maxUploadBytes,
	}
}
