package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-timesheet/internal/catalog"
	"voice-timesheet/internal/ledger"
	"voice-timesheet/internal/timesheet"
	"voice-timesheet/pkg/response"
)

// writeError maps domain errors onto the HTTP surface: input and config
// problems are 400, a missing ledger is 404, everything else
// (remote model, IO) is 500.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, timesheet.ErrEmptyText),
		errors.Is(err, timesheet.ErrNoAudioFile),
		errors.Is(err, timesheet.ErrAudioTooLarge),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, catalog.ErrInvalid):
		response.BadRequest(c, err)
	case errors.Is(err, ledger.ErrNoLedger):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
