package http

import (
	"fmt"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"voice-timesheet/internal/timesheet"
)

// processBindReq binds the multipart process form.
func (h *handler) processBindReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBind(&req); err != nil {
		return req, fmt.Errorf("invalid form: %w", err)
	}
	return req, nil
}

// processAudioFile extracts and validates the uploaded recording.
func (h *handler) processAudioFile(c *gin.Context, maxBytes int64) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("audio_file")
	if err != nil {
		return nil, timesheet.ErrNoAudioFile
	}
	if fh.Filename == "" {
		return nil, timesheet.ErrNoAudioFile
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, fmt.Errorf("%w (%d bytes)", timesheet.ErrAudioTooLarge, maxBytes)
	}
	return fh, nil
}
