package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/pkg/response"
)

// Index godoc
// @Summary     Landing page
// @Description Renders the submission form with the current project catalog.
// @Tags        Timesheet
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      / [GET]
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := h.uc.Projects(ctx)
	if err != nil {
		// The page still renders with an empty catalog.
		h.l.Warnf(ctx, "index: catalog unavailable: %v", err)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Projects": projects,
	})
}

// Process godoc
// @Summary     Process a submission
// @Description Converts free-form text or an uploaded recording into structured timesheet entries and appends them to the ledger.
// @Tags        Timesheet
// @Accept      mpfd
// @Produce     json
// @Param       input_type formData string true  "text or recording"
// @Param       text_input formData string false "Activity description (text mode)"
// @Param       audio_file formData file   false "Recording (recording mode)"
// @Success     200 {object} processResp
// @Failure     400 {object} response.ErrResp "Bad input or missing catalog"
// @Failure     500 {object} response.ErrResp "Model or IO failure"
// @Router      /process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBindReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	var out timesheet.ProcessOutput

	switch req.InputType {
	case inputTypeRecording:
		fh, fErr := h.processAudioFile(c, h.maxUploadBytes)
		if fErr != nil {
			h.writeError(c, fErr)
			return
		}

		f, fErr := fh.Open()
		if fErr != nil {
			response.InternalError(c, fErr)
			return
		}
		defer f.Close()

		out, err = h.uc.ProcessAudio(ctx, timesheet.ProcessAudioInput{
			Audio:    f,
			Filename: fh.Filename,
		})

	case inputTypeText:
		out, err = h.uc.ProcessText(ctx, timesheet.ProcessTextInput{
			Text: req.TextInput,
		})

	default:
		response.BadRequest(c, timesheet.ErrEmptyText)
		return
	}

	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newProcessResp(out))
}

// Download godoc
// @Summary     Download the ledger
// @Description Streams the accumulated CSV as an attachment.
// @Tags        Timesheet
// @Produce     text/csv
// @Success     200 {file} file
// @Failure     404 {object} response.ErrResp "No entries produced yet"
// @Router      /download [GET]
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	path, err := h.uc.LedgerFile(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.FileAttachment(path, "timesheet_entries.csv")
}

// Clear godoc
// @Summary     Clear the ledger
// @Description Deletes the accumulated CSV file.
// @Tags        Timesheet
// @Produce     json
// @Success     200 {object} response.MsgResp
// @Failure     500 {object} response.ErrResp
// @Router      /clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearLedger(ctx); err != nil {
		h.l.Errorf(ctx, "uc.ClearLedger: %v", err)
		h.writeError(c, err)
		return
	}

	response.OKMsg(c, "Output file cleared successfully")
}

// Projects godoc
// @Summary     Project catalog
// @Description Returns the raw project catalog as JSON.
// @Tags        Timesheet
// @Produce     json
// @Success     200 {array} model.Project
// @Failure     400 {object} response.ErrResp "Catalog missing or invalid"
// @Router      /projects [GET]
func (h *handler) Projects(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := h.uc.Projects(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Projects: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, projects)
}
