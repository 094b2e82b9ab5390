package http

import (
	"fmt"

	"voice-timesheet/internal/model"
	"voice-timesheet/internal/timesheet"
)

// --- Request DTOs ---

// inputType values for the process form.
const (
	inputTypeText      = "text"
	inputTypeRecording = "recording"
)

type processReq struct {
	InputType string `form:"input_type"`
	TextInput string `form:"text_input"`
}

// --- Response DTOs ---

type processResp struct {
	Success        bool                   `json:"success"`
	Transcription  *string                `json:"transcription"`
	StructuredData []model.TimesheetEntry `json:"structured_data"`
	EntryCount     int                    `json:"entry_count"`
	Message        string                 `json:"message"`
}

func newProcessResp(out timesheet.ProcessOutput) processResp {
	resp := processResp{
		Success:        true,
		StructuredData: out.Entries,
		EntryCount:     out.EntryCount,
		Message: fmt.Sprintf("Successfully processed %d timesheet entries and saved to %s",
			out.EntryCount, out.LedgerPath),
	}
	if out.Transcription != "" {
		t := out.Transcription
		resp.Transcription = &t
	}
	return resp
}
