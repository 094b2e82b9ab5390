package timesheet

import (
	"io"

	"voice-timesheet/internal/model"
)

// --- UseCase Inputs ---

type ProcessTextInput struct {
	Text string
}

type ProcessAudioInput struct {
	Audio    io.Reader
	Filename string
}

// --- UseCase Outputs ---

// ProcessOutput is the result of one submission: the batch of extracted
// entries that was appended to the ledger.
type ProcessOutput struct {
	Entries       []model.TimesheetEntry
	EntryCount    int
	Transcription string // set only for the audio path
	LedgerPath    string
}
