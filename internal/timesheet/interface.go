package timesheet

import (
	"context"

	"voice-timesheet/internal/model"
)

type UseCase interface {
	// ProcessText extracts timesheet entries from free-form text and
	// appends them to the ledger.
	ProcessText(ctx context.Context, input ProcessTextInput) (ProcessOutput, error)

	// ProcessAudio transcribes an uploaded recording, then proceeds as
	// the text path using the transcript.
	ProcessAudio(ctx context.Context, input ProcessAudioInput) (ProcessOutput, error)

	// Projects returns the current project catalog.
	Projects(ctx context.Context) ([]model.Project, error)

	// LedgerFile returns the ledger path, or ledger.ErrNoLedger when no
	// entries have been produced yet.
	LedgerFile(ctx context.Context) (string, error)

	// ClearLedger deletes the ledger file.
	ClearLedger(ctx context.Context) error
}
