package usecase

import (
	"context"
	"strings"

	"voice-timesheet/internal/catalog"
	"voice-timesheet/internal/ledger"
	"voice-timesheet/internal/model"
	"voice-timesheet/internal/timesheet"
)

// ProcessText extracts timesheet entries from free-form text and appends
// them to the ledger.
func (uc *implUseCase) ProcessText(ctx context.Context, input timesheet.ProcessTextInput) (timesheet.ProcessOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return timesheet.ProcessOutput{}, timesheet.ErrEmptyText
	}

	// Check the catalog before any remote call to avoid wasted cost.
	kb, err := catalog.Load(uc.catalogPath)
	if err != nil {
		return timesheet.ProcessOutput{}, err
	}

	return uc.process(ctx, input.Text, "", kb)
}

// ProcessAudio writes the upload to a scratch file, transcribes it, then
// proceeds exactly as the text path using the transcript. The scratch
// file is removed on every exit path.
func (uc *implUseCase) ProcessAudio(ctx context.Context, input timesheet.ProcessAudioInput) (timesheet.ProcessOutput, error) {
	if input.Audio == nil {
		return timesheet.ProcessOutput{}, timesheet.ErrNoAudioFile
	}

	kb, err := catalog.Load(uc.catalogPath)
	if err != nil {
		return timesheet.ProcessOutput{}, err
	}

	ext := extension(input.Filename)
	path, err := uc.scratch.Save(input.Audio, ext)
	if err != nil {
		return timesheet.ProcessOutput{}, err
	}
	defer uc.scratch.Remove(ctx, path)

	transcript, err := uc.transcribe(ctx, path)
	if err != nil {
		return timesheet.ProcessOutput{}, err
	}

	uc.l.Infof(ctx, "ProcessAudio: transcribed %d chars from %s", len(transcript), ext)

	return uc.process(ctx, transcript, transcript, kb)
}

// process runs extraction and persistence for already-validated text.
func (uc *implUseCase) process(ctx context.Context, text, transcription string, kb model.KnowledgeBase) (timesheet.ProcessOutput, error) {
	entries, err := uc.extract(ctx, text, kb, uc.now())
	if err != nil {
		return timesheet.ProcessOutput{}, err
	}

	// Persistence happens only after a fully parsed batch is obtained.
	if err := uc.ledger.Append(entries); err != nil {
		return timesheet.ProcessOutput{}, err
	}

	uc.l.Infof(ctx, "process: appended %d entries to %s", len(entries), uc.ledger.Path())

	return timesheet.ProcessOutput{
		Entries:       entries,
		EntryCount:    len(entries),
		Transcription: transcription,
		LedgerPath:    uc.ledger.Path(),
	}, nil
}

// Projects returns the current project catalog.
func (uc *implUseCase) Projects(ctx context.Context) ([]model.Project, error) {
	kb, err := catalog.Load(uc.catalogPath)
	if err != nil {
		return nil, err
	}
	return kb.Projects, nil
}

// LedgerFile returns the ledger path when it holds data.
func (uc *implUseCase) LedgerFile(ctx context.Context) (string, error) {
	if !uc.ledger.Exists() {
		return "", ledger.ErrNoLedger
	}
	return uc.ledger.Path(), nil
}

// ClearLedger deletes the ledger file.
func (uc *implUseCase) ClearLedger(ctx context.Context) error {
	return uc.ledger.Clear()
}

func extension(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[i:]
	}
	return ".webm"
}
