package timesheet

import "errors"

// Domain-specific errors for the timesheet package.
var (
	ErrEmptyText     = errors.New("no text input provided")
	ErrNoAudioFile   = errors.New("no audio file provided")
	ErrAudioTooLarge = errors.New("audio file exceeds the upload size limit")
	ErrTranscription = errors.New("audio transcription failed")
	ErrExtraction    = errors.New("timesheet extraction failed")
)
