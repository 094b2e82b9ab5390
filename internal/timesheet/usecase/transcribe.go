package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/pkg/gemini"
)

const transcribeInstruction = "Transcribe this audio accurately. Return only the transcription text, nothing else."

// defaultAudioMIME is used for extensions outside the recognized set.
const defaultAudioMIME = "audio/webm"

var audioMIMETypes = map[string]string{
	".webm": "audio/webm",
	".mp3":  "audio/mp3",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".m4a":  "audio/mp4",
	".mp4":  "audio/mp4",
}

// transcribe sends the audio file inline to the model and returns the
// plain-text transcript.
func (uc *implUseCase) transcribe(ctx context.Context, path string) (string, error) {
	audio, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read audio file: %v", timesheet.ErrTranscription, err)
	}

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{
				{InlineData: &gemini.Blob{
					MIMEType: audioMIME(path),
					Data:     base64.StdEncoding.EncodeToString(audio),
				}},
				{Text: transcribeInstruction},
			}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", timesheet.ErrTranscription, err)
	}

	transcript := strings.TrimSpace(resp.Text())
	if transcript == "" {
		return "", fmt.Errorf("%w: empty transcription from model", timesheet.ErrTranscription)
	}

	return transcript, nil
}

// audioMIME maps a file extension to its audio MIME type, falling back
// to defaultAudioMIME for anything unrecognized.
func audioMIME(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mime, ok := audioMIMETypes[ext]; ok {
		return mime
	}
	return defaultAudioMIME
}
