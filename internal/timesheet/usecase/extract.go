package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voice-timesheet/internal/model"
	"voice-timesheet/internal/timesheet"
	"voice-timesheet/pkg/gemini"
)

// rawReplyLimit bounds how much of an unparseable model reply is quoted
// in the error message.
const rawReplyLimit = 500

// extract sends the rendered prompt plus the user's raw text to the
// model and parses the reply into timesheet entries. Every entry in the
// batch is stamped with the same UTC processing timestamp.
func (uc *implUseCase) extract(ctx context.Context, text string, kb model.KnowledgeBase, now time.Time) ([]model.TimesheetEntry, error) {
	prompt := buildExtractionPrompt(kb, now)
	key := cacheKey(prompt, text)

	if cached, ok := uc.cache.Get(key); ok {
		uc.l.Infof(ctx, "extract: cache hit, skipping model call (%d entries)", len(cached))
		return uc.stamp(cached), nil
	}

	fullPrompt := fmt.Sprintf("%s\n\nUSER INPUT:\n%s\n\nExtract timesheet entries:", prompt, text)

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: fullPrompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature: 0.2, // low temperature for deterministic JSON output
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", timesheet.ErrExtraction, err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("%w: empty response from model", timesheet.ErrExtraction)
	}

	cleaned := stripCodeFences(raw)

	var entries []model.TimesheetEntry
	if err := json.Unmarshal([]byte(cleaned), &entries); err != nil {
		uc.l.Errorf(ctx, "extract: failed to parse model reply: %v", err)
		return nil, fmt.Errorf("%w: failed to parse model response as JSON: %v\nResponse: %s",
			timesheet.ErrExtraction, err, truncate(raw, rawReplyLimit))
	}

	uc.cache.Add(key, entries)

	return uc.stamp(entries), nil
}

// stamp sets one shared processing timestamp on a copy of the batch.
func (uc *implUseCase) stamp(entries []model.TimesheetEntry) []model.TimesheetEntry {
	ts := uc.now().UTC().Format(time.RFC3339)

	stamped := make([]model.TimesheetEntry, len(entries))
	copy(stamped, entries)
	for i := range stamped {
		stamped[i].TS = ts
	}
	return stamped
}
