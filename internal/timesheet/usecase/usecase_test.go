package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"voice-timesheet/internal/catalog"
	"voice-timesheet/internal/ledger"
	"voice-timesheet/internal/model"
	"voice-timesheet/internal/scratch"
	"voice-timesheet/internal/timesheet"
	"voice-timesheet/pkg/gemini"
)

// Mock logger for testing
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                    {}
func (mockLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (mockLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                   {}
func (mockLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (mockLogger) Fatalf(ctx context.Context, template string, args ...any) {}

// Mock Gemini client for testing. Replies with transcript for requests
// carrying inline media and with extraction for text-only requests.
type mockGeminiClient struct {
	extractionReply string
	transcriptReply string
	err             error
	calls           int
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	reply := m.extractionReply
	for _, p := range req.Contents[0].Parts {
		if p.InlineData != nil {
			reply = m.transcriptReply
		}
	}

	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: reply}}}},
		},
	}, nil
}

func (m *mockGeminiClient) Model() string { return "gemini-test" }

const validReply = `[
  {
    "project_code": "PRJ-1",
    "client_code": "CLI-1",
    "project_name": "Platform",
    "task_name": "Development",
    "task_id": "T-9",
    "billing_classification": null,
    "entry_date": "2026-08-24",
    "start_time": null,
    "end_time": null,
    "duration_minutes": 480,
    "comment": "Worked on the API",
    "transcript_excerpt": "spent the day on the API"
  },
  {
    "project_code": "PRJ-2",
    "client_code": "CLI-2",
    "project_name": "Website",
    "task_name": "Design",
    "task_id": "T-3",
    "billing_classification": null,
    "entry_date": "2026-08-25",
    "start_time": null,
    "end_time": null,
    "duration_minutes": "3-4 hours",
    "comment": "Reworked the landing page",
    "transcript_excerpt": "about three to four hours on the landing page"
  }
]`

func writeCatalog(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "knowledge_base.json")
	content := `{"projects": [
		{"project_name": "Platform", "project_code": "PRJ-1", "client_code": "CLI-1", "task": "Development", "task_id": "T-9"},
		{"project_name": "Website", "project_code": "PRJ-2", "client_code": "CLI-2", "task": "Design", "task_id": "T-3"}
	]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newUseCase(t *testing.T, llm gemini.IGemini) (*implUseCase, string) {
	t.Helper()
	dir := t.TempDir()

	store, err := scratch.New(filepath.Join(dir, "uploads"), mockLogger{})
	if err != nil {
		t.Fatal(err)
	}

	ledgerPath := filepath.Join(dir, "output_data.csv")
	uc := New(mockLogger{}, llm, ledger.New(ledgerPath), store, writeCatalog(t, dir))
	uc.now = func() time.Time { return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) }
	return uc, dir
}

func TestBuildExtractionPrompt(t *testing.T) {
	kb := model.KnowledgeBase{Projects: []model.Project{
		{ProjectName: "Platform", ProjectCode: "PRJ-1", ClientCode: "CLI-1", Task: "Development", TaskID: "T-9"},
		{ProjectName: "Website", ProjectCode: "PRJ-2", ClientCode: "CLI-2", Task: "Design", TaskID: "T-3"},
	}}
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) // Wednesday

	prompt := buildExtractionPrompt(kb, now)

	if got := strings.Count(prompt, "(Code: "); got != len(kb.Projects) {
		t.Errorf("project listings = %d, want %d", got, len(kb.Projects))
	}
	for _, want := range []string{
		"PRJ-1", "CLI-1", "Development", "T-9",
		"PRJ-2", "CLI-2", "Design", "T-3",
		"2026-08-26 (Wednesday)",
		"2026-08-24 (Monday) to 2026-08-30 (Sunday)",
		"Return ONLY the JSON array",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestStripCodeFences(t *testing.T) {
	clean := `[{"a": 1}]`
	tests := []struct {
		name string
		in   string
	}{
		{"already clean", clean},
		{"json fence", "```json\n" + clean + "\n```"},
		{"bare fence", "```\n" + clean + "\n```"},
		{"fence with whitespace", "  ```json\n" + clean + "\n```  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripCodeFences(tt.in)
			if got != clean {
				t.Errorf("stripCodeFences = %q, want %q", got, clean)
			}
			// Idempotent: stripping again changes nothing
			if again := stripCodeFences(got); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestProcessText(t *testing.T) {
	llm := &mockGeminiClient{extractionReply: "```json\n" + validReply + "\n```"}
	uc, _ := newUseCase(t, llm)

	out, err := uc.ProcessText(context.Background(), timesheet.ProcessTextInput{
		Text: "Monday I spent the day on the API, Tuesday three to four hours on the landing page",
	})
	if err != nil {
		t.Fatalf("ProcessText: %v", err)
	}

	if out.EntryCount != 2 || len(out.Entries) != 2 {
		t.Fatalf("entry count = %d, want 2", out.EntryCount)
	}
	if out.Transcription != "" {
		t.Errorf("text path should not carry a transcription")
	}

	// Whole batch shares one UTC processing timestamp
	wantTS := "2026-08-26T12:00:00Z"
	for _, e := range out.Entries {
		if e.TS != wantTS {
			t.Errorf("ts = %q, want %q", e.TS, wantTS)
		}
	}

	// Textual duration range normalized to mean minutes
	if out.Entries[1].DurationMinutes != 210 {
		t.Errorf("duration = %d, want 210", out.Entries[1].DurationMinutes)
	}

	// Batch persisted to the ledger
	f, err := os.Open(out.LedgerPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Errorf("ledger rows = %d, want header + 2", len(rows))
	}
}

func TestProcessText_EmptyInput(t *testing.T) {
	uc, _ := newUseCase(t, &mockGeminiClient{})

	_, err := uc.ProcessText(context.Background(), timesheet.ProcessTextInput{Text: "   "})
	if !errors.Is(err, timesheet.ErrEmptyText) {
		t.Fatalf("err = %v, want ErrEmptyText", err)
	}
}

func TestProcessText_MissingCatalogBeforeModelCall(t *testing.T) {
	llm := &mockGeminiClient{extractionReply: validReply}
	uc, _ := newUseCase(t, llm)
	uc.catalogPath = filepath.Join(t.TempDir(), "nope.json")

	_, err := uc.ProcessText(context.Background(), timesheet.ProcessTextInput{Text: "worked today"})
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("err = %v, want catalog.ErrNotFound", err)
	}
	if llm.calls != 0 {
		t.Errorf("model called %d times despite missing catalog", llm.calls)
	}
}

func TestProcessText_UnparseableReply(t *testing.T) {
	garbage := "I could not find any timesheet entries, sorry! " + strings.Repeat("x", 600)
	llm := &mockGeminiClient{extractionReply: garbage}
	uc, _ := newUseCase(t, llm)

	_, err := uc.ProcessText(context.Background(), timesheet.ProcessTextInput{Text: "worked today"})
	if !errors.Is(err, timesheet.ErrExtraction) {
		t.Fatalf("err = %v, want ErrExtraction", err)
	}
	if !strings.Contains(err.Error(), garbage[:500]) {
		t.Errorf("error should quote the raw reply")
	}
	if strings.Contains(err.Error(), garbage[:520]) {
		t.Errorf("raw reply quote should be truncated to 500 chars")
	}

	// No partial ledger writes on extraction failure
	if uc.ledger.Exists() {
		t.Errorf("ledger must stay untouched after extraction failure")
	}
}

func TestProcessText_ModelFailure(t *testing.T) {
	llm := &mockGeminiClient{err: errors.New("quota exceeded")}
	uc, _ := newUseCase(t, llm)

	_, err := uc.ProcessText(context.Background(), timesheet.ProcessTextInput{Text: "worked today"})
	if !errors.Is(err, timesheet.ErrExtraction) {
		t.Fatalf("err = %v, want ErrExtraction", err)
	}
}

func TestProcessText_CacheSkipsSecondModelCall(t *testing.T) {
	llm := &mockGeminiClient{extractionReply: validReply}
	uc, _ := newUseCase(t, llm)
	ctx := context.Background()
	input := timesheet.ProcessTextInput{Text: "worked on the API all day Monday"}

	if _, err := uc.ProcessText(ctx, input); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.ProcessText(ctx, input); err != nil {
		t.Fatal(err)
	}

	if llm.calls != 1 {
		t.Errorf("model calls = %d, want 1 (second submission served from cache)", llm.calls)
	}

	// Both submissions still reach the ledger
	f, _ := os.Open(uc.ledger.Path())
	defer f.Close()
	rows, _ := csv.NewReader(f).ReadAll()
	if len(rows) != 5 {
		t.Errorf("ledger rows = %d, want header + 4", len(rows))
	}
}

func TestProcessAudio(t *testing.T) {
	llm := &mockGeminiClient{
		extractionReply: validReply,
		transcriptReply: "spent the day on the API and the landing page",
	}
	uc, dir := newUseCase(t, llm)

	out, err := uc.ProcessAudio(context.Background(), timesheet.ProcessAudioInput{
		Audio:    strings.NewReader("fake-webm-bytes"),
		Filename: "recording.webm",
	})
	if err != nil {
		t.Fatalf("ProcessAudio: %v", err)
	}

	if out.Transcription != "spent the day on the API and the landing page" {
		t.Errorf("transcription = %q", out.Transcription)
	}
	if out.EntryCount != 2 {
		t.Errorf("entry count = %d, want 2", out.EntryCount)
	}
	if llm.calls != 2 {
		t.Errorf("model calls = %d, want 2 (transcribe + extract)", llm.calls)
	}

	// Scratch dir left clean
	entries, _ := os.ReadDir(filepath.Join(dir, "uploads"))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), scratch.Prefix) {
			t.Errorf("leftover scratch file: %s", e.Name())
		}
	}
}

func TestProcessAudio_NoFile(t *testing.T) {
	uc, _ := newUseCase(t, &mockGeminiClient{})

	_, err := uc.ProcessAudio(context.Background(), timesheet.ProcessAudioInput{})
	if !errors.Is(err, timesheet.ErrNoAudioFile) {
		t.Fatalf("err = %v, want ErrNoAudioFile", err)
	}
}

func TestProcessAudio_TranscriptionFailureCleansScratch(t *testing.T) {
	llm := &mockGeminiClient{err: errors.New("auth failure")}
	uc, dir := newUseCase(t, llm)

	_, err := uc.ProcessAudio(context.Background(), timesheet.ProcessAudioInput{
		Audio:    strings.NewReader("bytes"),
		Filename: "note.ogg",
	})
	if !errors.Is(err, timesheet.ErrTranscription) {
		t.Fatalf("err = %v, want ErrTranscription", err)
	}

	entries, _ := os.ReadDir(filepath.Join(dir, "uploads"))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), scratch.Prefix) {
			t.Errorf("leftover scratch file after failure: %s", e.Name())
		}
	}
}

func TestLedgerFileAndClear(t *testing.T) {
	llm := &mockGeminiClient{extractionReply: validReply}
	uc, _ := newUseCase(t, llm)
	ctx := context.Background()

	if _, err := uc.LedgerFile(ctx); !errors.Is(err, ledger.ErrNoLedger) {
		t.Fatalf("err = %v, want ErrNoLedger", err)
	}

	if _, err := uc.ProcessText(ctx, timesheet.ProcessTextInput{Text: "worked today"}); err != nil {
		t.Fatal(err)
	}

	path, err := uc.LedgerFile(ctx)
	if err != nil {
		t.Fatalf("LedgerFile: %v", err)
	}
	if path == "" {
		t.Errorf("expected ledger path")
	}

	if err := uc.ClearLedger(ctx); err != nil {
		t.Fatalf("ClearLedger: %v", err)
	}
	if _, err := uc.LedgerFile(ctx); !errors.Is(err, ledger.ErrNoLedger) {
		t.Fatalf("err after clear = %v, want ErrNoLedger", err)
	}
}

func TestProjects(t *testing.T) {
	uc, _ := newUseCase(t, &mockGeminiClient{})

	projects, err := uc.Projects(context.Background())
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("projects = %d, want 2", len(projects))
	}
}

func TestAudioMIME(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.webm", "audio/webm"},
		{"a.mp3", "audio/mp3"},
		{"a.WAV", "audio/wav"},
		{"a.ogg", "audio/ogg"},
		{"a.m4a", "audio/mp4"},
		{"a.mp4", "audio/mp4"},
		{"a.flac", "audio/webm"},
		{"noext", "audio/webm"},
	}

	for _, tt := range tests {
		if got := audioMIME(tt.path); got != tt.want {
			t.Errorf("audioMIME(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
