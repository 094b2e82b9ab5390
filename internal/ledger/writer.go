package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"voice-timesheet/internal/model"
)

var ErrNoLedger = errors.New("no timesheet entries have been produced yet")

// Columns is the fixed CSV column order. Every write emits all of them;
// readers of the file depend on this order never changing.
var Columns = []string{
	"entry_date",
	"project_code",
	"client_code",
	"project_name",
	"task_name",
	"task_id",
	"duration_minutes",
	"comment",
	"transcript_excerpt",
	"billing_classification",
	"start_time",
	"end_time",
	"ts",
}

// Writer appends timesheet entries to a single CSV file. A mutex
// serializes appends so concurrent requests cannot interleave rows.
type Writer struct {
	mu   sync.Mutex
	path string
}

// New creates a Writer for the given ledger path.
func New(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the ledger file path.
func (w *Writer) Path() string {
	return w.path
}

// Exists reports whether the ledger file holds any data.
func (w *Writer) Exists() bool {
	info, err := os.Stat(w.path)
	return err == nil && info.Size() > 0
}

// Append writes a batch of entries, emitting the header row only when
// the file is new or empty. Missing values default to the empty string.
func (w *Writer) Append(entries []model.TimesheetEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	needHeader := true
	if info, err := os.Stat(w.path); err == nil && info.Size() > 0 {
		needHeader = false
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if needHeader {
		if err := cw.Write(Columns); err != nil {
			return fmt.Errorf("failed to write ledger header: %w", err)
		}
	}

	for _, e := range entries {
		if err := cw.Write(row(e)); err != nil {
			return fmt.Errorf("failed to write ledger row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush ledger: %w", err)
	}
	return nil
}

// Clear removes the ledger file. A missing file is not an error.
func (w *Writer) Clear() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear ledger: %w", err)
	}
	return nil
}

func row(e model.TimesheetEntry) []string {
	return []string{
		e.EntryDate,
		e.ProjectCode,
		e.ClientCode,
		e.ProjectName,
		e.TaskName,
		e.TaskID,
		strconv.Itoa(int(e.DurationMinutes)),
		e.Comment,
		e.TranscriptExcerpt,
		deref(e.BillingClassification),
		deref(e.StartTime),
		deref(e.EndTime),
		e.TS,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
