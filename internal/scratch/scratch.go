package scratch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"voice-timesheet/pkg/log"
	"voice-timesheet/pkg/retry"
)

// Prefix marks temporary audio files so the startup sweep can find them.
const Prefix = "temp_audio_"

const (
	removeAttempts = 3
	removeDelay    = 200 * time.Millisecond
)

// Store manages temporary audio files inside a dedicated scratch directory.
type Store struct {
	dir string
	l   log.Logger
}

// New creates the scratch directory if needed and returns a Store.
func New(dir string, l log.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scratch dir: %w", err)
	}
	return &Store{dir: dir, l: l}, nil
}

// Save streams src into a uniquely named file and returns its path.
// Names combine a nanosecond timestamp with a UUID so concurrent
// uploads cannot collide.
func (s *Store) Save(src io.Reader, ext string) (string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	name := fmt.Sprintf("%s%d_%s%s", Prefix, time.Now().UnixNano(), uuid.NewString(), ext)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create temp audio file: %w", err)
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write temp audio file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close temp audio file: %w", err)
	}

	return path, nil
}

// Remove deletes a temp file with a bounded retry budget, tolerating a
// file still being flushed or locked by the OS. A file that survives
// the budget is left for the next startup sweep.
func (s *Store) Remove(ctx context.Context, path string) {
	err := retry.Do(removeAttempts, removeDelay, func() error {
		err := os.Remove(path)
		if err == nil || os.IsNotExist(err) {
			return nil
		}
		return err
	})
	if err != nil {
		s.l.Warnf(ctx, "scratch: could not remove %s, leaving for startup sweep: %v", path, err)
	}
}

// Sweep deletes leftover temp audio files from previous runs. Individual
// deletion failures are logged and ignored.
func (s *Store) Sweep(ctx context.Context) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.l.Warnf(ctx, "scratch: sweep could not read %s: %v", s.dir, err)
		return
	}

	swept := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), Prefix) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			s.l.Warnf(ctx, "scratch: sweep failed to remove %s: %v", e.Name(), err)
			continue
		}
		swept++
	}

	if swept > 0 {
		s.l.Infof(ctx, "scratch: swept %d leftover temp audio file(s)", swept)
	}
}
