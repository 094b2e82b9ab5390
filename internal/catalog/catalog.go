package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"voice-timesheet/internal/model"
)

var (
	ErrNotFound = errors.New("knowledge base file not found")
	ErrInvalid  = errors.New("knowledge base has no projects section")
)

// Load reads the knowledge base from disk. It is called per request so
// catalog edits take effect without a restart.
func Load(path string) (model.KnowledgeBase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.KnowledgeBase{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return model.KnowledgeBase{}, fmt.Errorf("failed to read knowledge base: %w", err)
	}

	var kb model.KnowledgeBase
	if err := json.Unmarshal(raw, &kb); err != nil {
		return model.KnowledgeBase{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if len(kb.Projects) == 0 {
		return model.KnowledgeBase{}, ErrInvalid
	}

	return kb, nil
}
