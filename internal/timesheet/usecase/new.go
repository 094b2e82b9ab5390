package usecase

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"voice-timesheet/internal/ledger"
	"voice-timesheet/internal/model"
	"voice-timesheet/internal/scratch"
	"voice-timesheet/internal/timesheet"
	"voice-timesheet/pkg/gemini"
	pkgLog "voice-timesheet/pkg/log"
)

// extractionCacheSize bounds the in-process cache of extraction results.
const extractionCacheSize = 128

type implUseCase struct {
	l           pkgLog.Logger
	llm         gemini.IGemini
	ledger      *ledger.Writer
	scratch     *scratch.Store
	catalogPath string
	cache       *lru.Cache[string, []model.TimesheetEntry]
	now         func() time.Time
}

var _ timesheet.UseCase = (*implUseCase)(nil)

// New creates a new timesheet UseCase instance.
func New(
	l pkgLog.Logger,
	llm gemini.IGemini,
	ledgerWriter *ledger.Writer,
	scratchStore *scratch.Store,
	catalogPath string,
) *implUseCase {
	cache, _ := lru.New[string, []model.TimesheetEntry](extractionCacheSize)

	return &implUseCase{
		l:           l,
		llm:         llm,
		ledger:      ledgerWriter,
		scratch:     scratchStore,
		catalogPath: catalogPath,
		cache:       cache,
		now:         time.Now,
	}
}
