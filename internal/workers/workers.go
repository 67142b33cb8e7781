package workers

import (
	"context"
	"sync"

	"github.com/communication-ltd/portal/internal/config"
	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by cfg. A zero
// retention interval disables the retention worker, leaving an empty
// aggregate.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.RetentionInterval > 0 {
		w.workers = append(w.workers, newRetentionWorker(
			storages.SessionRepository,
			storages.ResetRepository,
			cfg.RetentionInterval,
			logger,
		))
	}

	return w
}

// Run starts every worker in its own goroutine and blocks until all of
// them return, which happens after ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}

	wg.Wait()
}
