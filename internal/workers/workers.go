package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's background jobs. The redemption pruner is
// only started when transfer capabilities expire: without expiry any old
// capability can still be replayed, so its ledger row must stay.
func NewWorkers(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.App.TransferDuration > 0 {
		w.workers = append(w.workers, NewRedemptionPruner(
			storages.TransferRepository,
			cfg.App.TransferDuration,
			cfg.Workers.PruneInterval,
			logger,
		))
	} else {
		logger.Info().Msg("transfer capabilities never expire, redemption pruner disabled")
	}

	return w
}

// Run starts every worker and returns once all of them have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
