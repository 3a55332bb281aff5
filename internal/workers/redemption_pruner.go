// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/metrics"
	"github.com/MKhiriev/go-item-transfer/internal/store"
)

// RedemptionPruner deletes ledger rows of capabilities that have expired.
// A row older than the capability lifetime can never match a redeemable
// capability again.
type RedemptionPruner struct {
	transfers store.TransferRepository
	retention time.Duration
	interval  time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func NewRedemptionPruner(transfers store.TransferRepository, retention, interval time.Duration, logger *logger.Logger) *RedemptionPruner {
	return &RedemptionPruner{
		transfers: transfers,
		retention: retention,
		interval:  interval,
		now:       time.Now,
		logger:    logger,
	}
}

// Run prunes once at start and then every interval until ctx is cancelled.
func (p *RedemptionPruner) Run(ctx context.Context) {
	log := p.logger.With().Str("func", "*RedemptionPruner.Run").Logger()
	log.Info().Dur("interval", p.interval).Dur("retention", p.retention).Msg("redemption pruner started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.prune(ctx)

		select {
		case <-ctx.Done():
			log.Info().Msg("redemption pruner stopped")
			return
		case <-ticker.C:
		}
	}
}

func (p *RedemptionPruner) prune(ctx context.Context) {
	before := p.now().Add(-p.retention)

	n, err := p.transfers.PruneRedemptions(ctx, before)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Err(err).Time("before", before).Msg("error pruning redemptions")
		}
		return
	}

	metrics.RecordPruned(n)
	if n > 0 {
		p.logger.Info().Int64("pruned", n).Time("before", before).Msg("pruned expired redemptions")
	}
}
