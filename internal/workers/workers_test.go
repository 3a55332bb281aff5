// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/mock"
	"github.com/MKhiriev/go-item-transfer/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockWorker counts Run calls and blocks until cancelled.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestWorkers_Run_Empty(t *testing.T) {
	(&Workers{}).Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	storages := &store.Storages{TransferRepository: mock.NewMockTransferRepository(gomock.NewController(t))}

	ws := NewWorkers(storages, config.StructuredConfig{}, logger.Nop())
	assert.Empty(t, ws.workers, "no expiry means nothing can be pruned")

	cfg := config.StructuredConfig{
		App:     config.App{TransferDuration: time.Hour},
		Workers: config.Workers{PruneInterval: time.Minute},
	}
	ws = NewWorkers(storages, cfg, logger.Nop())
	require.Len(t, ws.workers, 1)
	assert.IsType(t, &RedemptionPruner{}, ws.workers[0])
}

func TestRedemptionPruner_PrunesOlderThanRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	transfers := mock.NewMockTransferRepository(ctrl)

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	var (
		mu      sync.Mutex
		cutoffs []time.Time
	)
	transfers.EXPECT().PruneRedemptions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, before time.Time) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			cutoffs = append(cutoffs, before)
			return 2, nil
		}).MinTimes(2)

	p := NewRedemptionPruner(transfers, time.Hour, 10*time.Millisecond, logger.Nop())
	p.now = func() time.Time { return now }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(cutoffs) >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	for _, before := range cutoffs {
		assert.Equal(t, now.Add(-time.Hour), before)
	}
}

func TestRedemptionPruner_KeepsRunningAfterErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	transfers := mock.NewMockTransferRepository(ctrl)

	var calls atomic.Int32
	transfers.EXPECT().PruneRedemptions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			calls.Add(1)
			return 0, errors.New("database is locked")
		}).MinTimes(2)

	p := NewRedemptionPruner(transfers, time.Hour, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
