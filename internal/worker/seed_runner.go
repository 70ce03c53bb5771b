package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/creditum/creditum/internal/adapter/seed"
	"github.com/creditum/creditum/internal/domain/repository"
)

// SeedRunner performs the one-time historical bulk load in the
// background after startup. The storage layer guarantees idempotency;
// the runner only reads the files and reports what happened.
type SeedRunner struct {
	source seed.Source
	seeds  repository.SeedRepository
	logger *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSeedRunner constructs the seed runner.
func NewSeedRunner(source seed.Source, seeds repository.SeedRepository, logger *slog.Logger) *SeedRunner {
	return &SeedRunner{source: source, seeds: seeds, logger: logger}
}

// Start launches the load in the background.
func (r *SeedRunner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(runCtx)
	}()
}

// Stop waits for an in-flight load to finish.
func (r *SeedRunner) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *SeedRunner) run(ctx context.Context) {
	customers, err := r.source.Customers()
	if err != nil {
		r.logger.Error("seed customers read failed", slog.String("error", err.Error()))
		return
	}
	if len(customers) > 0 {
		inserted, err := r.seeds.SeedCustomers(ctx, customers)
		if err != nil {
			r.logger.Error("seed customers failed", slog.String("error", err.Error()))
			return
		}
		r.logger.Info("customers seeded", slog.Int("read", len(customers)), slog.Int("inserted", inserted))
	}

	loans, err := r.source.Loans()
	if err != nil {
		r.logger.Error("seed loans read failed", slog.String("error", err.Error()))
		return
	}
	if len(loans) > 0 {
		inserted, err := r.seeds.SeedLoans(ctx, loans)
		if err != nil {
			r.logger.Error("seed loans failed", slog.String("error", err.Error()))
			return
		}
		r.logger.Info("loans seeded", slog.Int("read", len(loans)), slog.Int("inserted", inserted))
	}
}
