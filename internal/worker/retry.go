package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"casino-ledger/internal/service"
)

// RetryWorker periodically sweeps failed deposits whose retry backoff
// has elapsed and re-queues them.
type RetryWorker struct {
	service  service.RetryService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewRetryWorker(svc service.RetryService, interval time.Duration, logger zerolog.Logger) *RetryWorker {
	return &RetryWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *RetryWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Retry worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running deposit retry sweep")
				err := w.service.ProcessDueRetries(ctx)
				if err != nil {
					w.logger.Error().Err(err).Msg("Failed to run deposit retry sweep")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Retry worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Retry worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *RetryWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
