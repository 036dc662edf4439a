package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"casino-ledger/internal/metrics"
	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"
)

type RetryServiceImpl struct {
	transactionRepo repository.TransactionRepository
	settlement      SettlementService
	metrics         *metrics.Metrics
	batchSize       int
	logger          zerolog.Logger
}

func NewRetryService(
	transactionRepo repository.TransactionRepository,
	settlement SettlementService,
	m *metrics.Metrics,
	batchSize int,
	logger zerolog.Logger,
) *RetryServiceImpl {
	return &RetryServiceImpl{
		transactionRepo: transactionRepo,
		settlement:      settlement,
		metrics:         m,
		batchSize:       batchSize,
		logger:          logger,
	}
}

var _ RetryService = (*RetryServiceImpl)(nil)

// ProcessDueRetries re-queues failed deposits whose backoff has elapsed.
// Each transaction is retried independently so one bad row cannot stall
// the batch.
func (s *RetryServiceImpl) ProcessDueRetries(ctx context.Context) error {
	now := time.Now()

	transactions, err := s.transactionRepo.GetRetryableDeposits(ctx, now, s.batchSize)
	if err != nil {
		return fmt.Errorf("get retryable deposits: %w", err)
	}

	if len(transactions) == 0 {
		s.logger.Debug().Msg("no failed deposits due for retry")
		s.metrics.ObserveRetryRun(0, now.Unix())
		return nil
	}

	var queued int
	for _, trans := range transactions {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		requeued, err := s.settlement.Retry(ctx, trans.TransactionID)
		if err != nil {
			if errors.Is(err, model.ErrMaxRetriesExceeded) || errors.Is(err, model.ErrInvalidState) {
				s.logger.Debug().
					Str("transaction_id", trans.TransactionID).
					Msg("deposit no longer retryable, skipping")
				continue
			}
			s.logger.Error().
				Err(err).
				Str("transaction_id", trans.TransactionID).
				Msg("failed to re-queue deposit")
			continue
		}

		queued++
		s.logger.Info().
			Str("transaction_id", requeued.TransactionID).
			Int("retry_count", requeued.RetryCount).
			Time("next_retry_at", derefTime(requeued.NextRetryAt)).
			Msg("failed deposit re-queued")
	}

	s.metrics.ObserveRetryRun(queued, now.Unix())
	s.logger.Info().
		Int("candidates", len(transactions)).
		Int("queued", queued).
		Msg("deposit retry sweep completed")

	return nil
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
