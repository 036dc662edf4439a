package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"casino-ledger/internal/cache"
	"casino-ledger/internal/metrics"
	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"
)

// rollback and re-read outside tx when two requests race on the same id
var errDuplicateInsertRace = errors.New("duplicate transaction insert race")

type SettlementServiceImpl struct {
	accountRepo     repository.AccountRepository
	transactionRepo repository.TransactionRepository
	dbManager       repository.DBManager
	balanceCache    cache.BalanceCache
	metrics         *metrics.Metrics
	logger          zerolog.Logger
}

func NewSettlementService(
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	dbManager repository.DBManager,
	balanceCache cache.BalanceCache,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		dbManager:       dbManager,
		balanceCache:    balanceCache,
		metrics:         m,
		logger:          logger,
	}
}

var _ SettlementService = (*SettlementServiceImpl)(nil)

// NewTransactionID mints an externally shareable transaction id.
func NewTransactionID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

func (s *SettlementServiceImpl) Debit(ctx context.Context, userID int64, amount decimal.Decimal, p model.SettlementParams) (*model.Transaction, error) {
	return s.settle(ctx, userID, amount, p, false)
}

func (s *SettlementServiceImpl) Credit(ctx context.Context, userID int64, amount decimal.Decimal, p model.SettlementParams) (*model.Transaction, error) {
	return s.settle(ctx, userID, amount, p, true)
}

// settle runs one atomic balance mutation + ledger write. Retries keyed
// by the same transaction id return the already-settled record.
func (s *SettlementServiceImpl) settle(ctx context.Context, userID int64, amount decimal.Decimal, p model.SettlementParams, credit bool) (*model.Transaction, error) {
	var result *model.Transaction

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		if credit {
			result, err = s.ApplyCredit(ctx, tx, userID, amount, p)
		} else {
			result, err = s.ApplyDebit(ctx, tx, userID, amount, p)
		}
		return err
	})

	// Another request inserted the same transaction_id first; it is the
	// same logical settlement, so surface its outcome.
	if errors.Is(err, errDuplicateInsertRace) {
		existing, getErr := s.transactionRepo.GetTransaction(ctx, p.TransactionID)
		if getErr != nil {
			return nil, fmt.Errorf("get transaction after duplicate: %w", getErr)
		}
		if existing.UserID != userID {
			return nil, fmt.Errorf("%w: transaction %s already exists for user %d, requested for user %d",
				model.ErrDuplicateTransaction, p.TransactionID, existing.UserID, userID)
		}
		return existing, nil
	}

	if err != nil {
		s.observe(p.Type, "error", amount)
		return nil, err
	}

	s.balanceCache.Invalidate(ctx, userID)
	s.observe(p.Type, "success", amount)
	return result, nil
}

// ApplyDebit subtracts amount under the account row lock and records the
// completed transaction on the supplied database transaction.
func (s *SettlementServiceImpl) ApplyDebit(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal, p model.SettlementParams) (*model.Transaction, error) {
	return s.apply(ctx, tx, userID, amount, p, false)
}

// ApplyCredit adds amount under the account row lock and records the
// completed transaction on the supplied database transaction.
func (s *SettlementServiceImpl) ApplyCredit(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal, p model.SettlementParams) (*model.Transaction, error) {
	return s.apply(ctx, tx, userID, amount, p, true)
}

func (s *SettlementServiceImpl) apply(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal, p model.SettlementParams, credit bool) (*model.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}
	if p.TransactionID == "" {
		return nil, fmt.Errorf("%w: transaction id required", model.ErrInvalidAmount)
	}

	// Idempotency fence: a settlement keyed by an id we have already
	// recorded is a retry, not a new operation.
	existing, err := s.transactionRepo.GetTransaction(ctx, p.TransactionID, tx)
	if err != nil && !errors.Is(err, model.ErrTransactionNotFound) {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if existing != nil {
		if existing.UserID != userID {
			return nil, fmt.Errorf("%w: transaction %s already exists for user %d, requested for user %d",
				model.ErrDuplicateTransaction, p.TransactionID, existing.UserID, userID)
		}
		s.logger.Info().Str("transaction_id", p.TransactionID).Int64("user_id", userID).
			Msg("settlement already recorded")
		return existing, nil
	}

	acct, err := s.accountRepo.GetAccountForUpdate(ctx, userID, tx)
	if err != nil {
		return nil, fmt.Errorf("get account for update: %w", err)
	}

	balanceBefore := acct.Balance
	var balanceAfter decimal.Decimal
	if credit {
		balanceAfter = balanceBefore.Add(amount)
	} else {
		if amount.GreaterThan(balanceBefore) {
			return nil, model.ErrInsufficientBalance
		}
		balanceAfter = balanceBefore.Sub(amount)
	}

	if err := s.accountRepo.UpdateBalance(ctx, userID, balanceAfter, tx); err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}

	now := time.Now()
	trans := &model.Transaction{
		TransactionID:   p.TransactionID,
		UserID:          userID,
		Type:            p.Type,
		Amount:          amount,
		Currency:        acct.Currency,
		Status:          model.StatusCompleted,
		Description:     p.Description,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    balanceAfter,
		PaymentMethod:   p.Method,
		PaymentProvider: p.Provider,
		SessionID:       p.SessionID,
		MaxRetries:      3,
		IsReversible:    p.IsReversible,
		ProcessedAt:     &now,
	}

	if err := s.transactionRepo.InsertTransaction(ctx, trans, tx); err != nil {
		if errors.Is(err, model.ErrDuplicateTransaction) {
			return nil, errDuplicateInsertRace
		}
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	s.logger.Info().
		Str("transaction_id", trans.TransactionID).
		Int64("user_id", userID).
		Str("type", p.Type.String()).
		Str("amount", amount.StringFixed(2)).
		Str("new_balance", balanceAfter.StringFixed(2)).
		Msg("settlement applied")

	return trans, nil
}

// CreatePending records a deposit awaiting the gateway. The balance is
// untouched: balance_before == balance_after until settlement.
func (s *SettlementServiceImpl) CreatePending(ctx context.Context, userID int64, amount decimal.Decimal, p model.SettlementParams) (*model.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}

	var trans *model.Transaction
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		acct, err := s.accountRepo.GetAccount(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}

		trans = &model.Transaction{
			TransactionID:   p.TransactionID,
			UserID:          userID,
			Type:            p.Type,
			Amount:          amount,
			Currency:        acct.Currency,
			Status:          model.StatusPending,
			Description:     p.Description,
			BalanceBefore:   acct.Balance,
			BalanceAfter:    acct.Balance,
			PaymentMethod:   p.Method,
			PaymentProvider: p.Provider,
			MaxRetries:      3,
			IsReversible:    p.IsReversible,
		}
		if err := s.transactionRepo.InsertTransaction(ctx, trans, tx); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trans, nil
}

// SettleDeposit completes a pending deposit. Replayed gateway
// notifications find a terminal record and return it unchanged.
func (s *SettlementServiceImpl) SettleDeposit(ctx context.Context, transactionID string, externalRef string) (*model.Transaction, error) {
	var result *model.Transaction

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trans, err := s.transactionRepo.GetTransactionForUpdate(ctx, transactionID, tx)
		if err != nil {
			return fmt.Errorf("get transaction for update: %w", err)
		}

		if trans.Status.IsTerminal() {
			s.logger.Info().Str("transaction_id", transactionID).Str("status", string(trans.Status)).
				Msg("deposit already terminal, notification ignored")
			result = trans
			return nil
		}

		acct, err := s.accountRepo.GetAccountForUpdate(ctx, trans.UserID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}

		trans.BalanceBefore = acct.Balance
		trans.BalanceAfter = acct.Balance.Add(trans.Amount)
		if externalRef != "" {
			trans.ExternalTransactionID = &externalRef
		}

		if err := s.accountRepo.UpdateBalance(ctx, trans.UserID, trans.BalanceAfter, tx); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		if err := s.transactionRepo.CompleteTransaction(ctx, trans, tx); err != nil {
			return fmt.Errorf("complete transaction: %w", err)
		}

		s.logger.Info().
			Str("transaction_id", trans.TransactionID).
			Int64("user_id", trans.UserID).
			Str("amount", trans.Amount.StringFixed(2)).
			Str("new_balance", trans.BalanceAfter.StringFixed(2)).
			Msg("deposit settled")

		result = trans
		return nil
	})
	if err != nil {
		s.observe(model.TypeDeposit, "error", decimal.Zero)
		return nil, err
	}

	s.balanceCache.Invalidate(ctx, result.UserID)
	s.observe(model.TypeDeposit, "success", result.Amount)
	return result, nil
}

// FailTransaction records a gateway failure. No balance change; no-op
// when already terminal.
func (s *SettlementServiceImpl) FailTransaction(ctx context.Context, transactionID string, reason string) (*model.Transaction, error) {
	return s.transition(ctx, transactionID, func(trans *model.Transaction, tx pgx.Tx) error {
		if err := s.transactionRepo.MarkFailed(ctx, trans.ID, reason, tx); err != nil {
			return err
		}
		trans.Status = model.StatusFailed
		trans.FailureReason = &reason
		return nil
	})
}

// CancelTransaction records a gateway cancellation.
func (s *SettlementServiceImpl) CancelTransaction(ctx context.Context, transactionID string) (*model.Transaction, error) {
	return s.transition(ctx, transactionID, func(trans *model.Transaction, tx pgx.Tx) error {
		if err := s.transactionRepo.MarkCancelled(ctx, trans.ID, tx); err != nil {
			return err
		}
		trans.Status = model.StatusCancelled
		return nil
	})
}

func (s *SettlementServiceImpl) transition(ctx context.Context, transactionID string, fn func(*model.Transaction, pgx.Tx) error) (*model.Transaction, error) {
	var result *model.Transaction

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trans, err := s.transactionRepo.GetTransactionForUpdate(ctx, transactionID, tx)
		if err != nil {
			return fmt.Errorf("get transaction for update: %w", err)
		}

		if trans.Status.IsTerminal() {
			result = trans
			return nil
		}

		if err := fn(trans, tx); err != nil {
			return err
		}
		result = trans
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Reverse cancels a reversible transaction. A completed original gets a
// compensating transaction in the same atomic scope so the ledger keeps
// justifying the balance; the original's amount fields are untouched.
func (s *SettlementServiceImpl) Reverse(ctx context.Context, transactionID string, actorID int64, reason string) (*model.Transaction, error) {
	var result *model.Transaction

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trans, err := s.transactionRepo.GetTransactionForUpdate(ctx, transactionID, tx)
		if err != nil {
			return fmt.Errorf("get transaction for update: %w", err)
		}

		// Only the owner may reverse; a foreign id reads as not found.
		if trans.UserID != actorID {
			return model.ErrTransactionNotFound
		}

		if !trans.IsReversible {
			return model.ErrNotReversible
		}
		if trans.Status == model.StatusCancelled || trans.Status == model.StatusFailed {
			return model.ErrAlreadyTerminal
		}

		wasCompleted := trans.Status == model.StatusCompleted

		if err := s.transactionRepo.MarkReversed(ctx, trans.ID, actorID, reason, tx); err != nil {
			return err
		}

		if wasCompleted {
			// Compensate: a reversed credit is clawed back as a fee, a
			// reversed debit is returned as a refund.
			compType := model.TypeRefund
			credit := true
			if trans.Type.IsCredit() {
				compType = model.TypeFee
				credit = false
			}
			comp := model.SettlementParams{
				TransactionID: NewTransactionID("RVS"),
				Type:          compType,
				Description:   fmt.Sprintf("Reversal of %s: %s", trans.TransactionID, reason),
				Method:        model.MethodCasinoBalance,
			}
			if _, err := s.apply(ctx, tx, trans.UserID, trans.Amount, comp, credit); err != nil {
				return fmt.Errorf("compensating settlement: %w", err)
			}
		}

		now := time.Now()
		trans.Status = model.StatusCancelled
		trans.ReversedAt = &now
		trans.ReversedBy = &actorID
		trans.ReversalReason = &reason

		s.logger.Info().
			Str("transaction_id", trans.TransactionID).
			Int64("user_id", trans.UserID).
			Int64("reversed_by", actorID).
			Bool("compensated", wasCompleted).
			Msg("transaction reversed")

		result = trans
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.balanceCache.Invalidate(ctx, result.UserID)
	return result, nil
}

// Retry re-queues a failed transaction as pending with exponential
// backoff: nextRetryAt = now + 2^retryCount hours.
func (s *SettlementServiceImpl) Retry(ctx context.Context, transactionID string) (*model.Transaction, error) {
	var result *model.Transaction

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trans, err := s.transactionRepo.GetTransactionForUpdate(ctx, transactionID, tx)
		if err != nil {
			return fmt.Errorf("get transaction for update: %w", err)
		}

		if trans.Status != model.StatusFailed {
			return fmt.Errorf("%w: retry requires a failed transaction, got %s", model.ErrInvalidState, trans.Status)
		}
		if trans.RetryCount >= trans.MaxRetries {
			return model.ErrMaxRetriesExceeded
		}

		retryCount := trans.RetryCount + 1
		nextRetryAt := time.Now().Add(time.Duration(1<<uint(retryCount)) * time.Hour)

		if err := s.transactionRepo.ScheduleRetry(ctx, trans.ID, retryCount, nextRetryAt, tx); err != nil {
			return err
		}

		trans.Status = model.StatusPending
		trans.RetryCount = retryCount
		trans.NextRetryAt = &nextRetryAt

		s.logger.Info().
			Str("transaction_id", trans.TransactionID).
			Int("retry_count", retryCount).
			Time("next_retry_at", nextRetryAt).
			Msg("transaction re-queued for retry")

		result = trans
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SettlementServiceImpl) GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error) {
	if resp, ok := s.balanceCache.Get(ctx, userID); ok {
		return resp, nil
	}

	acct, err := s.accountRepo.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	resp := &model.BalanceResponse{
		UserID:   userID,
		Balance:  acct.Balance.StringFixed(2),
		Currency: acct.Currency,
	}
	s.balanceCache.Set(ctx, userID, resp)
	return resp, nil
}

func (s *SettlementServiceImpl) ListTransactions(ctx context.Context, filter model.TransactionFilter, limit, offset int) ([]*model.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

func (s *SettlementServiceImpl) GetTransaction(ctx context.Context, transactionID string) (*model.Transaction, error) {
	trans, err := s.transactionRepo.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return trans, nil
}

func (s *SettlementServiceImpl) observe(txType model.TransactionType, result string, amount decimal.Decimal) {
	f, _ := amount.Float64()
	s.metrics.ObserveSettlement(txType.String(), result, f)
}
