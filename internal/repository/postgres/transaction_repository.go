package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"
)

// Ensure implementation satisfies interface at compile time
var _ repository.TransactionRepository = (*TransactionRepositoryImpl)(nil)

// TransactionRepositoryImpl is the PostgreSQL implementation of TransactionRepository
type TransactionRepositoryImpl struct {
	*TransactionManager
}

func NewTransactionRepository(pool *pgxpool.Pool) repository.TransactionRepository {
	return &TransactionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const transactionColumns = `id, transaction_id, user_id, type, amount, currency, status, description,
       balance_before, balance_after, payment_method, payment_provider, external_transaction_id,
       session_id, failure_reason, retry_count, max_retries, next_retry_at,
       is_reversible, reversed_at, reversed_by, reversal_reason,
       processed_at, created_at, updated_at`

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	trans := &model.Transaction{}
	err := row.Scan(&trans.ID, &trans.TransactionID, &trans.UserID, &trans.Type, &trans.Amount,
		&trans.Currency, &trans.Status, &trans.Description,
		&trans.BalanceBefore, &trans.BalanceAfter,
		&trans.PaymentMethod, &trans.PaymentProvider, &trans.ExternalTransactionID,
		&trans.SessionID, &trans.FailureReason,
		&trans.RetryCount, &trans.MaxRetries, &trans.NextRetryAt,
		&trans.IsReversible, &trans.ReversedAt, &trans.ReversedBy, &trans.ReversalReason,
		&trans.ProcessedAt, &trans.CreatedAt, &trans.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return trans, nil
}

// InsertTransaction creates a new transaction record
func (r *TransactionRepositoryImpl) InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error {
	query := `
        INSERT INTO transactions (transaction_id, user_id, type, amount, currency, status, description,
                                  balance_before, balance_after, payment_method, payment_provider,
                                  session_id, max_retries, is_reversible, processed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id, retry_count, created_at, updated_at`

	err := tx.QueryRow(ctx, query,
		trans.TransactionID, trans.UserID, trans.Type, trans.Amount, trans.Currency,
		trans.Status, trans.Description, trans.BalanceBefore, trans.BalanceAfter,
		trans.PaymentMethod, trans.PaymentProvider, trans.SessionID,
		trans.MaxRetries, trans.IsReversible, trans.ProcessedAt).
		Scan(&trans.ID, &trans.RetryCount, &trans.CreatedAt, &trans.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by its transaction ID
func (r *TransactionRepositoryImpl) GetTransaction(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`

	executor := r.getExecutor(tx...)
	trans, err := scanTransaction(executor.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return trans, nil
}

// GetTransactionForUpdate retrieves a transaction with a row lock
func (r *TransactionRepositoryImpl) GetTransactionForUpdate(ctx context.Context, transactionID string, tx pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 FOR UPDATE`

	trans, err := scanTransaction(tx.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction for update: %w", err)
	}
	return trans, nil
}

// ListTransactions retrieves paginated transactions newest first
func (r *TransactionRepositoryImpl) ListTransactions(ctx context.Context, filter model.TransactionFilter, limit, offset int) ([]*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []any{filter.UserID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		trans, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, trans)
	}
	return transactions, nil
}

// CompleteTransaction marks a pending transaction completed. The
// balance_before/balance_after pair is written exactly once here and is
// immutable afterwards.
func (r *TransactionRepositoryImpl) CompleteTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error {
	query := `
        UPDATE transactions
        SET status = $1,
            balance_before = $2,
            balance_after = $3,
            external_transaction_id = COALESCE(external_transaction_id, $4),
            processed_at = NOW(),
            updated_at = NOW()
        WHERE id = $5 AND status <> $1
        RETURNING external_transaction_id, processed_at, updated_at`

	err := tx.QueryRow(ctx, query, model.StatusCompleted, trans.BalanceBefore, trans.BalanceAfter,
		trans.ExternalTransactionID, trans.ID).
		Scan(&trans.ExternalTransactionID, &trans.ProcessedAt, &trans.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrInvalidState
		}
		return fmt.Errorf("failed to complete transaction: %w", err)
	}
	trans.Status = model.StatusCompleted
	return nil
}

// MarkFailed moves a transaction to failed with a reason
func (r *TransactionRepositoryImpl) MarkFailed(ctx context.Context, id int64, reason string, tx pgx.Tx) error {
	query := `
        UPDATE transactions
        SET status = $1, failure_reason = $2, processed_at = NOW(), updated_at = NOW()
        WHERE id = $3`

	if _, err := tx.Exec(ctx, query, model.StatusFailed, reason, id); err != nil {
		return fmt.Errorf("failed to mark transaction failed: %w", err)
	}
	return nil
}

// MarkCancelled moves a transaction to cancelled
func (r *TransactionRepositoryImpl) MarkCancelled(ctx context.Context, id int64, tx pgx.Tx) error {
	query := `
        UPDATE transactions
        SET status = $1, updated_at = NOW()
        WHERE id = $2`

	if _, err := tx.Exec(ctx, query, model.StatusCancelled, id); err != nil {
		return fmt.Errorf("failed to mark transaction cancelled: %w", err)
	}
	return nil
}

// MarkReversed cancels a transaction recording who and why. Amount and
// balance fields of the original are never touched.
func (r *TransactionRepositoryImpl) MarkReversed(ctx context.Context, id int64, reversedBy int64, reason string, tx pgx.Tx) error {
	query := `
        UPDATE transactions
        SET status = $1, reversed_at = NOW(), reversed_by = $2, reversal_reason = $3, updated_at = NOW()
        WHERE id = $4`

	if _, err := tx.Exec(ctx, query, model.StatusCancelled, reversedBy, reason, id); err != nil {
		return fmt.Errorf("failed to mark transaction reversed: %w", err)
	}
	return nil
}

// ScheduleRetry re-queues a failed transaction as pending
func (r *TransactionRepositoryImpl) ScheduleRetry(ctx context.Context, id int64, retryCount int, nextRetryAt time.Time, tx pgx.Tx) error {
	query := `
        UPDATE transactions
        SET status = $1, retry_count = $2, next_retry_at = $3, updated_at = NOW()
        WHERE id = $4 AND status = $5`

	commandTag, err := tx.Exec(ctx, query, model.StatusPending, retryCount, nextRetryAt, id, model.StatusFailed)
	if err != nil {
		return fmt.Errorf("failed to schedule retry: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrInvalidState
	}
	return nil
}

// GetRetryableDeposits lists failed deposits that still have retries
// left and whose backoff has elapsed
func (r *TransactionRepositoryImpl) GetRetryableDeposits(ctx context.Context, now time.Time, limit int) ([]*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
        FROM transactions
        WHERE type = $1 AND status = $2 AND retry_count < max_retries
          AND (next_retry_at IS NULL OR next_retry_at <= $3)
        ORDER BY created_at ASC
        LIMIT $4`

	rows, err := r.pool.Query(ctx, query, model.TypeDeposit, model.StatusFailed, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query retryable deposits: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		trans, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, trans)
	}
	return transactions, nil
}
