package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"casino-ledger/internal/model"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// AccountRepository defines operations for account/balance management
type AccountRepository interface {
	// CreateAccount inserts a new account
	CreateAccount(ctx context.Context, acct *model.Account) error

	// GetAccount retrieves an account by id (read-only)
	GetAccount(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Account, error)

	// GetAccountByEmail retrieves an account by email for login
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)

	// GetAccountForUpdate retrieves an account with a row-level lock
	// (must be in a transaction). The lock is taken NOWAIT so that a
	// contended account fails fast with ErrStorageUnavailable.
	GetAccountForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Account, error)

	// GetBalance retrieves the current balance for an account (read-only)
	GetBalance(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error)

	// UpdateBalance updates the account balance
	UpdateBalance(ctx context.Context, userID int64, balance decimal.Decimal, tx pgx.Tx) error

	// RecordGamePlayed bumps the gaming aggregates on the account
	RecordGamePlayed(ctx context.Context, userID int64, wagered, won decimal.Decimal, tx pgx.Tx) error
}

// TransactionRepository defines operations for the append-only ledger
type TransactionRepository interface {
	// InsertTransaction creates a new transaction record. A duplicate
	// transaction_id returns model.ErrDuplicateTransaction.
	InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error

	// GetTransaction retrieves a transaction by its transaction ID
	GetTransaction(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.Transaction, error)

	// GetTransactionForUpdate retrieves a transaction with a row lock
	GetTransactionForUpdate(ctx context.Context, transactionID string, tx pgx.Tx) (*model.Transaction, error)

	// ListTransactions retrieves paginated transactions newest first
	ListTransactions(ctx context.Context, filter model.TransactionFilter, limit, offset int) ([]*model.Transaction, error)

	// CompleteTransaction marks a pending transaction completed and
	// freezes its balance_before/balance_after pair
	CompleteTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error

	// MarkFailed moves a transaction to failed with a reason
	MarkFailed(ctx context.Context, id int64, reason string, tx pgx.Tx) error

	// MarkCancelled moves a transaction to cancelled
	MarkCancelled(ctx context.Context, id int64, tx pgx.Tx) error

	// MarkReversed cancels a transaction recording who and why
	MarkReversed(ctx context.Context, id int64, reversedBy int64, reason string, tx pgx.Tx) error

	// ScheduleRetry re-queues a failed transaction as pending
	ScheduleRetry(ctx context.Context, id int64, retryCount int, nextRetryAt time.Time, tx pgx.Tx) error

	// GetRetryableDeposits lists failed deposits due for a retry
	GetRetryableDeposits(ctx context.Context, now time.Time, limit int) ([]*model.Transaction, error)
}

// SessionRepository defines operations for game sessions
type SessionRepository interface {
	// InsertSession creates a new game session
	InsertSession(ctx context.Context, sess *model.GameSession, tx pgx.Tx) error

	// GetSession retrieves a session by (session_id, user_id)
	GetSession(ctx context.Context, sessionID string, userID int64, tx ...pgx.Tx) (*model.GameSession, error)

	// GetSessionForUpdate retrieves a session with a row lock
	GetSessionForUpdate(ctx context.Context, sessionID string, userID int64, tx pgx.Tx) (*model.GameSession, error)

	// CompleteSession persists the terminal completed state
	CompleteSession(ctx context.Context, sess *model.GameSession, tx pgx.Tx) error

	// CancelSessionIfActive cancels a session if it is still active
	CancelSessionIfActive(ctx context.Context, id int64, endTime time.Time, tx pgx.Tx) (bool, error)

	// ListSessions retrieves paginated sessions for a user newest first
	ListSessions(ctx context.Context, userID int64, gameType model.GameType, limit, offset int) ([]*model.GameSession, error)
}
