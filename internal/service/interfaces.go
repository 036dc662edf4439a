package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"casino-ledger/internal/gateway"
	"casino-ledger/internal/model"
)

// SettlementService is the only writer of account balances. Every
// operation applies the balance delta and the justifying transaction
// record as one database transaction.
type SettlementService interface {
	// Debit atomically subtracts amount from the account and records a
	// completed transaction
	Debit(ctx context.Context, userID int64, amount decimal.Decimal, p model.SettlementParams) (*model.Transaction, error)

	// Credit atomically adds amount to the account and records a
	// completed transaction
	Credit(ctx context.Context, userID int64, amount decimal.Decimal, p model.SettlementParams) (*model.Transaction, error)

	// ApplyDebit is Debit scoped to an already-open database transaction
	ApplyDebit(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal, p model.SettlementParams) (*model.Transaction, error)

	// ApplyCredit is Credit scoped to an already-open database transaction
	ApplyCredit(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal, p model.SettlementParams) (*model.Transaction, error)

	// CreatePending records a transaction that does not touch the
	// balance yet (deposits awaiting the gateway)
	CreatePending(ctx context.Context, userID int64, amount decimal.Decimal, p model.SettlementParams) (*model.Transaction, error)

	// SettleDeposit completes a pending deposit: credits the balance and
	// stamps the external reference. No-op when already terminal.
	SettleDeposit(ctx context.Context, transactionID string, externalRef string) (*model.Transaction, error)

	// FailTransaction moves a non-terminal transaction to failed without
	// touching the balance
	FailTransaction(ctx context.Context, transactionID string, reason string) (*model.Transaction, error)

	// CancelTransaction moves a non-terminal transaction to cancelled
	CancelTransaction(ctx context.Context, transactionID string) (*model.Transaction, error)

	// Reverse cancels a reversible transaction recording who and why;
	// when the original was completed a compensating transaction
	// restores the balance in the same atomic scope
	Reverse(ctx context.Context, transactionID string, actorID int64, reason string) (*model.Transaction, error)

	// Retry re-queues a failed transaction as pending with exponential
	// backoff
	Retry(ctx context.Context, transactionID string) (*model.Transaction, error)

	// GetBalance returns the current balance for an account
	GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error)

	// ListTransactions returns paginated ledger entries
	ListTransactions(ctx context.Context, filter model.TransactionFilter, limit, offset int) ([]*model.Transaction, error)

	// GetTransaction returns one ledger entry by transaction id
	GetTransaction(ctx context.Context, transactionID string) (*model.Transaction, error)
}

// SessionService drives the game session state machine and requests
// debits/credits from the settlement engine.
type SessionService interface {
	StartSession(ctx context.Context, userID int64, req *model.StartSessionRequest) (*model.SessionResponse, error)
	CompleteSession(ctx context.Context, userID int64, req *model.CompleteSessionRequest) (*model.SessionResponse, error)
	AbandonSession(ctx context.Context, userID int64, sessionID string) (*model.GameSession, error)
	GetSession(ctx context.Context, userID int64, sessionID string) (*model.GameSession, error)
	ListSessions(ctx context.Context, userID int64, gameType model.GameType, limit, offset int) ([]*model.GameSession, error)
	Catalog() []model.GameInfo
}

// PaymentService reconciles external gateway events with the ledger.
type PaymentService interface {
	InitiateDeposit(ctx context.Context, acct *model.Account, req *model.DepositRequest) (*model.DepositResponse, error)
	HandleNotification(ctx context.Context, n *gateway.Notification) (*model.Transaction, error)
}

// AccountService handles registration and login.
type AccountService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	GetAccount(ctx context.Context, userID int64) (*model.Account, error)
}

// RetryService re-queues failed deposits whose backoff has elapsed.
type RetryService interface {
	ProcessDueRetries(ctx context.Context) error
}
