package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the ledger view of a user: the balance plus the flags the
// settlement core needs. Balance is only ever written by the settlement
// engine under a row lock.
type Account struct {
	ID           int64           `json:"id"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Balance      decimal.Decimal `json:"balance"`
	Currency     string          `json:"currency"`
	IsVerified   bool            `json:"is_verified"`
	IsActive     bool            `json:"is_active"`
	IsLocked     bool            `json:"is_locked"`
	GamesPlayed  int64           `json:"games_played"`
	TotalWagered decimal.Decimal `json:"total_wagered"`
	TotalWon     decimal.Decimal `json:"total_won"`
	Version      int             `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type Transaction struct {
	ID            int64             `json:"id"`
	TransactionID string            `json:"transaction_id"`
	UserID        int64             `json:"user_id"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	Status        TransactionStatus `json:"status"`
	Description   string            `json:"description,omitempty"`
	BalanceBefore decimal.Decimal   `json:"balance_before"`
	BalanceAfter  decimal.Decimal   `json:"balance_after"`

	PaymentMethod         PaymentMethod `json:"payment_method,omitempty"`
	PaymentProvider       string        `json:"payment_provider,omitempty"`
	ExternalTransactionID *string       `json:"external_transaction_id,omitempty"`

	SessionID     *string `json:"session_id,omitempty"`
	FailureReason *string `json:"failure_reason,omitempty"`

	RetryCount  int        `json:"retry_count"`
	MaxRetries  int        `json:"max_retries"`
	NextRetryAt *time.Time `json:"next_retry_at,omitempty"`

	IsReversible   bool       `json:"is_reversible"`
	ReversedAt     *time.Time `json:"reversed_at,omitempty"`
	ReversedBy     *int64     `json:"reversed_by,omitempty"`
	ReversalReason *string    `json:"reversal_reason,omitempty"`

	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type GameSession struct {
	ID        int64           `json:"id"`
	SessionID string          `json:"session_id"`
	UserID    int64           `json:"user_id"`
	GameType  GameType        `json:"game_type"`
	GameName  string          `json:"game_name"`
	BetAmount decimal.Decimal `json:"bet_amount"`
	WinAmount decimal.Decimal `json:"win_amount"`
	State     SessionState    `json:"state"`
	IsDemo    bool            `json:"is_demo"`
	Currency  string          `json:"currency"`

	// Transaction linkage by id, not ownership: a session may outlive
	// or be queried independently of its transactions.
	BetTransactionID *string `json:"bet_transaction_id,omitempty"`
	WinTransactionID *string `json:"win_transaction_id,omitempty"`

	Result *GameResult `json:"result,omitempty"`

	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Duration  int64      `json:"duration,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ProfitLoss is winAmount - betAmount for a completed session.
func (s *GameSession) ProfitLoss() decimal.Decimal {
	return s.WinAmount.Sub(s.BetAmount)
}

// TransactionFilter narrows ListTransactions.
type TransactionFilter struct {
	UserID int64
	Type   TransactionType
	Status TransactionStatus
}

// SettlementParams describes the ledger entry a debit or credit writes.
// TransactionID doubles as the idempotency key: retries with the same id
// return the already-settled transaction instead of settling twice.
type SettlementParams struct {
	TransactionID string
	Type          TransactionType
	Description   string
	Method        PaymentMethod
	Provider      string
	SessionID     *string
	IsReversible  bool
}

// --- request / response types ---

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token   string   `json:"token"`
	Account *Account `json:"account"`
}

type StartSessionRequest struct {
	GameID    string `json:"game_id" binding:"required" example:"royal-slots"`
	GameType  string `json:"game_type" binding:"required" example:"slots"`
	BetAmount string `json:"bet_amount" binding:"required" example:"25.00"`
	IsDemo    bool   `json:"is_demo"`
}

type CompleteSessionRequest struct {
	SessionID string      `json:"session_id" binding:"required"`
	WinAmount string      `json:"win_amount" binding:"required" example:"30.00"`
	Result    *GameResult `json:"result" binding:"required"`
}

type SessionResponse struct {
	Session *GameSession `json:"session"`
	Balance string       `json:"balance"`
}

type DepositRequest struct {
	Amount        string `json:"amount" binding:"required" example:"100.00"`
	PaymentMethod string `json:"payment_method" binding:"omitempty" example:"ssl_commerce"`
	Currency      string `json:"currency" binding:"omitempty,len=3"`
}

type DepositResponse struct {
	TransactionID string            `json:"transaction_id"`
	PaymentURL    string            `json:"payment_url"`
	PaymentData   map[string]string `json:"payment_data"`
}

type BalanceResponse struct {
	UserID   int64  `json:"user_id" example:"1"`
	Balance  string `json:"balance" example:"100.50"`
	Currency string `json:"currency" example:"USD"`
}

type TransactionResponse struct {
	Status      string       `json:"status" example:"success"`
	Balance     string       `json:"balance" example:"110.15"`
	Transaction *Transaction `json:"transaction,omitempty"`
	Message     string       `json:"message,omitempty"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

type SessionListResponse struct {
	Sessions []*GameSession `json:"sessions"`
	Total    int            `json:"total"`
	Limit    int            `json:"limit"`
	Offset   int            `json:"offset"`
}

type ReverseRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient balance"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_BALANCE"`
	Details string `json:"details,omitempty"`
}

// GameInfo is a catalog entry; bounds come from betting config.
type GameInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        GameType `json:"type"`
	Description string   `json:"description"`
	MinBet      string   `json:"min_bet"`
	MaxBet      string   `json:"max_bet"`
	RTP         float64  `json:"rtp"`
	Demo        bool     `json:"demo"`
}
