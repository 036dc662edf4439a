package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"
)

// Ensure implementation satisfies interface at compile time
var _ repository.AccountRepository = (*AccountRepositoryImpl)(nil)

// AccountRepositoryImpl is the PostgreSQL implementation of AccountRepository
type AccountRepositoryImpl struct {
	*TransactionManager
}

func NewAccountRepository(pool *pgxpool.Pool) repository.AccountRepository {
	return &AccountRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const accountColumns = `id, email, password_hash, balance, currency, is_verified, is_active, is_locked,
       games_played, total_wagered, total_won, version, created_at, updated_at`

func scanAccount(row pgx.Row) (*model.Account, error) {
	acct := &model.Account{}
	err := row.Scan(&acct.ID, &acct.Email, &acct.PasswordHash, &acct.Balance, &acct.Currency,
		&acct.IsVerified, &acct.IsActive, &acct.IsLocked,
		&acct.GamesPlayed, &acct.TotalWagered, &acct.TotalWon,
		&acct.Version, &acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return acct, nil
}

// CreateAccount inserts a new account
func (r *AccountRepositoryImpl) CreateAccount(ctx context.Context, acct *model.Account) error {
	query := `
        INSERT INTO accounts (email, password_hash, balance, currency, is_verified, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, games_played, total_wagered, total_won, version, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, acct.Email, acct.PasswordHash, acct.Balance, acct.Currency,
		acct.IsVerified, acct.IsActive).
		Scan(&acct.ID, &acct.GamesPlayed, &acct.TotalWagered, &acct.TotalWon,
			&acct.Version, &acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrEmailTaken
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetAccount retrieves an account by id
func (r *AccountRepositoryImpl) GetAccount(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	executor := r.getExecutor(tx...)
	acct, err := scanAccount(executor.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acct, nil
}

// GetAccountByEmail retrieves an account by email
func (r *AccountRepositoryImpl) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	acct, err := scanAccount(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return acct, nil
}

// GetAccountForUpdate retrieves an account with a row-level lock. NOWAIT
// keeps tail latency bounded under contention: a locked row surfaces as
// ErrStorageUnavailable and the caller may retry.
func (r *AccountRepositoryImpl) GetAccountForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE NOWAIT`

	acct, err := scanAccount(tx.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.LockNotAvailable {
			return nil, model.ErrStorageUnavailable
		}
		return nil, fmt.Errorf("failed to get account for update: %w", err)
	}
	return acct, nil
}

// GetBalance gets the current balance for an account
func (r *AccountRepositoryImpl) GetBalance(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error) {
	query := `SELECT balance FROM accounts WHERE id = $1`

	var balance decimal.Decimal
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, model.ErrAccountNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// UpdateBalance updates the account balance
func (r *AccountRepositoryImpl) UpdateBalance(ctx context.Context, userID int64, balance decimal.Decimal, tx pgx.Tx) error {
	query := `
        UPDATE accounts
        SET balance = $1, version = version + 1, updated_at = NOW()
        WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, balance, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		// CONSTRAINT balance_non_negative CHECK (balance >= 0)
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return model.ErrInsufficientBalance
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}

// RecordGamePlayed bumps the gaming aggregates on the account
func (r *AccountRepositoryImpl) RecordGamePlayed(ctx context.Context, userID int64, wagered, won decimal.Decimal, tx pgx.Tx) error {
	query := `
        UPDATE accounts
        SET games_played = games_played + 1,
            total_wagered = total_wagered + $1,
            total_won = total_won + $2,
            updated_at = NOW()
        WHERE id = $3`

	commandTag, err := tx.Exec(ctx, query, wagered, won, userID)
	if err != nil {
		return fmt.Errorf("failed to record game played: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}
