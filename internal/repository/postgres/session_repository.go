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
var _ repository.SessionRepository = (*SessionRepositoryImpl)(nil)

// SessionRepositoryImpl is the PostgreSQL implementation of SessionRepository
type SessionRepositoryImpl struct {
	*TransactionManager
}

func NewSessionRepository(pool *pgxpool.Pool) repository.SessionRepository {
	return &SessionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const sessionColumns = `id, session_id, user_id, game_type, game_name, bet_amount, win_amount, state,
       is_demo, currency, bet_transaction_id, win_transaction_id, result,
       start_time, end_time, duration, created_at, updated_at`

func scanSession(row pgx.Row) (*model.GameSession, error) {
	sess := &model.GameSession{}
	var duration *int64
	err := row.Scan(&sess.ID, &sess.SessionID, &sess.UserID, &sess.GameType, &sess.GameName,
		&sess.BetAmount, &sess.WinAmount, &sess.State, &sess.IsDemo, &sess.Currency,
		&sess.BetTransactionID, &sess.WinTransactionID, &sess.Result,
		&sess.StartTime, &sess.EndTime, &duration, &sess.CreatedAt, &sess.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if duration != nil {
		sess.Duration = *duration
	}
	return sess, nil
}

// InsertSession creates a new game session
func (r *SessionRepositoryImpl) InsertSession(ctx context.Context, sess *model.GameSession, tx pgx.Tx) error {
	query := `
        INSERT INTO game_sessions (session_id, user_id, game_type, game_name, bet_amount, win_amount,
                                   state, is_demo, currency, bet_transaction_id, start_time)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query,
		sess.SessionID, sess.UserID, sess.GameType, sess.GameName, sess.BetAmount, sess.WinAmount,
		sess.State, sess.IsDemo, sess.Currency, sess.BetTransactionID, sess.StartTime).
		Scan(&sess.ID, &sess.CreatedAt, &sess.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by (session_id, user_id)
func (r *SessionRepositoryImpl) GetSession(ctx context.Context, sessionID string, userID int64, tx ...pgx.Tx) (*model.GameSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM game_sessions WHERE session_id = $1 AND user_id = $2`

	executor := r.getExecutor(tx...)
	sess, err := scanSession(executor.QueryRow(ctx, query, sessionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// GetSessionForUpdate retrieves a session with a row lock so concurrent
// completions of the same session serialize
func (r *SessionRepositoryImpl) GetSessionForUpdate(ctx context.Context, sessionID string, userID int64, tx pgx.Tx) (*model.GameSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM game_sessions WHERE session_id = $1 AND user_id = $2 FOR UPDATE`

	sess, err := scanSession(tx.QueryRow(ctx, query, sessionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session for update: %w", err)
	}
	return sess, nil
}

// CompleteSession persists the terminal completed state
func (r *SessionRepositoryImpl) CompleteSession(ctx context.Context, sess *model.GameSession, tx pgx.Tx) error {
	query := `
        UPDATE game_sessions
        SET state = $1, win_amount = $2, win_transaction_id = $3, result = $4,
            end_time = $5, duration = $6, updated_at = NOW()
        WHERE id = $7 AND state = $8
        RETURNING updated_at`

	err := tx.QueryRow(ctx, query, model.SessionCompleted, sess.WinAmount, sess.WinTransactionID,
		sess.Result, sess.EndTime, sess.Duration, sess.ID, model.SessionActive).
		Scan(&sess.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrInvalidState
		}
		return fmt.Errorf("failed to complete session: %w", err)
	}
	sess.State = model.SessionCompleted
	return nil
}

// CancelSessionIfActive cancels a session if it is still active
func (r *SessionRepositoryImpl) CancelSessionIfActive(ctx context.Context, id int64, endTime time.Time, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE game_sessions
        SET state = $1, end_time = $2, updated_at = NOW()
        WHERE id = $3 AND state = $4`

	commandTag, err := tx.Exec(ctx, query, model.SessionCancelled, endTime, id, model.SessionActive)
	if err != nil {
		return false, fmt.Errorf("failed to cancel session: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// ListSessions retrieves paginated sessions for a user newest first
func (r *SessionRepositoryImpl) ListSessions(ctx context.Context, userID int64, gameType model.GameType, limit, offset int) ([]*model.GameSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM game_sessions WHERE user_id = $1`
	args := []any{userID}

	if gameType != "" {
		args = append(args, gameType)
		query += fmt.Sprintf(" AND game_type = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*model.GameSession
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}
