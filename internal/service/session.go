package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"casino-ledger/internal/broadcast"
	"casino-ledger/internal/cache"
	"casino-ledger/internal/config"
	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"
)

type SessionServiceImpl struct {
	sessionRepo  repository.SessionRepository
	accountRepo  repository.AccountRepository
	settlement   SettlementService
	dbManager    repository.DBManager
	balanceCache cache.BalanceCache
	broadcaster  broadcast.Broadcaster
	limits       map[model.GameType]config.BetBounds
	logger       zerolog.Logger
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	accountRepo repository.AccountRepository,
	settlement SettlementService,
	dbManager repository.DBManager,
	balanceCache cache.BalanceCache,
	broadcaster broadcast.Broadcaster,
	limits map[model.GameType]config.BetBounds,
	logger zerolog.Logger,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		sessionRepo:  sessionRepo,
		accountRepo:  accountRepo,
		settlement:   settlement,
		dbManager:    dbManager,
		balanceCache: balanceCache,
		broadcaster:  broadcaster,
		limits:       limits,
		logger:       logger,
	}
}

var _ SessionService = (*SessionServiceImpl)(nil)

func newSessionID() string {
	return "GAME_" + uuid.NewString()
}

// StartSession debits the bet and opens the session in one database
// transaction: either both happen or neither does.
func (s *SessionServiceImpl) StartSession(ctx context.Context, userID int64, req *model.StartSessionRequest) (*model.SessionResponse, error) {
	gameType, err := model.ParseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	betAmount, err := decimal.NewFromString(req.BetAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}
	if betAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: bet must be positive", model.ErrInvalidAmount)
	}

	bounds, ok := s.limits[gameType]
	if !ok {
		return nil, model.ErrInvalidGameType
	}
	if betAmount.LessThan(bounds.Min) || betAmount.GreaterThan(bounds.Max) {
		return nil, fmt.Errorf("%w: %s allows %s to %s", model.ErrInvalidBetAmount,
			gameType, bounds.Min.StringFixed(2), bounds.Max.StringFixed(2))
	}

	sessionID := newSessionID()
	sess := &model.GameSession{
		SessionID: sessionID,
		UserID:    userID,
		GameType:  gameType,
		GameName:  req.GameID,
		WinAmount: decimal.Zero,
		State:     model.SessionActive,
		IsDemo:    req.IsDemo,
		StartTime: time.Now(),
	}

	var balance decimal.Decimal
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		acct, err := s.accountRepo.GetAccount(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}
		sess.Currency = acct.Currency
		balance = acct.Balance

		if req.IsDemo {
			// Demo play never touches the ledger.
			sess.BetAmount = decimal.Zero
			return s.sessionRepo.InsertSession(ctx, sess, tx)
		}

		sess.BetAmount = betAmount
		betTrans, err := s.settlement.ApplyDebit(ctx, tx, userID, betAmount, model.SettlementParams{
			TransactionID: NewTransactionID("BET"),
			Type:          model.TypeGameLoss,
			Description:   fmt.Sprintf("Bet on %s", req.GameID),
			Method:        model.MethodCasinoBalance,
			SessionID:     &sessionID,
		})
		if err != nil {
			return err
		}
		sess.BetTransactionID = &betTrans.TransactionID
		balance = betTrans.BalanceAfter

		return s.sessionRepo.InsertSession(ctx, sess, tx)
	})
	if err != nil {
		return nil, err
	}

	s.balanceCache.Invalidate(ctx, userID)
	s.broadcaster.SessionStarted(sess)

	s.logger.Info().
		Str("session_id", sess.SessionID).
		Int64("user_id", userID).
		Str("game_type", gameType.String()).
		Str("bet_amount", sess.BetAmount.StringFixed(2)).
		Bool("is_demo", sess.IsDemo).
		Msg("game session started")

	return &model.SessionResponse{Session: sess, Balance: balance.StringFixed(2)}, nil
}

// CompleteSession settles the win and closes the session. The
// transition is idempotent: completing an already-completed session
// returns the recorded result without crediting again.
func (s *SessionServiceImpl) CompleteSession(ctx context.Context, userID int64, req *model.CompleteSessionRequest) (*model.SessionResponse, error) {
	winAmount, err := decimal.NewFromString(req.WinAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}
	if winAmount.IsNegative() {
		return nil, fmt.Errorf("%w: win amount cannot be negative", model.ErrInvalidAmount)
	}

	var (
		sess    *model.GameSession
		balance decimal.Decimal
	)
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		sess, err = s.sessionRepo.GetSessionForUpdate(ctx, req.SessionID, userID, tx)
		if err != nil {
			return err
		}

		if sess.State == model.SessionCompleted {
			// Retried completion: hand back the existing result.
			balance, err = s.accountRepo.GetBalance(ctx, userID, tx)
			return err
		}
		if sess.State != model.SessionActive {
			return fmt.Errorf("%w: session is %s", model.ErrInvalidState, sess.State)
		}

		endTime := time.Now()
		sess.WinAmount = winAmount
		sess.Result = req.Result
		sess.EndTime = &endTime
		sess.Duration = int64(endTime.Sub(sess.StartTime).Seconds())

		if !sess.IsDemo && winAmount.GreaterThan(decimal.Zero) {
			winTrans, err := s.settlement.ApplyCredit(ctx, tx, userID, winAmount, model.SettlementParams{
				TransactionID: NewTransactionID("WIN"),
				Type:          model.TypeGameWin,
				Description:   fmt.Sprintf("Win from %s", sess.GameName),
				Method:        model.MethodCasinoBalance,
				SessionID:     &sess.SessionID,
			})
			if err != nil {
				return err
			}
			sess.WinTransactionID = &winTrans.TransactionID
			balance = winTrans.BalanceAfter
		} else {
			// Zero win records no transaction, by policy.
			balance, err = s.accountRepo.GetBalance(ctx, userID, tx)
			if err != nil {
				return fmt.Errorf("get balance: %w", err)
			}
		}

		if err := s.sessionRepo.CompleteSession(ctx, sess, tx); err != nil {
			return err
		}

		return s.accountRepo.RecordGamePlayed(ctx, userID, sess.BetAmount, winAmount, tx)
	})
	if err != nil {
		return nil, err
	}

	s.balanceCache.Invalidate(ctx, userID)
	s.broadcaster.SessionSettled(sess)

	s.logger.Info().
		Str("session_id", sess.SessionID).
		Int64("user_id", userID).
		Str("win_amount", winAmount.StringFixed(2)).
		Str("profit_loss", sess.ProfitLoss().StringFixed(2)).
		Msg("game session completed")

	return &model.SessionResponse{Session: sess, Balance: balance.StringFixed(2)}, nil
}

// AbandonSession cancels an active session. The bet debit stands; a
// refund, if warranted, is a separate reversal.
func (s *SessionServiceImpl) AbandonSession(ctx context.Context, userID int64, sessionID string) (*model.GameSession, error) {
	var sess *model.GameSession

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		sess, err = s.sessionRepo.GetSessionForUpdate(ctx, sessionID, userID, tx)
		if err != nil {
			return err
		}

		if sess.State == model.SessionCancelled {
			return nil
		}
		if sess.State != model.SessionActive {
			return fmt.Errorf("%w: session is %s", model.ErrInvalidState, sess.State)
		}

		endTime := time.Now()
		cancelled, err := s.sessionRepo.CancelSessionIfActive(ctx, sess.ID, endTime, tx)
		if err != nil {
			return err
		}
		if cancelled {
			sess.State = model.SessionCancelled
			sess.EndTime = &endTime
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcaster.SessionSettled(sess)
	return sess, nil
}

func (s *SessionServiceImpl) GetSession(ctx context.Context, userID int64, sessionID string) (*model.GameSession, error) {
	sess, err := s.sessionRepo.GetSession(ctx, sessionID, userID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *SessionServiceImpl) ListSessions(ctx context.Context, userID int64, gameType model.GameType, limit, offset int) ([]*model.GameSession, error) {
	sessions, err := s.sessionRepo.ListSessions(ctx, userID, gameType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Catalog lists the playable games with their configured bet bounds.
func (s *SessionServiceImpl) Catalog() []model.GameInfo {
	entries := []struct {
		id, name, desc string
		gameType       model.GameType
		rtp            float64
	}{
		{"royal-slots", "Royal Slots", "Classic 5-reel slot machine with royal theme", model.GameSlots, 96.5},
		{"blackjack-royal", "Royal Blackjack", "Classic blackjack with royal payouts", model.GameBlackjack, 99.5},
		{"roulette-royal", "Royal Roulette", "European roulette with royal betting options", model.GameRoulette, 97.3},
		{"poker-royal", "Royal Poker", "Texas Hold'em poker with royal flush bonus", model.GamePoker, 98.1},
		{"baccarat-royal", "Royal Baccarat", "Classic baccarat with royal side bets", model.GameBaccarat, 98.9},
		{"dice-royal", "Royal Dice", "Dice game with royal multipliers", model.GameDice, 97.8},
		{"lottery-royal", "Royal Lottery", "Daily lottery with royal jackpots", model.GameLottery, 95.0},
	}

	games := make([]model.GameInfo, 0, len(entries))
	for _, e := range entries {
		bounds := s.limits[e.gameType]
		games = append(games, model.GameInfo{
			ID:          e.id,
			Name:        e.name,
			Type:        e.gameType,
			Description: e.desc,
			MinBet:      bounds.Min.StringFixed(2),
			MaxBet:      bounds.Max.StringFixed(2),
			RTP:         e.rtp,
			Demo:        true,
		})
	}
	return games
}
