package test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casino-ledger/internal/auth"
	"casino-ledger/internal/broadcast"
	"casino-ledger/internal/cache"
	"casino-ledger/internal/config"
	"casino-ledger/internal/database"
	"casino-ledger/internal/gateway"
	"casino-ledger/internal/handler"
	"casino-ledger/internal/model"
	"casino-ledger/internal/repository/postgres"
	"casino-ledger/internal/service"
)

var (
	testPool *pgxpool.Pool
	testCfg  *config.Config
)

const testUserID = 4

// Runs as first function
func TestMain(m *testing.M) {
	if os.Getenv("SKIP_E2E") != "" {
		fmt.Println("Skipping E2E tests")
		os.Exit(0)
	}

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}
	testCfg = cfg

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		fmt.Printf("failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	testPool = pool
	os.Exit(m.Run())
}

type e2eFixture struct {
	handler    *handler.Handler
	settlement service.SettlementService
	token      string
}

func setupE2E(t *testing.T, balance string) *e2eFixture {
	if testPool == nil {
		t.Skip("Database connection not available")
	}

	ctx := context.Background()
	_, err := testPool.Exec(ctx, "DELETE FROM game_sessions WHERE user_id = $1", testUserID)
	require.NoError(t, err)
	_, err = testPool.Exec(ctx, "DELETE FROM transactions WHERE user_id = $1", testUserID)
	require.NoError(t, err)

	// Seed the test account, reset balance if it already exists
	_, err = testPool.Exec(ctx, `
		INSERT INTO accounts (id, email, password_hash, balance, is_verified)
		VALUES ($1, 'e2e-player@example.com', 'unused', $2, TRUE)
		ON CONFLICT (id) DO UPDATE
		SET balance = EXCLUDED.balance,
			is_verified = TRUE,
			is_active = TRUE,
			is_locked = FALSE,
			updated_at = NOW()
	`, testUserID, balance)
	require.NoError(t, err)

	logger := zerolog.Nop()
	accountRepo := postgres.NewAccountRepository(testPool)
	transactionRepo := postgres.NewTransactionRepository(testPool)
	sessionRepo := postgres.NewSessionRepository(testPool)
	dbManager := postgres.NewTransactionManager(testPool)

	minDeposit, maxDeposit, err := testCfg.Betting.DepositBounds()
	require.NoError(t, err)

	tokens := auth.NewTokenIssuer(testCfg.Auth.JWTSecret, testCfg.Auth.TokenTTL)
	settlementService := service.NewSettlementService(accountRepo, transactionRepo, dbManager,
		cache.NopBalanceCache{}, nil, logger)
	sessionService := service.NewSessionService(sessionRepo, accountRepo, settlementService,
		dbManager, cache.NopBalanceCache{}, broadcast.NopBroadcaster{}, config.BetLimits(), logger)
	paymentService := service.NewPaymentService(settlementService, gateway.NewClient(testCfg.Gateway),
		nil, logger, testCfg.Server.BaseURL, minDeposit, maxDeposit)
	accountService := service.NewAccountService(accountRepo, tokens, logger)

	token, err := tokens.Issue(testUserID)
	require.NoError(t, err)

	return &e2eFixture{
		handler:    handler.NewHandler(accountService, settlementService, sessionService, paymentService, nil, tokens, logger),
		settlement: settlementService,
		token:      token,
	}
}

// settleWithRetry retries a settlement while the account row is locked
// by a concurrent writer. NOWAIT surfaces contention as
// ErrStorageUnavailable and the caller is expected to retry.
func settleWithRetry(fn func() (*model.Transaction, error)) (*model.Transaction, error) {
	var (
		trans *model.Transaction
		err   error
	)
	for i := 0; i < 1000; i++ {
		trans, err = fn()
		if !errors.Is(err, model.ErrStorageUnavailable) {
			return trans, err
		}
		time.Sleep(5 * time.Millisecond)
	}
	return trans, err
}

func ledgerSum(t *testing.T) string {
	var sum string
	err := testPool.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(
			CASE WHEN type IN ('deposit', 'game_win', 'bonus', 'refund')
				THEN amount ELSE -amount END), 0)::text
		FROM transactions
		WHERE user_id = $1 AND status = 'completed'
	`, testUserID).Scan(&sum)
	require.NoError(t, err)
	return sum
}

func accountBalance(t *testing.T) string {
	var balance string
	err := testPool.QueryRow(context.Background(),
		"SELECT balance::text FROM accounts WHERE id = $1", testUserID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

// Test_ConcurrentSettlements_SameTransactionID_AppliedOnce verifies:
// - Duplicated concurrent settlements keyed by one transaction_id
// - The balance moves exactly once
// - Every caller receives the same settled transaction, none an error
// - Exactly one ledger row exists for the id
// - All goroutines start simultaneously via barrier channel
func Test_ConcurrentSettlements_SameTransactionID_AppliedOnce(t *testing.T) {
	f := setupE2E(t, "100.00")

	const (
		numRequests          = 25
		expectedFinalBalance = "110.00"
	)

	ctx := context.Background()
	transID := service.NewTransactionID("WIN")
	amount := decimal.RequireFromString("10.00")

	barrier := make(chan struct{})
	results := make(chan *model.Transaction, numRequests)
	errs := make(chan error, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)

	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()
			<-barrier

			trans, err := settleWithRetry(func() (*model.Transaction, error) {
				return f.settlement.Credit(ctx, testUserID, amount, model.SettlementParams{
					TransactionID: transID,
					Type:          model.TypeGameWin,
					Method:        model.MethodCasinoBalance,
				})
			})
			results <- trans
			errs <- err
		}()
	}

	close(barrier)
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	for trans := range results {
		if assert.NotNil(t, trans) {
			assert.Equal(t, transID, trans.TransactionID)
			assert.Equal(t, model.StatusCompleted, trans.Status)
		}
	}

	var rows int
	err := testPool.QueryRow(ctx,
		"SELECT COUNT(*) FROM transactions WHERE transaction_id = $1", transID).Scan(&rows)
	require.NoError(t, err)
	assert.Equal(t, 1, rows, "Exactly one ledger row for the shared id")

	assert.Equal(t, expectedFinalBalance, accountBalance(t), "Balance should be updated exactly once")
}

// Test_ConcurrentSettlements_LedgerReconciles verifies:
// - Mixed concurrent credits and debits with unique transaction IDs
// - Every settlement lands exactly once despite row-lock contention
// - balance == sum of completed credits - sum of completed debits
// - All goroutines start simultaneously via barrier channel
func Test_ConcurrentSettlements_LedgerReconciles(t *testing.T) {
	f := setupE2E(t, "0.00")

	ctx := context.Background()

	// Fund the account through the ledger so the invariant covers the
	// whole balance, not just the deltas.
	_, err := f.settlement.Credit(ctx, testUserID, decimal.NewFromInt(1000), model.SettlementParams{
		TransactionID: service.NewTransactionID("DEP"),
		Type:          model.TypeDeposit,
		Method:        model.MethodCasinoBalance,
	})
	require.NoError(t, err)

	const (
		numDebits  = 10 // 10.00 each
		numCredits = 10 // 5.00 each
		// 1000 - (10 * 10) + (10 * 5)
		expectedFinalBalance = "950.00"
	)

	barrier := make(chan struct{})
	errs := make(chan error, numDebits+numCredits)

	var wg sync.WaitGroup
	wg.Add(numDebits + numCredits)

	for i := 0; i < numDebits; i++ {
		go func() {
			defer wg.Done()
			<-barrier
			_, err := settleWithRetry(func() (*model.Transaction, error) {
				return f.settlement.Debit(ctx, testUserID, decimal.RequireFromString("10.00"), model.SettlementParams{
					TransactionID: service.NewTransactionID("BET"),
					Type:          model.TypeGameLoss,
					Method:        model.MethodCasinoBalance,
				})
			})
			errs <- err
		}()
	}
	for i := 0; i < numCredits; i++ {
		go func() {
			defer wg.Done()
			<-barrier
			_, err := settleWithRetry(func() (*model.Transaction, error) {
				return f.settlement.Credit(ctx, testUserID, decimal.RequireFromString("5.00"), model.SettlementParams{
					TransactionID: service.NewTransactionID("WIN"),
					Type:          model.TypeGameWin,
					Method:        model.MethodCasinoBalance,
				})
			})
			errs <- err
		}()
	}

	close(barrier)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	balance := accountBalance(t)
	assert.Equal(t, expectedFinalBalance, balance)
	assert.Equal(t, ledgerSum(t), balance, "Balance must equal completed credits minus completed debits")
}

// Test_GameRoundFlow verifies a full round over HTTP: bet debits,
// win credits, repeated completion is idempotent, and the ledger keeps
// justifying the balance throughout.
func Test_GameRoundFlow(t *testing.T) {
	f := setupE2E(t, "100.00")
	router := f.handler.SetupRoutes()

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req, _ := http.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+f.token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	var sessionID string

	t.Run("Bet debits the balance at session start", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/games/sessions", model.StartSessionRequest{
			GameID:    "royal-slots",
			GameType:  "slots",
			BetAmount: "10.00",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp model.SessionResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "90.00", resp.Balance)
		require.NotNil(t, resp.Session)
		sessionID = resp.Session.SessionID
	})

	completeReq := model.CompleteSessionRequest{
		WinAmount: "30.00",
		Result: &model.GameResult{
			IsWin:      true,
			Multiplier: 3,
			Data:       model.SlotsResult{Reels: []string{"7", "7", "7"}},
		},
	}

	t.Run("Win credits the balance at completion", func(t *testing.T) {
		completeReq.SessionID = sessionID
		w := do(http.MethodPost, "/api/v1/games/sessions/complete", completeReq)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp model.SessionResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "120.00", resp.Balance)
	})

	t.Run("Repeated completion does not credit again", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/games/sessions/complete", completeReq)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp model.SessionResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "120.00", resp.Balance)
		assert.Equal(t, "120.00", accountBalance(t))
	})

	t.Run("Session is readable by id", func(t *testing.T) {
		w := do(http.MethodGet, "/api/v1/games/sessions/"+sessionID, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var sess model.GameSession
		json.Unmarshal(w.Body.Bytes(), &sess)
		assert.Equal(t, model.SessionCompleted, sess.State)
		assert.Equal(t, "30", sess.WinAmount.String())
	})

	t.Run("Ledger justifies the round's balance change", func(t *testing.T) {
		// The seed balance predates the ledger, so only the delta is
		// covered: -10.00 bet +30.00 win.
		assert.Equal(t, "20.00", ledgerSum(t))
		assert.Equal(t, "120.00", accountBalance(t))
	})
}
