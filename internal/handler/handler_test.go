package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"casino-ledger/internal/auth"
	"casino-ledger/internal/gateway"
	"casino-ledger/internal/model"
	mocks "casino-ledger/mocks/service"
)

type handlerFixture struct {
	handler        *Handler
	accountSvc     *mocks.AccountService
	settlementSvc  *mocks.SettlementService
	sessionSvc     *mocks.SessionService
	paymentSvc     *mocks.PaymentService
	tokens         *auth.TokenIssuer
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	gin.SetMode(gin.TestMode)

	f := &handlerFixture{
		accountSvc:    mocks.NewAccountService(t),
		settlementSvc: mocks.NewSettlementService(t),
		sessionSvc:    mocks.NewSessionService(t),
		paymentSvc:    mocks.NewPaymentService(t),
		tokens:        auth.NewTokenIssuer("test-secret", time.Hour),
	}
	f.handler = NewHandler(f.accountSvc, f.settlementSvc, f.sessionSvc, f.paymentSvc, nil, f.tokens, zerolog.Nop())
	return f
}

func asUser(acct *model.Account) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxUserID, acct.ID)
		c.Set(ctxAccount, acct)
	}
}

func verifiedAccount() *model.Account {
	return &model.Account{ID: 1, Email: "player@example.com", IsVerified: true, IsActive: true, Currency: "USD"}
}

func TestHandler_StartSession_Success(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.POST("/sessions", asUser(verifiedAccount()), f.handler.StartSession)

	f.sessionSvc.On("StartSession", mock.Anything, int64(1), mock.Anything).Return(&model.SessionResponse{
		Session: &model.GameSession{SessionID: "GAME_1", State: model.SessionActive},
		Balance: "90.00",
	}, nil)

	body, _ := json.Marshal(model.StartSessionRequest{
		GameID:    "royal-slots",
		GameType:  "slots",
		BetAmount: "10.00",
	})

	req, _ := http.NewRequest(http.MethodPost, "/sessions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.SessionResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "90.00", resp.Balance)
	assert.Equal(t, "GAME_1", resp.Session.SessionID)
}

func TestHandler_StartSession_UnverifiedRealBetRejected(t *testing.T) {
	f := newHandlerFixture(t)

	unverified := verifiedAccount()
	unverified.IsVerified = false

	router := gin.New()
	router.POST("/sessions", asUser(unverified), f.handler.StartSession)

	body, _ := json.Marshal(model.StartSessionRequest{
		GameID:    "royal-slots",
		GameType:  "slots",
		BetAmount: "10.00",
	})

	req, _ := http.NewRequest(http.MethodPost, "/sessions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "ACCOUNT_NOT_VERIFIED", resp.Code)
	f.sessionSvc.AssertNotCalled(t, "StartSession")
}

func TestHandler_StartSession_InsufficientBalance(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.POST("/sessions", asUser(verifiedAccount()), f.handler.StartSession)

	f.sessionSvc.On("StartSession", mock.Anything, int64(1), mock.Anything).Return(nil, model.ErrInsufficientBalance)

	body, _ := json.Marshal(model.StartSessionRequest{
		GameID:    "royal-slots",
		GameType:  "slots",
		BetAmount: "1000.00",
	})

	req, _ := http.NewRequest(http.MethodPost, "/sessions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INSUFFICIENT_BALANCE", resp.Code)
}

func TestHandler_GetBalance(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.GET("/balance", asUser(verifiedAccount()), f.handler.GetBalance)

	f.settlementSvc.On("GetBalance", mock.Anything, int64(1)).Return(&model.BalanceResponse{
		UserID:   1,
		Balance:  "100.50",
		Currency: "USD",
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/balance", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.BalanceResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "100.50", resp.Balance)
}

func TestHandler_GetSession(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.GET("/sessions/:id", asUser(verifiedAccount()), f.handler.GetSession)

	f.sessionSvc.On("GetSession", mock.Anything, int64(1), "GAME_1").Return(&model.GameSession{
		SessionID: "GAME_1",
		UserID:    1,
		State:     model.SessionCompleted,
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/sessions/GAME_1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var sess model.GameSession
	json.Unmarshal(w.Body.Bytes(), &sess)
	assert.Equal(t, "GAME_1", sess.SessionID)
	assert.Equal(t, model.SessionCompleted, sess.State)
}

func TestHandler_GetSession_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.GET("/sessions/:id", asUser(verifiedAccount()), f.handler.GetSession)

	f.sessionSvc.On("GetSession", mock.Anything, int64(1), "GAME_404").Return(nil, model.ErrSessionNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/sessions/GAME_404", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "SESSION_NOT_FOUND", resp.Code)
}

func TestHandler_GetTransaction_OtherUsersEntryHidden(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.GET("/transactions/:id", asUser(verifiedAccount()), f.handler.GetTransaction)

	f.settlementSvc.On("GetTransaction", mock.Anything, "TXN_9").Return(&model.Transaction{
		TransactionID: "TXN_9",
		UserID:        2,
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/transactions/TXN_9", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "TRANSACTION_NOT_FOUND", resp.Code)
}

func TestHandler_ReverseTransaction_NotReversible(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.POST("/transactions/:id/reverse", asUser(verifiedAccount()), f.handler.ReverseTransaction)

	f.settlementSvc.On("Reverse", mock.Anything, "BET_1", int64(1), "mistake").Return(nil, model.ErrNotReversible)

	body, _ := json.Marshal(model.ReverseRequest{Reason: "mistake"})
	req, _ := http.NewRequest(http.MethodPost, "/transactions/BET_1/reverse", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "NOT_REVERSIBLE", resp.Code)
}

func TestHandler_PaymentIPN_Success(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.POST("/payments/ipn", f.handler.PaymentIPN)

	f.paymentSvc.On("HandleNotification", mock.Anything, mock.MatchedBy(func(n *gateway.Notification) bool {
		return n.TranID == "TXN_1" && n.Status == gateway.StatusValid
	})).Return(&model.Transaction{
		TransactionID: "TXN_1",
		Status:        model.StatusCompleted,
		BalanceAfter:  decimal.NewFromInt(120),
	}, nil)

	form := url.Values{}
	form.Set("tran_id", "TXN_1")
	form.Set("status", gateway.StatusValid)
	form.Set("amount", "100.00")
	form.Set("currency", "USD")
	form.Set("verify_sign", "abc")

	req, _ := http.NewRequest(http.MethodPost, "/payments/ipn", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.TransactionResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "120.00", resp.Balance)
}

func TestHandler_PaymentIPN_InvalidSignature(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.POST("/payments/ipn", f.handler.PaymentIPN)

	f.paymentSvc.On("HandleNotification", mock.Anything, mock.Anything).Return(nil, model.ErrInvalidSignature)

	form := url.Values{}
	form.Set("tran_id", "TXN_1")
	form.Set("status", gateway.StatusValid)
	form.Set("verify_sign", "forged")

	req, _ := http.NewRequest(http.MethodPost, "/payments/ipn", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INVALID_SIGNATURE", resp.Code)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.GET("/me", AuthMiddleware(f.tokens, f.accountSvc), f.handler.GetAccount)

	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidTokenLoadsAccount(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.GET("/me", AuthMiddleware(f.tokens, f.accountSvc), f.handler.GetAccount)

	f.accountSvc.On("GetAccount", mock.Anything, int64(1)).Return(verifiedAccount(), nil)

	token, _ := f.tokens.Issue(1)
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var acct model.Account
	json.Unmarshal(w.Body.Bytes(), &acct)
	assert.Equal(t, int64(1), acct.ID)
}

func TestAuthMiddleware_LockedAccount(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.GET("/me", AuthMiddleware(f.tokens, f.accountSvc), f.handler.GetAccount)

	locked := verifiedAccount()
	locked.IsLocked = true
	f.accountSvc.On("GetAccount", mock.Anything, int64(1)).Return(locked, nil)

	token, _ := f.tokens.Issue(1)
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusLocked, w.Code)
}

func TestHandler_ListGames(t *testing.T) {
	f := newHandlerFixture(t)

	router := gin.New()
	router.GET("/games", f.handler.ListGames)

	f.sessionSvc.On("Catalog").Return([]model.GameInfo{
		{ID: "royal-slots", Name: "Royal Slots", Type: model.GameSlots, MinBet: "0.10", MaxBet: "1000.00"},
	})

	req, _ := http.NewRequest(http.MethodGet, "/games", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "royal-slots")
}
