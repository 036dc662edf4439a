package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"casino-ledger/internal/auth"
	"casino-ledger/internal/broadcast"
	"casino-ledger/internal/model"
	"casino-ledger/internal/service"
)

type Handler struct {
	accountService    service.AccountService
	settlementService service.SettlementService
	sessionService    service.SessionService
	paymentService    service.PaymentService
	hub               *broadcast.Hub
	tokens            *auth.TokenIssuer
	logger            zerolog.Logger
}

func NewHandler(
	accountService service.AccountService,
	settlementService service.SettlementService,
	sessionService service.SessionService,
	paymentService service.PaymentService,
	hub *broadcast.Hub,
	tokens *auth.TokenIssuer,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		accountService:    accountService,
		settlementService: settlementService,
		sessionService:    sessionService,
		paymentService:    paymentService,
		hub:               hub,
		tokens:            tokens,
		logger:            logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger, health and metrics
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if h.hub != nil {
		router.GET("/ws", gin.WrapF(h.hub.Handle))
	}

	// API routes
	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)

	// Gateway callbacks authenticate with verify_sign, not a bearer token
	payments := v1.Group("/payments")
	payments.GET("/success", h.PaymentCallback)
	payments.GET("/fail", h.PaymentCallback)
	payments.GET("/cancel", h.PaymentCallback)
	payments.POST("/ipn", h.PaymentIPN)

	v1.GET("/games", h.ListGames)

	authed := v1.Group("")
	authed.Use(AuthMiddleware(h.tokens, h.accountService))

	authed.GET("/accounts/me", h.GetAccount)
	authed.GET("/accounts/me/balance", h.GetBalance)

	authed.POST("/payments/deposit", RequireVerified(), h.Deposit)

	sessions := authed.Group("/games/sessions")
	sessions.POST("", h.StartSession)
	sessions.POST("/complete", h.CompleteSession)
	sessions.POST("/:id/abandon", h.AbandonSession)
	sessions.GET("", h.ListSessions)
	sessions.GET("/:id", h.GetSession)

	transactions := authed.Group("/transactions")
	transactions.GET("", h.ListTransactions)
	transactions.GET("/:id", h.GetTransaction)
	transactions.POST("/:id/reverse", h.ReverseTransaction)
	transactions.POST("/:id/retry", h.RetryTransaction)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInsufficientBalance):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_BALANCE"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidBetAmount):
		status = http.StatusBadRequest
		code = "INVALID_BET_AMOUNT"
	case errors.Is(err, model.ErrInvalidGameType):
		status = http.StatusBadRequest
		code = "INVALID_GAME_TYPE"
	case errors.Is(err, model.ErrInvalidTransactionType):
		status = http.StatusBadRequest
		code = "INVALID_TRANSACTION_TYPE"
	case errors.Is(err, model.ErrInvalidSignature):
		status = http.StatusBadRequest
		code = "INVALID_SIGNATURE"
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		code = "INVALID_CREDENTIALS"
	case errors.Is(err, model.ErrAccountNotVerified):
		status = http.StatusForbidden
		code = "ACCOUNT_NOT_VERIFIED"
	case errors.Is(err, model.ErrAccountLocked):
		status = http.StatusLocked
		code = "ACCOUNT_LOCKED"
	case errors.Is(err, model.ErrAccountNotFound):
		status = http.StatusNotFound
		code = "ACCOUNT_NOT_FOUND"
	case errors.Is(err, model.ErrTransactionNotFound):
		status = http.StatusNotFound
		code = "TRANSACTION_NOT_FOUND"
	case errors.Is(err, model.ErrSessionNotFound):
		status = http.StatusNotFound
		code = "SESSION_NOT_FOUND"
	case errors.Is(err, service.ErrUnknownTransaction):
		status = http.StatusNotFound
		code = "UNKNOWN_TRANSACTION"
	case errors.Is(err, model.ErrEmailTaken):
		status = http.StatusConflict
		code = "EMAIL_TAKEN"
	case errors.Is(err, model.ErrDuplicateTransaction):
		status = http.StatusConflict
		code = "DUPLICATE_TRANSACTION"
		resp.Details = "Transaction ID already exists for a different user"
	case errors.Is(err, model.ErrInvalidState):
		status = http.StatusConflict
		code = "INVALID_STATE"
	case errors.Is(err, model.ErrNotReversible):
		status = http.StatusConflict
		code = "NOT_REVERSIBLE"
	case errors.Is(err, model.ErrAlreadyTerminal):
		status = http.StatusConflict
		code = "ALREADY_TERMINAL"
	case errors.Is(err, model.ErrMaxRetriesExceeded):
		status = http.StatusConflict
		code = "MAX_RETRIES_EXCEEDED"
	case errors.Is(err, model.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
		code = "STORAGE_UNAVAILABLE"
		resp.Details = "Account is busy, retry the request"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
