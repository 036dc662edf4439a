package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"casino-ledger/internal/auth"
	"casino-ledger/internal/model"
	"casino-ledger/internal/service"
)

const (
	ctxUserID  = "userID"
	ctxAccount = "account"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get("requestID")
		requestID, _ := rid.(string)

		log.Info().
			Str("request_id", requestID).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", raw).
			Str("ip", c.ClientIP()).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}

// AuthMiddleware verifies the bearer token and loads the account so
// downstream handlers can rely on its flags.
func AuthMiddleware(tokens *auth.TokenIssuer, accounts service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "missing bearer token",
				Code:  "UNAUTHORIZED",
			})
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "invalid or expired token",
				Code:  "UNAUTHORIZED",
			})
			return
		}

		acct, err := accounts.GetAccount(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "account not found",
				Code:  "UNAUTHORIZED",
			})
			return
		}

		if acct.IsLocked {
			c.AbortWithStatusJSON(http.StatusLocked, model.ErrorResponse{
				Error: model.ErrAccountLocked.Error(),
				Code:  "ACCOUNT_LOCKED",
			})
			return
		}
		if !acct.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
				Error: "account is deactivated",
				Code:  "ACCOUNT_INACTIVE",
			})
			return
		}

		c.Set(ctxUserID, acct.ID)
		c.Set(ctxAccount, acct)
		c.Next()
	}
}

// RequireVerified gates endpoints that move real money.
func RequireVerified() gin.HandlerFunc {
	return func(c *gin.Context) {
		acct := currentAccount(c)
		if acct == nil || !acct.IsVerified {
			c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
				Error: model.ErrAccountNotVerified.Error(),
				Code:  "ACCOUNT_NOT_VERIFIED",
			})
			return
		}
		c.Next()
	}
}

func currentUserID(c *gin.Context) int64 {
	id, _ := c.Get(ctxUserID)
	userID, _ := id.(int64)
	return userID
}

func currentAccount(c *gin.Context) *model.Account {
	v, _ := c.Get(ctxAccount)
	acct, _ := v.(*model.Account)
	return acct
}
