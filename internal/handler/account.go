package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAccount
// @Summary Get the authenticated account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Account
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Router /accounts/me [get]
func (h *Handler) GetAccount(c *gin.Context) {
	c.JSON(http.StatusOK, currentAccount(c))
}

// GetBalance
// @Summary Get the authenticated account's balance
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BalanceResponse
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Router /accounts/me/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	resp, err := h.settlementService.GetBalance(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
