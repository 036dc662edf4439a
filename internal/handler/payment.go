package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casino-ledger/internal/gateway"
	"casino-ledger/internal/model"
)

// Deposit
// @Summary Initiate a deposit
// @Description Records a pending deposit and returns the signed gateway payment fields
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.DepositRequest true "Deposit details"
// @Success 201 {object} model.DepositResponse
// @Failure 400 {object} model.ErrorResponse "Bad amount"
// @Failure 403 {object} model.ErrorResponse "Verification required"
// @Router /payments/deposit [post]
func (h *Handler) Deposit(c *gin.Context) {
	var req model.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.paymentService.InitiateDeposit(c.Request.Context(), currentAccount(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// PaymentCallback
// @Summary Gateway browser redirect
// @Description Handles the success/fail/cancel redirects; the outcome is taken from the signed status, not the URL
// @Tags payments
// @Produce json
// @Param tran_id query string true "Transaction ID"
// @Param status query string true "Gateway status"
// @Param verify_sign query string true "Gateway signature"
// @Success 200 {object} model.TransactionResponse
// @Failure 400 {object} model.ErrorResponse "Invalid signature"
// @Failure 404 {object} model.ErrorResponse "Unknown transaction"
// @Router /payments/success [get]
func (h *Handler) PaymentCallback(c *gin.Context) {
	var n gateway.Notification
	if err := c.ShouldBindQuery(&n); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid callback parameters",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	h.reconcile(c, &n)
}

// PaymentIPN
// @Summary Gateway instant payment notification
// @Description Out-of-band notification from the gateway; idempotent with the browser redirect
// @Tags payments
// @Accept x-www-form-urlencoded
// @Produce json
// @Param tran_id formData string true "Transaction ID"
// @Param status formData string true "Gateway status"
// @Param verify_sign formData string true "Gateway signature"
// @Success 200 {object} model.TransactionResponse
// @Failure 400 {object} model.ErrorResponse "Invalid signature"
// @Failure 404 {object} model.ErrorResponse "Unknown transaction"
// @Router /payments/ipn [post]
func (h *Handler) PaymentIPN(c *gin.Context) {
	var n gateway.Notification
	if err := c.ShouldBind(&n); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid notification payload",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	h.reconcile(c, &n)
}

func (h *Handler) reconcile(c *gin.Context, n *gateway.Notification) {
	trans, err := h.paymentService.HandleNotification(c.Request.Context(), n)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionResponse{
		Status:      "success",
		Balance:     trans.BalanceAfter.StringFixed(2),
		Transaction: trans,
	})
}
