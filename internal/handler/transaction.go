package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"casino-ledger/internal/model"
)

// ListTransactions
// @Summary List the authenticated user's ledger entries
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param type query string false "Filter by transaction type"
// @Param status query string false "Filter by status"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Router /transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	filter := model.TransactionFilter{UserID: currentUserID(c)}

	if s := c.Query("type"); s != "" {
		parsed, err := model.ParseTransactionType(s)
		if err != nil {
			h.handleError(c, err)
			return
		}
		filter.Type = parsed
	}
	if s := c.Query("status"); s != "" {
		filter.Status = model.TransactionStatus(s)
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	transactions, err := h.settlementService.ListTransactions(c.Request.Context(), filter, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		Limit:        limit,
		Offset:       offset,
	})
}

// GetTransaction
// @Summary Get one ledger entry
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} model.Transaction
// @Failure 404 {object} model.ErrorResponse "Transaction not found"
// @Router /transactions/{id} [get]
func (h *Handler) GetTransaction(c *gin.Context) {
	trans, err := h.settlementService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Transactions are visible only to their owner.
	if trans.UserID != currentUserID(c) {
		h.handleError(c, model.ErrTransactionNotFound)
		return
	}

	c.JSON(http.StatusOK, trans)
}

// ReverseTransaction
// @Summary Reverse a reversible transaction
// @Description Cancels the transaction and, when it was completed, writes a compensating ledger entry
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body model.ReverseRequest true "Reversal reason"
// @Success 200 {object} model.TransactionResponse
// @Failure 404 {object} model.ErrorResponse "Transaction not found"
// @Failure 409 {object} model.ErrorResponse "Not reversible"
// @Router /transactions/{id}/reverse [post]
func (h *Handler) ReverseTransaction(c *gin.Context) {
	var req model.ReverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	trans, err := h.settlementService.Reverse(c.Request.Context(), c.Param("id"), currentUserID(c), req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionResponse{
		Status:      "success",
		Balance:     trans.BalanceAfter.StringFixed(2),
		Transaction: trans,
		Message:     "transaction reversed",
	})
}

// RetryTransaction
// @Summary Re-queue a failed deposit
// @Description Moves a failed transaction back to pending with exponential backoff
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} model.Transaction
// @Failure 404 {object} model.ErrorResponse "Transaction not found"
// @Failure 409 {object} model.ErrorResponse "Max retries exceeded"
// @Router /transactions/{id}/retry [post]
func (h *Handler) RetryTransaction(c *gin.Context) {
	trans, err := h.settlementService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if trans.UserID != currentUserID(c) {
		h.handleError(c, model.ErrTransactionNotFound)
		return
	}

	requeued, err := h.settlementService.Retry(c.Request.Context(), trans.TransactionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, requeued)
}
