package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"casino-ledger/internal/model"
)

// ListGames
// @Summary List playable games
// @Description Returns the game catalog with bet bounds per game
// @Tags games
// @Produce json
// @Success 200 {array} model.GameInfo
// @Router /games [get]
func (h *Handler) ListGames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"games": h.sessionService.Catalog()})
}

// StartSession
// @Summary Start a game session
// @Description Debits the bet and opens an active session atomically
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.StartSessionRequest true "Session details"
// @Success 201 {object} model.SessionResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient balance or bad bet"
// @Failure 403 {object} model.ErrorResponse "Verification required"
// @Router /games/sessions [post]
func (h *Handler) StartSession(c *gin.Context) {
	var req model.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	// Demo play is open to everyone; real bets need a verified account.
	acct := currentAccount(c)
	if !req.IsDemo && !acct.IsVerified {
		h.handleError(c, model.ErrAccountNotVerified)
		return
	}

	resp, err := h.sessionService.StartSession(c.Request.Context(), acct.ID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// CompleteSession
// @Summary Complete a game session
// @Description Credits the win and closes the session; repeating the call returns the recorded result
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CompleteSessionRequest true "Session outcome"
// @Success 200 {object} model.SessionResponse
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Failure 409 {object} model.ErrorResponse "Session already cancelled"
// @Router /games/sessions/complete [post]
func (h *Handler) CompleteSession(c *gin.Context) {
	var req model.CompleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.sessionService.CompleteSession(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AbandonSession
// @Summary Abandon a game session
// @Description Cancels an active session without settling a win
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} model.GameSession
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Router /games/sessions/{id}/abandon [post]
func (h *Handler) AbandonSession(c *gin.Context) {
	sess, err := h.sessionService.AbandonSession(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// GetSession
// @Summary Get one game session
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} model.GameSession
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Router /games/sessions/{id} [get]
func (h *Handler) GetSession(c *gin.Context) {
	sess, err := h.sessionService.GetSession(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// ListSessions
// @Summary List the authenticated user's game sessions
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param game_type query string false "Filter by game type"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.SessionListResponse
// @Router /games/sessions [get]
func (h *Handler) ListSessions(c *gin.Context) {
	var gameType model.GameType
	if s := c.Query("game_type"); s != "" {
		parsed, err := model.ParseGameType(s)
		if err != nil {
			h.handleError(c, err)
			return
		}
		gameType = parsed
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), currentUserID(c), gameType, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.SessionListResponse{
		Sessions: sessions,
		Total:    len(sessions),
		Limit:    limit,
		Offset:   offset,
	})
}
