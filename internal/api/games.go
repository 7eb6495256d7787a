package api

import (
	"errors"
	"net/http"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/constants"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/engine"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/logging"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/service"

	"github.com/gin-gonic/gin"
)

type EventChoiceRequest struct {
	ChoiceID string `json:"choice_id"`
}

type RecordChoiceRequest struct {
	Action string `json:"action"`
}

// CreateGame starts a fresh playthrough and returns its id plus the public
// snapshot of the new state.
func (h *GameHandler) CreateGame(c *gin.Context) {
	id, snap, err := h.mgr.StartGame()
	if err != nil {
		logging.Error("failed to start playthrough", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStartGame})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"game_id": id, "state": snap})
}

// GetGame returns the public snapshot for a session.
func (h *GameHandler) GetGame(c *gin.Context) {
	snap, err := h.mgr.Snapshot(c.Param("gameID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrGameNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": snap})
}

// SubmitEventChoice applies the round's A/B/C event decision.
func (h *GameHandler) SubmitEventChoice(c *gin.Context) {
	var req EventChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ChoiceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	res, err := h.mgr.SubmitEventChoice(c.Param("gameID"), req.ChoiceID)
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SubmitRecordChoice applies the round's record action.
func (h *GameHandler) SubmitRecordChoice(c *gin.Context) {
	var req RecordChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	res, err := h.mgr.SubmitRecordChoice(c.Param("gameID"), game.RecordAction(req.Action))
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// AdvanceRound moves a completed round forward, returning either the next
// phase (with any archive penalty to display) or the terminal ending.
func (h *GameHandler) AdvanceRound(c *gin.Context) {
	res, err := h.mgr.AdvanceRound(c.Param("gameID"))
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// respondGameError maps service/engine sentinel errors to HTTP statuses.
func respondGameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrGameNotFound})
	case errors.Is(err, engine.ErrWrongPhase):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrWrongPhase})
	case errors.Is(err, engine.ErrGameFinished):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrGameAlreadyFinished})
	case errors.Is(err, engine.ErrUnknownChoice):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownChoice})
	case errors.Is(err, engine.ErrUnknownAction):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownAction})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
	}
}
