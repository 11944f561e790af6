package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DamienCastello/red-dawn-raid/internal/constants"
	"github.com/DamienCastello/red-dawn-raid/internal/game"
)

type selectLocationRequest struct {
	Card string `json:"card"`
}

// requireParticipant rejects callers that are not members of the game and
// returns the caller's player id otherwise.
func (h *Handler) requireParticipant(c *gin.Context) (userID, gameID string, ok bool) {
	userID, _ = currentUser(c)
	gameID = c.Param("gameID")
	if err := h.players.RequireInGame(userID, gameID); err != nil {
		respondError(c, err)
		return "", "", false
	}
	return userID, gameID, true
}

// SelectLocation plays one location card from the caller's hand.
func (h *Handler) SelectLocation(c *gin.Context) {
	userID, gameID, ok := h.requireParticipant(c)
	if !ok {
		return
	}
	var req selectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Card == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCardRequired})
		return
	}
	h.runAction(c, func() (*game.Game, error) {
		return h.games.SelectLocation(gameID, userID, req.Card)
	})
}

// Skip casts the caller's vote to end the reveal window early.
func (h *Handler) Skip(c *gin.Context) {
	userID, gameID, ok := h.requireParticipant(c)
	if !ok {
		return
	}
	h.runAction(c, func() (*game.Game, error) {
		return h.games.Skip(gameID, userID)
	})
}

// RollDice draws the caller's die in the current duel.
func (h *Handler) RollDice(c *gin.Context) {
	userID, gameID, ok := h.requireParticipant(c)
	if !ok {
		return
	}
	h.runAction(c, func() (*game.Game, error) {
		return h.games.RollDice(gameID, userID)
	})
}

// RollWeather performs the vampire's weather roll for the raid.
func (h *Handler) RollWeather(c *gin.Context) {
	userID, gameID, ok := h.requireParticipant(c)
	if !ok {
		return
	}
	h.runAction(c, func() (*game.Game, error) {
		return h.games.RollWeather(gameID, userID)
	})
}

func (h *Handler) runAction(c *gin.Context, fn func() (*game.Game, error)) {
	g, err := fn()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}
