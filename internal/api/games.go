package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DamienCastello/red-dawn-raid/internal/constants"
	"github.com/DamienCastello/red-dawn-raid/internal/logging"
)

// CreateGame opens a fresh lobby.
func (h *Handler) CreateGame(c *gin.Context) {
	g, err := h.games.Create()
	if err != nil {
		respondError(c, err)
		return
	}
	userID, _ := currentUser(c)
	logging.Info("game created", logging.Fields{
		constants.LogFieldGameID: g.ID,
		constants.LogFieldUserID: userID,
	})
	c.JSON(http.StatusCreated, g)
}

// ListGames returns every stored game.
func (h *Handler) ListGames(c *gin.Context) {
	games, err := h.games.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGame returns the current snapshot. Loading doubles as the poll tick
// that drives deadline-based phase progress.
func (h *Handler) GetGame(c *gin.Context) {
	g, err := h.games.Get(c.Param("gameID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// JoinGame adds the authenticated user to a lobby.
func (h *Handler) JoinGame(c *gin.Context) {
	userID, username := currentUser(c)
	gameID := c.Param("gameID")

	if err := h.players.JoinGame(userID, gameID, username); err != nil {
		respondError(c, err)
		return
	}
	g, err := h.games.Join(gameID, userID, username)
	if err != nil {
		respondError(c, err)
		return
	}
	logging.Info("player joined", logging.Fields{
		constants.LogFieldGameID: gameID,
		constants.LogFieldUserID: userID,
	})
	c.JSON(http.StatusOK, g)
}

// StartGame activates the raid: roles, hands and hit points are dealt.
func (h *Handler) StartGame(c *gin.Context) {
	userID, _ := currentUser(c)
	gameID := c.Param("gameID")

	if err := h.players.RequireInGame(userID, gameID); err != nil {
		respondError(c, err)
		return
	}
	g, err := h.games.Start(gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	logging.Info("game started", logging.Fields{
		constants.LogFieldGameID: gameID,
		constants.LogFieldPhase:  string(g.Phase),
	})
	c.JSON(http.StatusOK, g)
}
