// Package api exposes the HTTP surface: auth, lobby and raid actions.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/DamienCastello/red-dawn-raid/internal/auth"
	"github.com/DamienCastello/red-dawn-raid/internal/constants"
	"github.com/DamienCastello/red-dawn-raid/internal/service"
)

// Handler groups every HTTP handler with the services they depend on.
type Handler struct {
	games   *service.GameService
	players *service.PlayerService
	auth    *auth.Service
}

// NewHandler creates a Handler over the given services.
func NewHandler(games *service.GameService, players *service.PlayerService, authSvc *auth.Service) *Handler {
	return &Handler{games: games, players: players, auth: authSvc}
}

// RegisterRoutes mounts all API routes on the given router group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST(constants.RouteAuthSignup, h.Signup)
	r.POST(constants.RouteAuthLogin, h.Login)
	r.GET(constants.RouteVersion, Version)

	authed := r.Group("", h.AuthRequired())
	authed.POST(constants.RouteGames, h.CreateGame)
	authed.GET(constants.RouteGames, h.ListGames)
	authed.GET(constants.RouteGameByID, h.GetGame)
	authed.POST(constants.RouteGameJoin, h.JoinGame)
	authed.POST(constants.RouteGameStart, h.StartGame)
	authed.POST(constants.RouteGameSelectLocation, h.SelectLocation)
	authed.POST(constants.RouteGameSkip, h.Skip)
	authed.POST(constants.RouteGameRollDice, h.RollDice)
	authed.POST(constants.RouteGameRollWeather, h.RollWeather)
}
