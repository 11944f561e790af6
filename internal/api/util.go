package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DamienCastello/red-dawn-raid/internal/auth"
	"github.com/DamienCastello/red-dawn-raid/internal/constants"
	"github.com/DamienCastello/red-dawn-raid/internal/engine"
	"github.com/DamienCastello/red-dawn-raid/internal/logging"
	"github.com/DamienCastello/red-dawn-raid/internal/service"
)

// statusFor maps service and engine errors onto HTTP statuses: bad input is
// 400, identity problems are 401, denied roles are 403, missing games are 404
// and rejected game-state transitions are 409.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUsernameRequired),
		errors.Is(err, auth.ErrCredentialsRequired),
		errors.Is(err, engine.ErrCardNotInHand):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, engine.ErrNotAPlayer),
		errors.Is(err, engine.ErrNotVampire),
		errors.Is(err, service.ErrNotInGame):
		return http.StatusForbidden
	case errors.Is(err, service.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrUsernameTaken),
		errors.Is(err, service.ErrGameNotJoinable),
		errors.Is(err, service.ErrAlreadyInGame),
		errors.Is(err, engine.ErrGameAlreadyStarted),
		errors.Is(err, engine.ErrNeedTwoPlayers),
		errors.Is(err, engine.ErrGameNotActive),
		errors.Is(err, engine.ErrWeatherInProgress),
		errors.Is(err, engine.ErrHuntersPhase),
		errors.Is(err, engine.ErrVampirePhase),
		errors.Is(err, engine.ErrNotSelectionPhase),
		errors.Is(err, engine.ErrAlreadySelected),
		errors.Is(err, engine.ErrNotRevealPhase),
		errors.Is(err, engine.ErrNotInCombat),
		errors.Is(err, engine.ErrNoRollExpected),
		errors.Is(err, engine.ErrNotWeatherPhase),
		errors.Is(err, engine.ErrWeatherTooEarly),
		errors.Is(err, engine.ErrWeatherAlreadySet):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the mapped status with the error text; unexpected
// errors are logged and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error("unexpected handler error", err, logging.Fields{
			"path": c.FullPath(),
		})
		c.JSON(status, gin.H{constants.JSONKeyError: constants.ErrInternal})
		return
	}
	c.JSON(status, gin.H{constants.JSONKeyError: err.Error()})
}

// currentUser reads the identity injected by AuthRequired.
func currentUser(c *gin.Context) (id, username string) {
	if v, ok := c.Get(ctxKeyUserID); ok {
		id, _ = v.(string)
	}
	if v, ok := c.Get(ctxKeyUsername); ok {
		username, _ = v.(string)
	}
	return id, username
}
