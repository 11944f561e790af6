package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DamienCastello/red-dawn-raid/internal/constants"
)

const (
	ctxKeyUserID   = "userID"
	ctxKeyUsername = "username"
)

// AuthRequired validates the bearer token and injects identity into context.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(constants.HeaderAuthorization)
		token := strings.TrimPrefix(header, constants.BearerPrefix)
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		u, err := h.auth.RequireUser(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: err.Error()})
			return
		}
		c.Set(ctxKeyUserID, u.ID)
		c.Set(ctxKeyUsername, u.Username)
		c.Next()
	}
}
