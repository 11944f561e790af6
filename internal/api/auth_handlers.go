package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DamienCastello/red-dawn-raid/internal/constants"
	"github.com/DamienCastello/red-dawn-raid/internal/logging"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup creates a new account.
func (h *Handler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	u, err := h.auth.Signup(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	logging.Info("user signed up", logging.Fields{constants.LogFieldUserID: u.ID})
	c.JSON(http.StatusCreated, gin.H{
		"id":       u.ID,
		"username": u.Username,
	})
}

// Login checks credentials and returns a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	u, token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       u.ID,
		"username": u.Username,
		"token":    token,
	})
}
