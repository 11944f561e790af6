package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DamienCastello/red-dawn-raid/internal/version"
)

// Version returns build metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
	})
}
