package api

import (
	"net/http"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/version"

	"github.com/gin-gonic/gin"
)

// Version returns build metadata injected via -ldflags.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
		"dirty":   version.Dirty,
	})
}
