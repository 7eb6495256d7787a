package api

import (
	"net/http"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/constants"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/logging"

	"github.com/gin-gonic/gin"
)

// EndingStats returns the aggregate ending distribution over all finished
// playthroughs.
func (h *GameHandler) EndingStats(c *gin.Context) {
	stats, err := h.repo.EndingStats()
	if err != nil {
		logging.Error("failed to fetch ending stats", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, gin.H{"endings": stats})
}
