package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PrayerWall/models"
)

// GET /api/health
func (ctl *Controller) Health(c *gin.Context) {
	counts, err := ctl.Store.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Health check failed")
		return
	}
	c.JSON(http.StatusOK, models.HealthResponse{Storage: ctl.Store.Kind(), Counts: counts})
}
