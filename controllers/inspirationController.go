package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDailyInspiration returns today's inspiration. The pick only changes when
// the calendar day or the set of inspirations changes.
// GET /api/daily-inspiration
func (ctl *Controller) GetDailyInspiration(c *gin.Context) {
	inspiration, err := ctl.Store.GetDailyInspiration(c.Request.Context())
	if err != nil {
		respondError(c, notFoundAs(err, "No inspiration found"), "Failed to fetch daily inspiration")
		return
	}
	c.JSON(http.StatusOK, inspiration)
}
