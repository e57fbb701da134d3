package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PrayerWall/apperror"
	"github.com/PrayerWall/models"
	"github.com/PrayerWall/services"
	"github.com/PrayerWall/storage"
)

const alreadyLiftedMessage = "Already lifted up this prayer"

// GetPrayers lists moderated prayers, newest first
// GET /api/prayers
func (ctl *Controller) GetPrayers(c *gin.Context) {
	prayers, err := ctl.Store.ListPrayers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch prayers")
		return
	}
	c.JSON(http.StatusOK, prayers)
}

// CreatePrayer validates, moderates and stores a new prayer request
// POST /api/prayers
func (ctl *Controller) CreatePrayer(c *gin.Context) {
	var in models.PrayerCreate
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err, "Failed to create prayer")
		return
	}

	if err := services.ModerateContent(in.Content); err != nil {
		respondError(c, err, "Failed to create prayer")
		return
	}
	if err := services.ModerateAuthorName(in.Author_Name); err != nil {
		respondError(c, err, "Failed to create prayer")
		return
	}

	prayer, err := ctl.Store.CreatePrayer(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create prayer")
		return
	}
	c.JSON(http.StatusCreated, prayer)
}

// LiftUpPrayer records that a session prayed for a prayer and refreshes the
// prayer's count from a full recount
// POST /api/prayers/lift-up
func (ctl *Controller) LiftUpPrayer(c *gin.Context) {
	ctx := c.Request.Context()

	var in models.LiftUpCreate
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err, "Failed to lift up prayer")
		return
	}

	if _, err := ctl.Store.GetPrayer(ctx, in.Prayer_ID); err != nil {
		respondError(c, notFoundAs(err, "Prayer not found"), "Failed to lift up prayer")
		return
	}

	lifted, err := ctl.Store.HasLiftedUp(ctx, in.Prayer_ID, in.Session_ID)
	if err != nil {
		respondError(c, err, "Failed to lift up prayer")
		return
	}
	if lifted {
		respondError(c, apperror.Conflict(alreadyLiftedMessage), "")
		return
	}

	if _, err := ctl.Store.RecordLiftUp(ctx, in); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			err = apperror.Conflict(alreadyLiftedMessage)
		}
		respondError(c, err, "Failed to lift up prayer")
		return
	}

	count, err := ctl.Store.CountLiftUps(ctx, in.Prayer_ID)
	if err != nil {
		respondError(c, err, "Failed to lift up prayer")
		return
	}
	if err := ctl.Store.UpdatePrayerLiftUpCount(ctx, in.Prayer_ID, count); err != nil {
		respondError(c, err, "Failed to lift up prayer")
		return
	}

	c.JSON(http.StatusCreated, models.LiftUpResponse{Success: true, Count: count})
}

// GetPrayerStatus reports whether the session has lifted up or bookmarked
// the prayer
// GET /api/prayers/:prayer_id/status?sessionId=
func (ctl *Controller) GetPrayerStatus(c *gin.Context) {
	ctx := c.Request.Context()
	prayerID := c.Param("prayer_id")

	session, err := sessionID(c)
	if err != nil {
		respondError(c, err, "")
		return
	}

	lifted, err := ctl.Store.HasLiftedUp(ctx, prayerID, session)
	if err != nil {
		respondError(c, err, "Failed to fetch prayer status")
		return
	}
	bookmarked, err := ctl.Store.HasBookmark(ctx, prayerID, session)
	if err != nil {
		respondError(c, err, "Failed to fetch prayer status")
		return
	}

	c.JSON(http.StatusOK, models.PrayerStatus{Has_Lifted: lifted, Has_Bookmark: bookmarked})
}
