package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PrayerWall/apperror"
	"github.com/PrayerWall/models"
	"github.com/PrayerWall/storage"
)

const alreadyBookmarkedMessage = "Prayer already bookmarked"

// GET /api/bookmarks/prayers?sessionId=
func (ctl *Controller) GetBookmarkedPrayers(c *gin.Context) {
	session, err := sessionID(c)
	if err != nil {
		respondError(c, err, "")
		return
	}

	prayers, err := ctl.Store.ListBookmarkedPrayers(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "Failed to fetch bookmarked prayers")
		return
	}
	c.JSON(http.StatusOK, prayers)
}

// POST /api/bookmarks
func (ctl *Controller) CreateBookmark(c *gin.Context) {
	ctx := c.Request.Context()

	var in models.BookmarkCreate
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err, "Failed to create bookmark")
		return
	}

	if _, err := ctl.Store.GetPrayer(ctx, in.Prayer_ID); err != nil {
		respondError(c, notFoundAs(err, "Prayer not found"), "Failed to create bookmark")
		return
	}

	exists, err := ctl.Store.HasBookmark(ctx, in.Prayer_ID, in.Session_ID)
	if err != nil {
		respondError(c, err, "Failed to create bookmark")
		return
	}
	if exists {
		respondError(c, apperror.Conflict(alreadyBookmarkedMessage), "")
		return
	}

	bookmark, err := ctl.Store.CreateBookmark(ctx, in)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			err = apperror.Conflict(alreadyBookmarkedMessage)
		}
		respondError(c, err, "Failed to create bookmark")
		return
	}
	c.JSON(http.StatusCreated, bookmark)
}

// DeleteBookmark removes the session's bookmark; removing a missing bookmark
// still succeeds
// DELETE /api/bookmarks/:prayer_id?sessionId=
func (ctl *Controller) DeleteBookmark(c *gin.Context) {
	session, err := sessionID(c)
	if err != nil {
		respondError(c, err, "")
		return
	}

	if err := ctl.Store.DeleteBookmark(c.Request.Context(), c.Param("prayer_id"), session); err != nil {
		respondError(c, err, "Failed to delete bookmark")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
