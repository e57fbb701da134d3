package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PrayerWall/models"
	"github.com/PrayerWall/services"
)

// GetQuestionComments lists a question's comments in conversation order
// GET /api/questions/:question_id/comments
func (ctl *Controller) GetQuestionComments(c *gin.Context) {
	comments, err := ctl.Store.ListCommentsByQuestion(c.Request.Context(), c.Param("question_id"))
	if err != nil {
		respondError(c, err, "Failed to fetch comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// POST /api/questions/:question_id/comments
func (ctl *Controller) CreateQuestionComment(c *gin.Context) {
	ctx := c.Request.Context()
	questionID := c.Param("question_id")

	var in models.CommentCreate
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err, "Failed to create comment")
		return
	}
	if err := services.ModerateContent(in.Content); err != nil {
		respondError(c, err, "Failed to create comment")
		return
	}

	if _, err := ctl.Store.GetQuestion(ctx, questionID); err != nil {
		respondError(c, notFoundAs(err, "Question not found"), "Failed to create comment")
		return
	}

	comment, err := ctl.Store.CreateComment(ctx, questionID, in)
	if err != nil {
		respondError(c, err, "Failed to create comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GetPrayerComments lists a prayer's comments in conversation order
// GET /api/prayers/:prayer_id/comments
func (ctl *Controller) GetPrayerComments(c *gin.Context) {
	comments, err := ctl.Store.ListCommentsByPrayer(c.Request.Context(), c.Param("prayer_id"))
	if err != nil {
		respondError(c, err, "Failed to fetch comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// POST /api/prayers/:prayer_id/comments
func (ctl *Controller) CreatePrayerComment(c *gin.Context) {
	ctx := c.Request.Context()
	prayerID := c.Param("prayer_id")

	var in models.CommentCreate
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err, "Failed to create comment")
		return
	}
	if err := services.ModerateContent(in.Content); err != nil {
		respondError(c, err, "Failed to create comment")
		return
	}

	if _, err := ctl.Store.GetPrayer(ctx, prayerID); err != nil {
		respondError(c, notFoundAs(err, "Prayer not found"), "Failed to create comment")
		return
	}

	comment, err := ctl.Store.CreatePrayerComment(ctx, prayerID, in)
	if err != nil {
		respondError(c, err, "Failed to create comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}
