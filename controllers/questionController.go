package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PrayerWall/models"
	"github.com/PrayerWall/services"
)

// GET /api/questions
func (ctl *Controller) GetQuestions(c *gin.Context) {
	questions, err := ctl.Store.ListQuestions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CreateQuestion moderates both title and content before storing
// POST /api/questions
func (ctl *Controller) CreateQuestion(c *gin.Context) {
	var in models.QuestionCreate
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err, "Failed to create question")
		return
	}

	for _, text := range []string{in.Title, in.Content} {
		if err := services.ModerateContent(text); err != nil {
			respondError(c, err, "Failed to create question")
			return
		}
	}

	question, err := ctl.Store.CreateQuestion(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create question")
		return
	}
	c.JSON(http.StatusCreated, question)
}
