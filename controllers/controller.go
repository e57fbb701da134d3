package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/PrayerWall/apperror"
	"github.com/PrayerWall/models"
	"github.com/PrayerWall/storage"
)

// Controller serves the REST API on top of a single storage backend.
type Controller struct {
	Store storage.Storage
}

func New(store storage.Storage) *Controller {
	return &Controller{Store: store}
}

// respondError writes err as {"error": ...}. Errors that are not already an
// AppError become Internal with the fallback message; their cause is logged,
// never sent.
func respondError(c *gin.Context, err error, fallback string) {
	var ae *apperror.AppError
	if !errors.As(err, &ae) {
		ae = apperror.Internal(fallback, err)
	}

	status := apperror.Status(ae)
	if status == http.StatusInternalServerError {
		log.Printf("%s: %v", apperror.Message(ae, fallback), ae.Err)
	}
	c.JSON(status, gin.H{"error": apperror.Message(ae, fallback)})
}

func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return apperror.Validation(models.ValidationMessage(err))
	}
	return nil
}

func sessionID(c *gin.Context) (string, error) {
	id := c.Query("sessionId")
	if strings.TrimSpace(id) == "" {
		return "", apperror.MissingSession()
	}
	return id, nil
}

// notFoundAs converts storage.ErrNotFound into a 404 with message.
func notFoundAs(err error, message string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperror.NotFound(message)
	}
	return err
}
