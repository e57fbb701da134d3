package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrayerWall/models"
	"github.com/PrayerWall/services"
)

func TestCreateQuestion(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedError  string
		expectAnon     bool
		expectedAuthor string
	}{
		{
			name:           "valid question",
			body:           MockQuestionCreate(),
			expectedStatus: http.StatusCreated,
			expectAnon:     true,
		},
		{
			name:           "named question",
			body:           map[string]string{"title": "How do I start praying?", "content": "I never know what to say when I pray.", "authorName": "Sam"},
			expectedStatus: http.StatusCreated,
			expectAnon:     false,
			expectedAuthor: "Sam",
		},
		{
			name:           "empty author name is anonymous",
			body:           map[string]string{"title": "How do I start praying?", "content": "I never know what to say when I pray.", "authorName": ""},
			expectedStatus: http.StatusCreated,
			expectAnon:     true,
		},
		{
			name:           "title too short is reported first",
			body:           map[string]string{"title": "Hey", "content": "short"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Title must be at least 5 characters",
		},
		{
			name:           "content too short",
			body:           map[string]string{"title": "How to pray?", "content": "short"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Question must be at least 10 characters",
		},
		{
			name:           "profane title",
			body:           map[string]string{"title": "What the hell", "content": "Is this even allowed to ask?"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  services.ContentModerationMessage,
		},
		{
			name:           "profane content",
			body:           map[string]string{"title": "A question", "content": "Why do people hate each other?"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  services.ContentModerationMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl, _ := SetupTestStore()
			c, w := SetupTestContext()
			SetJSONRequest(c, http.MethodPost, "/api/questions", tt.body)

			ctl.CreateQuestion(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, DecodeError(w))
				return
			}
			var question models.Question
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &question))
			assert.NotEmpty(t, question.Question_ID)
			assert.Equal(t, tt.expectAnon, question.Is_Anonymous)
			if tt.expectedAuthor == "" {
				assert.Nil(t, question.Author_Name)
				return
			}
			require.NotNil(t, question.Author_Name)
			assert.Equal(t, tt.expectedAuthor, *question.Author_Name)
		})
	}
}

func TestGetQuestions(t *testing.T) {
	ctl, store := SetupTestStore()

	c, w := SetupTestContext()
	SetJSONRequest(c, http.MethodGet, "/api/questions", nil)
	ctl.GetQuestions(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	SeedQuestion(t, store)

	c, w = SetupTestContext()
	SetJSONRequest(c, http.MethodGet, "/api/questions", nil)
	ctl.GetQuestions(c)

	var questions []models.Question
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	assert.Len(t, questions, 1)
}

func TestGetQuestionsDatabaseError(t *testing.T) {
	ctl, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))

	c, w := SetupTestContext()
	SetJSONRequest(c, http.MethodGet, "/api/questions", nil)
	ctl.GetQuestions(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch questions", DecodeError(w))
}
