package controllers

import (
	"context"
	"testing"

	"github.com/PrayerWall/models"
	"github.com/PrayerWall/storage"
)

// Test fixture data for use in tests

func MockPrayerCreate() models.PrayerCreate {
	category := "Health"
	return models.PrayerCreate{
		Content:  "Please pray for my grandmother's surgery tomorrow",
		Category: &category,
	}
}

func MockQuestionCreate() models.QuestionCreate {
	return models.QuestionCreate{
		Title:   "How do I start praying?",
		Content: "I never know what to say when I pray.",
	}
}

// SeedPrayer stores a prayer and fails the test if that is not possible
func SeedPrayer(t *testing.T, store storage.Storage) models.Prayer {
	t.Helper()
	prayer, err := store.CreatePrayer(context.Background(), MockPrayerCreate())
	if err != nil {
		t.Fatalf("Failed to seed prayer: %v", err)
	}
	return prayer
}

// SeedQuestion stores a question and fails the test if that is not possible
func SeedQuestion(t *testing.T, store storage.Storage) models.Question {
	t.Helper()
	question, err := store.CreateQuestion(context.Background(), MockQuestionCreate())
	if err != nil {
		t.Fatalf("Failed to seed question: %v", err)
	}
	return question
}
