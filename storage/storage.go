// Package storage holds the persistence contract for the prayer wall and its
// two backends: MemStorage for development and SQLStorage for a relational
// database.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/PrayerWall/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type PrayerStore interface {
	ListPrayers(ctx context.Context) ([]models.Prayer, error)
	GetPrayer(ctx context.Context, id string) (models.Prayer, error)
	CreatePrayer(ctx context.Context, in models.PrayerCreate) (models.Prayer, error)
	UpdatePrayerLiftUpCount(ctx context.Context, id string, count int) error
}

type QuestionStore interface {
	ListQuestions(ctx context.Context) ([]models.Question, error)
	GetQuestion(ctx context.Context, id string) (models.Question, error)
	CreateQuestion(ctx context.Context, in models.QuestionCreate) (models.Question, error)
}

type CommentStore interface {
	ListCommentsByQuestion(ctx context.Context, questionID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, questionID string, in models.CommentCreate) (models.Comment, error)
	ListCommentsByPrayer(ctx context.Context, prayerID string) ([]models.PrayerComment, error)
	CreatePrayerComment(ctx context.Context, prayerID string, in models.CommentCreate) (models.PrayerComment, error)
}

// LiftUpStore tracks which sessions have prayed for which prayers.
// RecordLiftUp returns ErrDuplicate when the pair already exists.
type LiftUpStore interface {
	HasLiftedUp(ctx context.Context, prayerID, sessionID string) (bool, error)
	RecordLiftUp(ctx context.Context, in models.LiftUpCreate) (models.LiftUp, error)
	CountLiftUps(ctx context.Context, prayerID string) (int, error)
}

// BookmarkStore tracks saved prayers per session. CreateBookmark returns
// ErrDuplicate when the pair already exists; DeleteBookmark of a missing pair
// is not an error.
type BookmarkStore interface {
	HasBookmark(ctx context.Context, prayerID, sessionID string) (bool, error)
	CreateBookmark(ctx context.Context, in models.BookmarkCreate) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, prayerID, sessionID string) error
	ListBookmarks(ctx context.Context, sessionID string) ([]models.Bookmark, error)
	ListBookmarkedPrayers(ctx context.Context, sessionID string) ([]models.Prayer, error)
}

type InspirationStore interface {
	GetDailyInspiration(ctx context.Context) (models.DailyInspiration, error)
	CreateDailyInspiration(ctx context.Context, in models.DailyInspirationCreate) (models.DailyInspiration, error)
	ListInspirations(ctx context.Context) ([]models.DailyInspiration, error)
}

// Storage is everything the HTTP layer needs. Both backends satisfy it with
// the same observable behavior.
type Storage interface {
	PrayerStore
	QuestionStore
	CommentStore
	LiftUpStore
	BookmarkStore
	InspirationStore

	// Kind names the backend for diagnostics.
	Kind() string
	Counts(ctx context.Context) (models.StorageCounts, error)
}

type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
}

// WithClock overrides the time source used for createdAt stamps and for
// choosing the daily inspiration.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator overrides how record ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// stamp truncates to microseconds so both backends report the same instant.
func (o options) stamp() time.Time {
	return o.now().UTC().Truncate(time.Microsecond)
}
