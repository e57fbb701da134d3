package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/PrayerWall/models"
)

// MemStorage keeps everything in process memory. State is lost on restart.
type MemStorage struct {
	opts options

	mu             sync.RWMutex
	prayers        []models.Prayer
	questions      []models.Question
	comments       []models.Comment
	prayerComments []models.PrayerComment
	liftUps        []models.LiftUp
	bookmarks      []models.Bookmark
	inspirations   []models.DailyInspiration
}

var _ Storage = (*MemStorage)(nil)

func NewMemStorage(opts ...Option) *MemStorage {
	return &MemStorage{opts: buildOptions(opts)}
}

func (s *MemStorage) Kind() string {
	return "Mem"
}

// Prayers

func (s *MemStorage) ListPrayers(ctx context.Context) ([]models.Prayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Prayer, 0, len(s.prayers))
	for i := len(s.prayers) - 1; i >= 0; i-- {
		if s.prayers[i].Is_Moderated {
			out = append(out, s.prayers[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created_At.After(out[j].Created_At)
	})
	return out, nil
}

func (s *MemStorage) GetPrayer(ctx context.Context, id string) (models.Prayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.prayerIndex(id); i >= 0 {
		return s.prayers[i], nil
	}
	return models.Prayer{}, ErrNotFound
}

func (s *MemStorage) CreatePrayer(ctx context.Context, in models.PrayerCreate) (models.Prayer, error) {
	prayer := s.opts.newPrayer(in)

	s.mu.Lock()
	s.prayers = append(s.prayers, prayer)
	s.mu.Unlock()

	return prayer, nil
}

func (s *MemStorage) UpdatePrayerLiftUpCount(ctx context.Context, id string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.prayerIndex(id); i >= 0 {
		s.prayers[i].Lift_Up_Count = count
	}
	return nil
}

// prayerIndex must be called with mu held.
func (s *MemStorage) prayerIndex(id string) int {
	for i := range s.prayers {
		if s.prayers[i].Prayer_ID == id {
			return i
		}
	}
	return -1
}

// Questions

func (s *MemStorage) ListQuestions(ctx context.Context) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Question, 0, len(s.questions))
	for i := len(s.questions) - 1; i >= 0; i-- {
		if s.questions[i].Is_Moderated {
			out = append(out, s.questions[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created_At.After(out[j].Created_At)
	})
	return out, nil
}

func (s *MemStorage) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, q := range s.questions {
		if q.Question_ID == id {
			return q, nil
		}
	}
	return models.Question{}, ErrNotFound
}

func (s *MemStorage) CreateQuestion(ctx context.Context, in models.QuestionCreate) (models.Question, error) {
	question := s.opts.newQuestion(in)

	s.mu.Lock()
	s.questions = append(s.questions, question)
	s.mu.Unlock()

	return question, nil
}

// Comments

func (s *MemStorage) ListCommentsByQuestion(ctx context.Context, questionID string) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.Question_ID == questionID && c.Is_Moderated {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created_At.Before(out[j].Created_At)
	})
	return out, nil
}

func (s *MemStorage) CreateComment(ctx context.Context, questionID string, in models.CommentCreate) (models.Comment, error) {
	comment := s.opts.newComment(questionID, in)

	s.mu.Lock()
	s.comments = append(s.comments, comment)
	s.mu.Unlock()

	return comment, nil
}

func (s *MemStorage) ListCommentsByPrayer(ctx context.Context, prayerID string) ([]models.PrayerComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PrayerComment, 0)
	for _, c := range s.prayerComments {
		if c.Prayer_ID == prayerID && c.Is_Moderated {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created_At.Before(out[j].Created_At)
	})
	return out, nil
}

func (s *MemStorage) CreatePrayerComment(ctx context.Context, prayerID string, in models.CommentCreate) (models.PrayerComment, error) {
	comment := s.opts.newPrayerComment(prayerID, in)

	s.mu.Lock()
	s.prayerComments = append(s.prayerComments, comment)
	s.mu.Unlock()

	return comment, nil
}

// Lift ups

func (s *MemStorage) HasLiftedUp(ctx context.Context, prayerID, sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasLiftUp(prayerID, sessionID), nil
}

func (s *MemStorage) hasLiftUp(prayerID, sessionID string) bool {
	for _, l := range s.liftUps {
		if l.Prayer_ID == prayerID && l.Session_ID == sessionID {
			return true
		}
	}
	return false
}

func (s *MemStorage) RecordLiftUp(ctx context.Context, in models.LiftUpCreate) (models.LiftUp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasLiftUp(in.Prayer_ID, in.Session_ID) {
		return models.LiftUp{}, ErrDuplicate
	}
	liftUp := s.opts.newLiftUp(in)
	s.liftUps = append(s.liftUps, liftUp)
	return liftUp, nil
}

func (s *MemStorage) CountLiftUps(ctx context.Context, prayerID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, l := range s.liftUps {
		if l.Prayer_ID == prayerID {
			count++
		}
	}
	return count, nil
}

// Bookmarks

func (s *MemStorage) HasBookmark(ctx context.Context, prayerID, sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bookmarkIndex(prayerID, sessionID) >= 0, nil
}

func (s *MemStorage) bookmarkIndex(prayerID, sessionID string) int {
	for i, b := range s.bookmarks {
		if b.Prayer_ID == prayerID && b.Session_ID == sessionID {
			return i
		}
	}
	return -1
}

func (s *MemStorage) CreateBookmark(ctx context.Context, in models.BookmarkCreate) (models.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bookmarkIndex(in.Prayer_ID, in.Session_ID) >= 0 {
		return models.Bookmark{}, ErrDuplicate
	}
	bookmark := s.opts.newBookmark(in)
	s.bookmarks = append(s.bookmarks, bookmark)
	return bookmark, nil
}

func (s *MemStorage) DeleteBookmark(ctx context.Context, prayerID, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.bookmarkIndex(prayerID, sessionID); i >= 0 {
		s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)
	}
	return nil
}

// ListBookmarks returns the session's bookmarks, newest first.
func (s *MemStorage) ListBookmarks(ctx context.Context, sessionID string) ([]models.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessionBookmarks(sessionID), nil
}

func (s *MemStorage) sessionBookmarks(sessionID string) []models.Bookmark {
	out := make([]models.Bookmark, 0)
	for i := len(s.bookmarks) - 1; i >= 0; i-- {
		if s.bookmarks[i].Session_ID == sessionID {
			out = append(out, s.bookmarks[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created_At.After(out[j].Created_At)
	})
	return out
}

func (s *MemStorage) ListBookmarkedPrayers(ctx context.Context, sessionID string) ([]models.Prayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Prayer, 0)
	for _, b := range s.sessionBookmarks(sessionID) {
		if i := s.prayerIndex(b.Prayer_ID); i >= 0 {
			out = append(out, s.prayers[i])
		}
	}
	return out, nil
}

// Daily inspirations

func (s *MemStorage) GetDailyInspiration(ctx context.Context) (models.DailyInspiration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inspiration, ok := models.PickDailyInspiration(s.inspirations, s.opts.now())
	if !ok {
		return models.DailyInspiration{}, ErrNotFound
	}
	return inspiration, nil
}

func (s *MemStorage) CreateDailyInspiration(ctx context.Context, in models.DailyInspirationCreate) (models.DailyInspiration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inspiration := s.opts.newInspiration(len(s.inspirations)+1, in)
	s.inspirations = append(s.inspirations, inspiration)
	return inspiration, nil
}

func (s *MemStorage) ListInspirations(ctx context.Context) ([]models.DailyInspiration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DailyInspiration, len(s.inspirations))
	copy(out, s.inspirations)
	return out, nil
}

func (s *MemStorage) Counts(ctx context.Context) (models.StorageCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.StorageCounts{
		Prayers:           len(s.prayers),
		Questions:         len(s.questions),
		Prayer_Comments:   len(s.prayerComments),
		Question_Comments: len(s.comments),
		Bookmarks:         len(s.bookmarks),
		Lift_Ups:          len(s.liftUps),
		Inspirations:      len(s.inspirations),
	}, nil
}
