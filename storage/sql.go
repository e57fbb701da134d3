package storage

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/PrayerWall/models"
)

const (
	prayersTable        = "prayers"
	questionsTable      = "questions"
	commentsTable       = "comments"
	prayerCommentsTable = "prayer_comments"
	liftUpsTable        = "lift_ups"
	bookmarksTable      = "bookmarks"
	inspirationsTable   = "daily_inspirations"
)

// SQLStorage persists to a relational database through goqu. Every method
// issues single statements; lift-up and bookmark inserts rely on the unique
// (prayer_id, session_id) indexes and never create duplicates.
type SQLStorage struct {
	db   *goqu.Database
	opts options
}

var _ Storage = (*SQLStorage)(nil)

func NewSQLStorage(db *goqu.Database, opts ...Option) *SQLStorage {
	return &SQLStorage{db: db, opts: buildOptions(opts)}
}

func (s *SQLStorage) Kind() string {
	switch s.db.Dialect() {
	case "postgres":
		return "Postgres"
	case "sqlite3":
		return "SQLite"
	default:
		return s.db.Dialect()
	}
}

// Prayers

func (s *SQLStorage) ListPrayers(ctx context.Context) ([]models.Prayer, error) {
	prayers := []models.Prayer{}
	err := s.db.From(prayersTable).
		Where(goqu.C("is_moderated").IsTrue()).
		Order(goqu.C("created_at").Desc()).
		ScanStructsContext(ctx, &prayers)
	if err != nil {
		return nil, fmt.Errorf("list prayers: %w", err)
	}
	return prayers, nil
}

func (s *SQLStorage) GetPrayer(ctx context.Context, id string) (models.Prayer, error) {
	var prayer models.Prayer
	found, err := s.db.From(prayersTable).
		Where(goqu.C("id").Eq(id)).
		ScanStructContext(ctx, &prayer)
	if err != nil {
		return models.Prayer{}, fmt.Errorf("get prayer: %w", err)
	}
	if !found {
		return models.Prayer{}, ErrNotFound
	}
	return prayer, nil
}

func (s *SQLStorage) CreatePrayer(ctx context.Context, in models.PrayerCreate) (models.Prayer, error) {
	prayer := s.opts.newPrayer(in)
	_, err := s.db.Insert(prayersTable).Rows(prayer).Executor().ExecContext(ctx)
	if err != nil {
		return models.Prayer{}, fmt.Errorf("create prayer: %w", err)
	}
	return prayer, nil
}

func (s *SQLStorage) UpdatePrayerLiftUpCount(ctx context.Context, id string, count int) error {
	_, err := s.db.Update(prayersTable).
		Set(goqu.Record{"lift_up_count": count}).
		Where(goqu.C("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("update lift up count: %w", err)
	}
	return nil
}

// Questions

func (s *SQLStorage) ListQuestions(ctx context.Context) ([]models.Question, error) {
	questions := []models.Question{}
	err := s.db.From(questionsTable).
		Where(goqu.C("is_moderated").IsTrue()).
		Order(goqu.C("created_at").Desc()).
		ScanStructsContext(ctx, &questions)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (s *SQLStorage) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	var question models.Question
	found, err := s.db.From(questionsTable).
		Where(goqu.C("id").Eq(id)).
		ScanStructContext(ctx, &question)
	if err != nil {
		return models.Question{}, fmt.Errorf("get question: %w", err)
	}
	if !found {
		return models.Question{}, ErrNotFound
	}
	return question, nil
}

func (s *SQLStorage) CreateQuestion(ctx context.Context, in models.QuestionCreate) (models.Question, error) {
	question := s.opts.newQuestion(in)
	_, err := s.db.Insert(questionsTable).Rows(question).Executor().ExecContext(ctx)
	if err != nil {
		return models.Question{}, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

// Comments

func (s *SQLStorage) ListCommentsByQuestion(ctx context.Context, questionID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.db.From(commentsTable).
		Where(
			goqu.C("question_id").Eq(questionID),
			goqu.C("is_moderated").IsTrue(),
		).
		Order(goqu.C("created_at").Asc()).
		ScanStructsContext(ctx, &comments)
	if err != nil {
		return nil, fmt.Errorf("list question comments: %w", err)
	}
	return comments, nil
}

func (s *SQLStorage) CreateComment(ctx context.Context, questionID string, in models.CommentCreate) (models.Comment, error) {
	comment := s.opts.newComment(questionID, in)
	_, err := s.db.Insert(commentsTable).Rows(comment).Executor().ExecContext(ctx)
	if err != nil {
		return models.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *SQLStorage) ListCommentsByPrayer(ctx context.Context, prayerID string) ([]models.PrayerComment, error) {
	comments := []models.PrayerComment{}
	err := s.db.From(prayerCommentsTable).
		Where(
			goqu.C("prayer_id").Eq(prayerID),
			goqu.C("is_moderated").IsTrue(),
		).
		Order(goqu.C("created_at").Asc()).
		ScanStructsContext(ctx, &comments)
	if err != nil {
		return nil, fmt.Errorf("list prayer comments: %w", err)
	}
	return comments, nil
}

func (s *SQLStorage) CreatePrayerComment(ctx context.Context, prayerID string, in models.CommentCreate) (models.PrayerComment, error) {
	comment := s.opts.newPrayerComment(prayerID, in)
	_, err := s.db.Insert(prayerCommentsTable).Rows(comment).Executor().ExecContext(ctx)
	if err != nil {
		return models.PrayerComment{}, fmt.Errorf("create prayer comment: %w", err)
	}
	return comment, nil
}

// Lift ups

func (s *SQLStorage) HasLiftedUp(ctx context.Context, prayerID, sessionID string) (bool, error) {
	count, err := s.db.From(liftUpsTable).
		Where(goqu.Ex{"prayer_id": prayerID, "session_id": sessionID}).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("check lift up: %w", err)
	}
	return count > 0, nil
}

func (s *SQLStorage) RecordLiftUp(ctx context.Context, in models.LiftUpCreate) (models.LiftUp, error) {
	liftUp := s.opts.newLiftUp(in)
	if err := s.insertOnce(ctx, liftUpsTable, liftUp); err != nil {
		return models.LiftUp{}, fmt.Errorf("record lift up: %w", err)
	}
	return liftUp, nil
}

func (s *SQLStorage) CountLiftUps(ctx context.Context, prayerID string) (int, error) {
	count, err := s.db.From(liftUpsTable).
		Where(goqu.C("prayer_id").Eq(prayerID)).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("count lift ups: %w", err)
	}
	return int(count), nil
}

// insertOnce inserts row unless it collides with a unique index, in which
// case it reports ErrDuplicate.
func (s *SQLStorage) insertOnce(ctx context.Context, table string, row interface{}) error {
	res, err := s.db.Insert(table).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDuplicate
	}
	return nil
}

// Bookmarks

func (s *SQLStorage) HasBookmark(ctx context.Context, prayerID, sessionID string) (bool, error) {
	count, err := s.db.From(bookmarksTable).
		Where(goqu.Ex{"prayer_id": prayerID, "session_id": sessionID}).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("check bookmark: %w", err)
	}
	return count > 0, nil
}

func (s *SQLStorage) CreateBookmark(ctx context.Context, in models.BookmarkCreate) (models.Bookmark, error) {
	bookmark := s.opts.newBookmark(in)
	if err := s.insertOnce(ctx, bookmarksTable, bookmark); err != nil {
		return models.Bookmark{}, fmt.Errorf("create bookmark: %w", err)
	}
	return bookmark, nil
}

func (s *SQLStorage) DeleteBookmark(ctx context.Context, prayerID, sessionID string) error {
	_, err := s.db.Delete(bookmarksTable).
		Where(goqu.Ex{"prayer_id": prayerID, "session_id": sessionID}).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}

func (s *SQLStorage) ListBookmarks(ctx context.Context, sessionID string) ([]models.Bookmark, error) {
	bookmarks := []models.Bookmark{}
	err := s.db.From(bookmarksTable).
		Where(goqu.C("session_id").Eq(sessionID)).
		Order(goqu.C("created_at").Desc()).
		ScanStructsContext(ctx, &bookmarks)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (s *SQLStorage) ListBookmarkedPrayers(ctx context.Context, sessionID string) ([]models.Prayer, error) {
	prayers := []models.Prayer{}
	err := s.db.From(goqu.T(prayersTable).As("p")).
		Select(goqu.T("p").All()).
		Join(
			goqu.T(bookmarksTable).As("b"),
			goqu.On(goqu.I("b.prayer_id").Eq(goqu.I("p.id"))),
		).
		Where(goqu.I("b.session_id").Eq(sessionID)).
		Order(goqu.I("b.created_at").Desc()).
		ScanStructsContext(ctx, &prayers)
	if err != nil {
		return nil, fmt.Errorf("list bookmarked prayers: %w", err)
	}
	return prayers, nil
}

// Daily inspirations

func (s *SQLStorage) GetDailyInspiration(ctx context.Context) (models.DailyInspiration, error) {
	inspirations, err := s.ListInspirations(ctx)
	if err != nil {
		return models.DailyInspiration{}, err
	}
	inspiration, ok := models.PickDailyInspiration(inspirations, s.opts.now())
	if !ok {
		return models.DailyInspiration{}, ErrNotFound
	}
	return inspiration, nil
}

func (s *SQLStorage) CreateDailyInspiration(ctx context.Context, in models.DailyInspirationCreate) (models.DailyInspiration, error) {
	var maxSeq int
	_, err := s.db.From(inspirationsTable).
		Select(goqu.COALESCE(goqu.MAX("seq"), 0)).
		ScanValContext(ctx, &maxSeq)
	if err != nil {
		return models.DailyInspiration{}, fmt.Errorf("next inspiration seq: %w", err)
	}

	inspiration := s.opts.newInspiration(maxSeq+1, in)
	_, err = s.db.Insert(inspirationsTable).Rows(inspiration).Executor().ExecContext(ctx)
	if err != nil {
		return models.DailyInspiration{}, fmt.Errorf("create inspiration: %w", err)
	}
	return inspiration, nil
}

func (s *SQLStorage) ListInspirations(ctx context.Context) ([]models.DailyInspiration, error) {
	inspirations := []models.DailyInspiration{}
	err := s.db.From(inspirationsTable).
		Order(goqu.C("seq").Asc()).
		ScanStructsContext(ctx, &inspirations)
	if err != nil {
		return nil, fmt.Errorf("list inspirations: %w", err)
	}
	return inspirations, nil
}

func (s *SQLStorage) Counts(ctx context.Context) (models.StorageCounts, error) {
	var counts models.StorageCounts
	targets := []struct {
		table string
		dest  *int
	}{
		{prayersTable, &counts.Prayers},
		{questionsTable, &counts.Questions},
		{prayerCommentsTable, &counts.Prayer_Comments},
		{commentsTable, &counts.Question_Comments},
		{bookmarksTable, &counts.Bookmarks},
		{liftUpsTable, &counts.Lift_Ups},
		{inspirationsTable, &counts.Inspirations},
	}
	for _, t := range targets {
		n, err := s.db.From(t.table).CountContext(ctx)
		if err != nil {
			return models.StorageCounts{}, fmt.Errorf("count %s: %w", t.table, err)
		}
		*t.dest = int(n)
	}
	return counts, nil
}
