package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrayerWall/models"
)

var prayerColumns = []string{
	"id", "content", "category", "is_anonymous", "author_name",
	"lift_up_count", "is_moderated", "created_at",
}

func setupPostgresMock(t *testing.T) (*SQLStorage, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	fixed := time.Date(2024, time.May, 5, 12, 0, 0, 0, time.UTC)
	store := NewSQLStorage(
		goqu.New("postgres", db),
		WithClock(func() time.Time { return fixed }),
		WithIDGenerator(func() string { return "id-1" }),
	)
	return store, mock
}

func TestSQLStorageKind(t *testing.T) {
	store, _ := setupPostgresMock(t)
	assert.Equal(t, "Postgres", store.Kind())
}

func TestSQLStorageListPrayers(t *testing.T) {
	store, mock := setupPostgresMock(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(prayerColumns).
		AddRow("p-2", "Second prayer request", "Faith", false, "Sam", 3, true, now).
		AddRow("p-1", "First prayer request", "Other", true, nil, 0, true, now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "prayers" WHERE ("is_moderated" IS TRUE) ORDER BY "created_at" DESC`)).
		WillReturnRows(rows)

	prayers, err := store.ListPrayers(context.Background())
	require.NoError(t, err)
	require.Len(t, prayers, 2)
	assert.Equal(t, "p-2", prayers[0].Prayer_ID)
	assert.Equal(t, "Sam", *prayers[0].Author_Name)
	assert.Equal(t, 3, prayers[0].Lift_Up_Count)
	assert.Nil(t, prayers[1].Author_Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorageListPrayersError(t *testing.T) {
	store, mock := setupPostgresMock(t)
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))

	_, err := store.ListPrayers(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "list prayers")
}

func TestSQLStorageGetPrayerNotFound(t *testing.T) {
	store, mock := setupPostgresMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "prayers" WHERE ("id" = 'missing') LIMIT 1`)).
		WillReturnRows(sqlmock.NewRows(prayerColumns))

	_, err := store.GetPrayer(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorageCreatePrayer(t *testing.T) {
	store, mock := setupPostgresMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "prayers"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	prayer, err := store.CreatePrayer(context.Background(), models.PrayerCreate{Content: "Please pray for my family"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", prayer.Prayer_ID)
	assert.Equal(t, "Other", prayer.Category)
	assert.True(t, prayer.Is_Anonymous)
	assert.True(t, prayer.Is_Moderated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorageUpdatePrayerLiftUpCount(t *testing.T) {
	store, mock := setupPostgresMock(t)
	mock.ExpectExec(`UPDATE "prayers" SET "lift_up_count"\s*=\s*2 WHERE \("id" = 'p-1'\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.UpdatePrayerLiftUpCount(context.Background(), "p-1", 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorageRecordLiftUp(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		execErr      error
		expectedErr  error
	}{
		{name: "inserted", rowsAffected: 1},
		{name: "duplicate pair", rowsAffected: 0, expectedErr: ErrDuplicate},
		{name: "database error", execErr: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := setupPostgresMock(t)
			exec := mock.ExpectExec(`INSERT INTO "lift_ups" .* ON CONFLICT DO NOTHING`)
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			liftUp, err := store.RecordLiftUp(context.Background(), models.LiftUpCreate{Prayer_ID: "p-1", Session_ID: "s-1"})
			switch {
			case tt.execErr != nil:
				assert.Error(t, err)
				assert.False(t, errors.Is(err, ErrDuplicate))
			case tt.expectedErr != nil:
				assert.True(t, errors.Is(err, tt.expectedErr))
			default:
				require.NoError(t, err)
				assert.Equal(t, "p-1", liftUp.Prayer_ID)
				assert.Equal(t, "s-1", liftUp.Session_ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLStorageHasLiftedUp(t *testing.T) {
	store, mock := setupPostgresMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) AS "count" FROM "lift_ups"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	lifted, err := store.HasLiftedUp(context.Background(), "p-1", "s-1")
	require.NoError(t, err)
	assert.True(t, lifted)
}

func TestSQLStorageCreateBookmarkDuplicate(t *testing.T) {
	store, mock := setupPostgresMock(t)
	mock.ExpectExec(`INSERT INTO "bookmarks" .* ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := store.CreateBookmark(context.Background(), models.BookmarkCreate{Prayer_ID: "p-1", Session_ID: "s-1"})
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestSQLStorageDeleteBookmark(t *testing.T) {
	store, mock := setupPostgresMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "bookmarks"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, store.DeleteBookmark(context.Background(), "p-1", "s-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorageListBookmarkedPrayers(t *testing.T) {
	store, mock := setupPostgresMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "p".* FROM "prayers" AS "p" INNER JOIN "bookmarks" AS "b" ON ("b"."prayer_id" = "p"."id") WHERE ("b"."session_id" = 's-1') ORDER BY "b"."created_at" DESC`)).
		WillReturnRows(sqlmock.NewRows(prayerColumns).
			AddRow("p-1", "First prayer request", "Other", true, nil, 0, true, time.Now()))

	prayers, err := store.ListBookmarkedPrayers(context.Background(), "s-1")
	require.NoError(t, err)
	require.Len(t, prayers, 1)
	assert.Equal(t, "p-1", prayers[0].Prayer_ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorageCreateDailyInspiration(t *testing.T) {
	store, mock := setupPostgresMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX("seq"), 0) FROM "daily_inspirations"`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "daily_inspirations"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inspiration, err := store.CreateDailyInspiration(context.Background(), models.DailyInspirationCreate{
		Content:     "Be still, and know that I am God.",
		Attribution: "Psalm 46:10",
		Type:        "verse",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, inspiration.Seq)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorageGetDailyInspirationEmpty(t *testing.T) {
	store, mock := setupPostgresMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "daily_inspirations" ORDER BY "seq" ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seq", "content", "attribution", "type"}))

	_, err := store.GetDailyInspiration(context.Background())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSQLStorageCountsError(t *testing.T) {
	store, mock := setupPostgresMock(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS "count" FROM "prayers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS "count" FROM "questions"`).
		WillReturnError(errors.New("relation does not exist"))

	_, err := store.Counts(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "count questions")
}
