package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/gin-gonic/gin"

	"github.com/PrayerWall/storage"
)

// SetupTestDB creates a controller backed by a Postgres-dialect SQLStorage
// over sqlmock
func SetupTestDB(t *testing.T) (*Controller, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	store := storage.NewSQLStorage(goqu.New("postgres", db))

	cleanup := func() {
		db.Close()
	}

	return New(store), mock, cleanup
}

// SetupTestStore creates a controller backed by a fresh in-memory store
func SetupTestStore(opts ...storage.Option) (*Controller, *storage.MemStorage) {
	store := storage.NewMemStorage(opts...)
	return New(store), store
}

// SetupTestContext creates a test Gin context with a response recorder
func SetupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

// SetJSONRequest attaches a request to c. body may be a string (sent as is)
// or any value, which is JSON encoded.
func SetJSONRequest(c *gin.Context, method, target string, body interface{}) {
	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	default:
		raw, _ = json.Marshal(b)
	}
	c.Request, _ = http.NewRequest(method, target, bytes.NewBuffer(raw))
	c.Request.Header.Set("Content-Type", "application/json")
}

// DecodeError returns the "error" field of a JSON error response
func DecodeError(w *httptest.ResponseRecorder) string {
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		return ""
	}
	msg, _ := body["error"].(string)
	return msg
}
