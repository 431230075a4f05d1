package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathangi54/Travelling-System/internal/database"
)

// handlerTestDB adapts a sqlmock-backed sqlx.DB to the database.DB interface
type handlerTestDB struct {
	db *sqlx.DB
}

func (m *handlerTestDB) Get(dest interface{}, query string, args ...interface{}) error {
	return m.db.Get(dest, query, args...)
}

func (m *handlerTestDB) Select(dest interface{}, query string, args ...interface{}) error {
	return m.db.Select(dest, query, args...)
}

func (m *handlerTestDB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return m.db.Exec(query, args...)
}

func (m *handlerTestDB) QueryRow(query string, args ...interface{}) *sql.Row {
	return m.db.QueryRow(query, args...)
}

func (m *handlerTestDB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return m.db.Query(query, args...)
}

func (m *handlerTestDB) Beginx() (*sqlx.Tx, error) {
	return m.db.Beginx()
}

func (m *handlerTestDB) Ping() error {
	return m.db.Ping()
}

func (m *handlerTestDB) Close() error {
	return m.db.Close()
}

func tourRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	handler := NewTourHandler(database.NewTourRepository(&handlerTestDB{db: sqlx.NewDb(db, "sqlmock")}))
	router := gin.New()
	router.GET("/api/tours", handler.List)
	router.GET("/api/tours/:id", handler.Get)
	return router, mock
}

var tourColumns = []string{
	"id", "name", "description", "price", "duration_days", "tour_type", "image_url", "created_at",
}

func TestListToursEndpoint(t *testing.T) {
	router, mock := tourRouter(t)

	mock.ExpectQuery(`SELECT .+ FROM tours`).
		WillReturnRows(sqlmock.NewRows(tourColumns).
			AddRow(1, "Sigiriya Rock Fortress Adventure", "Climb the rock", 4500.0, 1, "cultural", "/images/sigiriya.jpg", time.Now()).
			AddRow(2, "Ella Hill Country Escape", "Tea country", 6200.0, 3, "nature", "/images/ella.jpg", time.Now()))

	req := httptest.NewRequest(http.MethodGet, "/api/tours", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string            `json:"status"`
		Tours  []json.RawMessage `json:"tours"`
		Count  int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 2, body.Count)
	assert.Len(t, body.Tours, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTourEndpointNotFound(t *testing.T) {
	router, mock := tourRouter(t)

	mock.ExpectQuery(`SELECT .+ FROM tours`).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/api/tours/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Tour not found")
}

func TestGetTourEndpointBadID(t *testing.T) {
	router, _ := tourRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tours/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid tour id")
}
