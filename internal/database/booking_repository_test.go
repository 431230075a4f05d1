package database

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathangi54/Travelling-System/internal/models"
)

// testDatabase adapts a sqlmock-backed sqlx.DB to the DB interface
type testDatabase struct {
	db *sqlx.DB
}

func (m *testDatabase) Get(dest interface{}, query string, args ...interface{}) error {
	return m.db.Get(dest, query, args...)
}

func (m *testDatabase) Select(dest interface{}, query string, args ...interface{}) error {
	return m.db.Select(dest, query, args...)
}

func (m *testDatabase) Exec(query string, args ...interface{}) (sql.Result, error) {
	return m.db.Exec(query, args...)
}

func (m *testDatabase) QueryRow(query string, args ...interface{}) *sql.Row {
	return m.db.QueryRow(query, args...)
}

func (m *testDatabase) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return m.db.Query(query, args...)
}

func (m *testDatabase) Beginx() (*sqlx.Tx, error) {
	return m.db.Beginx()
}

func (m *testDatabase) Ping() error {
	return m.db.Ping()
}

func (m *testDatabase) Close() error {
	return m.db.Close()
}

func newTestDB(t *testing.T) (*testDatabase, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &testDatabase{db: sqlx.NewDb(db, "sqlmock")}, mock
}

var bookingColumns = []string{
	"id", "user_id", "tour_id", "booking_date", "travel_date", "guests",
	"total_price", "ai_suggested_price", "customer_name", "customer_email",
	"customer_phone", "special_requests", "status", "package_type",
	"preferred_star_rating", "number_of_children",
	"tour_name", "tour_description", "tour_image", "username", "user_email",
}

func sampleBookingRow(id int, status string) []driverValue {
	now := time.Now()
	travel := now.AddDate(0, 1, 0)
	return []driverValue{
		id, nil, 3, now, travel, 2,
		1700.00, nil, "Kasun Silva", "kasun@example.com",
		"+94771234567", nil, status, "standard",
		3, 0,
		"Cultural Triangle Explorer", "Explore ancient cities", "/images/trinco.webp", nil, nil,
	}
}

type driverValue = driver.Value

func TestCreateBooking(t *testing.T) {
	mockDB, mock := newTestDB(t)
	repo := NewBookingRepository(mockDB)

	nb := &models.NewBooking{
		TourID:              3,
		TravelDate:          time.Now().AddDate(0, 1, 0),
		Guests:              2,
		TotalPrice:          1700.00,
		CustomerName:        "Kasun Silva",
		CustomerEmail:       "kasun@example.com",
		CustomerPhone:       "+94771234567",
		PackageType:         "standard",
		PreferredStarRating: 3,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO bookings`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectQuery(`SELECT (.+) FROM bookings b`).
			WithArgs(11).
			WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(sampleBookingRow(11, "pending")...))
		mock.ExpectCommit()

		booking, err := repo.Create(nb, nil, nil, models.BookingStatusPending)
		require.NoError(t, err)
		assert.Equal(t, 11, booking.ID)
		assert.Equal(t, models.BookingStatusPending, booking.Status)
		require.NotNil(t, booking.TourName)
		assert.Equal(t, "Cultural Triangle Explorer", *booking.TourName)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert Fails Rolls Back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO bookings`).
			WillReturnError(fmt.Errorf("insert failed"))
		mock.ExpectRollback()

		booking, err := repo.Create(nb, nil, nil, models.BookingStatusPending)
		assert.Error(t, err)
		assert.Nil(t, booking)
		assert.Contains(t, err.Error(), "failed to create booking")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListBookings(t *testing.T) {
	mockDB, mock := newTestDB(t)
	repo := NewBookingRepository(mockDB)

	t.Run("No Filter", func(t *testing.T) {
		rows := sqlmock.NewRows(bookingColumns).
			AddRow(sampleBookingRow(2, "confirmed")...).
			AddRow(sampleBookingRow(1, "pending")...)
		mock.ExpectQuery(`SELECT (.+) FROM bookings b(.+)ORDER BY b.booking_date DESC`).
			WillReturnRows(rows)

		bookings, err := repo.List(models.BookingFilter{})
		require.NoError(t, err)
		assert.Len(t, bookings, 2)
		assert.Equal(t, 2, bookings[0].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User And Status Filter", func(t *testing.T) {
		userID := 7
		status := models.BookingStatusConfirmed
		mock.ExpectQuery(`SELECT (.+) FROM bookings b(.+)b.user_id = \$1(.+)b.status = \$2`).
			WithArgs(userID, status).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		bookings, err := repo.List(models.BookingFilter{UserID: &userID, Status: &status})
		require.NoError(t, err)
		assert.Empty(t, bookings)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetBookingByID(t *testing.T) {
	mockDB, mock := newTestDB(t)
	repo := NewBookingRepository(mockDB)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM bookings b(.+)WHERE b.id = \$1`).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(sampleBookingRow(5, "confirmed")...))

		booking, err := repo.GetByID(5)
		require.NoError(t, err)
		assert.Equal(t, 5, booking.ID)
		assert.Equal(t, models.BookingStatusConfirmed, booking.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM bookings b(.+)WHERE b.id = \$1`).
			WithArgs(999).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		booking, err := repo.GetByID(999)
		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.Nil(t, booking)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	mockDB, mock := newTestDB(t)
	repo := NewBookingRepository(mockDB)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE bookings SET status`).
			WithArgs(models.BookingStatusConfirmed, 5).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(5, models.BookingStatusConfirmed)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE bookings SET status`).
			WithArgs(models.BookingStatusCancelled, 999).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(999, models.BookingStatusCancelled)
		assert.ErrorIs(t, err, ErrBookingNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteBooking(t *testing.T) {
	mockDB, mock := newTestDB(t)
	repo := NewBookingRepository(mockDB)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM bookings`).
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM bookings`).
			WithArgs(999).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(999), ErrBookingNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountConfirmedForDate(t *testing.T) {
	mockDB, mock := newTestDB(t)
	repo := NewBookingRepository(mockDB)

	travelDate := time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(travelDate, models.BookingStatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountConfirmedForDate(travelDate)
	require.NoError(t, err)
	assert.Equal(t, 12, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
