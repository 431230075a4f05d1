package database

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedToursIfEmptySkipsWhenPopulated(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeedRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tours`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	result, err := repo.SeedToursIfEmpty()
	require.NoError(t, err)
	assert.False(t, result.Seeded)
	assert.Equal(t, 12, result.ExistingTours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedToursIfEmptySeeds(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeedRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tours`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	for i := 0; i < 12; i++ {
		mock.ExpectQuery(`INSERT INTO tours`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(i + 1))
	}
	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	for i := 0; i < 3; i++ {
		mock.ExpectExec(`INSERT INTO bookings`).
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}
	mock.ExpectCommit()

	result, err := repo.SeedToursIfEmpty()
	require.NoError(t, err)
	assert.True(t, result.Seeded)
	assert.Equal(t, 12, result.ToursAdded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedToursIfEmptyRollsBackOnFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeedRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tours`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO tours`).
		WillReturnError(fmt.Errorf("disk full"))
	mock.ExpectRollback()

	_, err := repo.SeedToursIfEmpty()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed tour")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReseedTours(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeedRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM tours`).
		WillReturnResult(sqlmock.NewResult(0, 12))
	for i := 0; i < 12; i++ {
		mock.ExpectExec(`INSERT INTO tours`).
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}
	mock.ExpectCommit()

	count, err := repo.ReseedTours()
	require.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReseedGuides(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeedRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM guides`).
		WillReturnResult(sqlmock.NewResult(0, 6))
	for i := 0; i < 6; i++ {
		mock.ExpectExec(`INSERT INTO guides`).
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}
	mock.ExpectCommit()

	count, err := repo.ReseedGuides()
	require.NoError(t, err)
	assert.Equal(t, 6, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
