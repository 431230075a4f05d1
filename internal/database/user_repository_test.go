package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathangi54/Travelling-System/internal/models"
)

var userColumns = []string{
	"id", "username", "email", "password_hash", "is_admin",
	"age", "city_tier", "monthly_income", "owns_car", "has_passport", "number_of_trips",
	"created_at",
}

func TestCreateUser(t *testing.T) {
	mockDB, mock := newTestDB(t)
	repo := NewUserRepository(mockDB)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("kasun", "kasun@example.com", sqlmock.AnyArg(), false).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(9, time.Now()))

		user := &models.User{
			Username:     "kasun",
			Email:        "kasun@example.com",
			PasswordHash: "$2a$10$hash",
		}
		err := repo.Create(user)
		require.NoError(t, err)
		assert.Equal(t, 9, user.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(&models.User{Username: "kasun", Email: "kasun@example.com"})
		assert.ErrorIs(t, err, ErrDuplicateUser)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetUserByEmail(t *testing.T) {
	mockDB, mock := newTestDB(t)
	repo := NewUserRepository(mockDB)

	t.Run("Success", func(t *testing.T) {
		income := 150000.0
		mock.ExpectQuery(`SELECT (.+) FROM users(.+)WHERE email = \$1`).
			WithArgs("admin@srilanka-tours.com").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, "admin", "admin@srilanka-tours.com", "$2a$10$hash", true,
					30, 1, income, true, true, 5, time.Now()))

		user, err := repo.GetByEmail("admin@srilanka-tours.com")
		require.NoError(t, err)
		assert.Equal(t, "admin", user.Username)
		assert.True(t, user.IsAdmin)
		require.NotNil(t, user.MonthlyIncome)
		assert.Equal(t, income, *user.MonthlyIncome)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users(.+)WHERE email = \$1`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := repo.GetByEmail("nobody@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
