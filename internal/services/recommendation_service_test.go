package services

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathangi54/Travelling-System/internal/advisor"
	"github.com/mathangi54/Travelling-System/internal/config"
	"github.com/mathangi54/Travelling-System/internal/database"
)

var popularTourColumns = []string{
	"id", "name", "description", "price", "duration_days", "tour_type", "image_url", "created_at",
	"booking_count",
}

// skepticalAdvisor scores every profile close to zero, so the basic
// suggestion is a predictable 0.8x discount of the base price.
func skepticalAdvisor(t *testing.T) *advisor.Advisor {
	t.Helper()
	artifact := `{
		"model": "logistic_regression",
		"features": ["monthly_income"],
		"scaler": {"mean": [50000], "scale": [1000]},
		"weights": [0],
		"intercept": -10
	}`
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o644))
	return advisor.New(config.PricingConfig{Enabled: true, Mode: "basic", ArtifactPath: path}, testLogger())
}

func expectRecommendationUser(mock sqlmock.Sqlmock, id int) {
	mock.ExpectQuery(`SELECT .+ FROM users`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id, "nimal", "nimal@example.com", "hash", false,
				nil, nil, nil, nil, nil, nil,
				time.Now()))
}

func TestRecommendationsRankPopularTours(t *testing.T) {
	db, mock := newServiceDB(t)
	svc := NewRecommendationService(
		database.NewTourRepository(db),
		database.NewUserRepository(db),
		confidentAdvisor(t),
		testLogger(),
	)

	expectRecommendationUser(mock, 12)
	mock.ExpectQuery(`FROM tours t`).
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows(popularTourColumns).
			AddRow(3, "Cultural Triangle Explorer", "Ancient cities", 1000.0, 5, "cultural", "/images/sigiriya.jpg", time.Now(), 8).
			AddRow(7, "Mirissa Whale Watching", "Blue whales", 500.0, 1, "wildlife", "/images/mirissa.jpg", time.Now(), 3))

	recs, err := svc.ForUser(12)
	require.NoError(t, err)
	require.Len(t, recs.Tours, 2)

	first := recs.Tours[0]
	assert.Equal(t, 3, first.ID)
	assert.Equal(t, 8, first.BookingCount)
	assert.Equal(t, 1200.0, first.AISuggestedPrice)
	assert.InDelta(t, 0.95, first.AIScore, 0.001)
	assert.Equal(t, "Premium match for your profile", first.RecommendationReason)

	assert.True(t, recs.AIInsights.PersonalizationActive)
	assert.InDelta(t, 1.0, recs.AIInsights.PurchaseProbability, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationsFlagDiscounts(t *testing.T) {
	db, mock := newServiceDB(t)
	svc := NewRecommendationService(
		database.NewTourRepository(db),
		database.NewUserRepository(db),
		skepticalAdvisor(t),
		testLogger(),
	)

	expectRecommendationUser(mock, 12)
	mock.ExpectQuery(`FROM tours t`).
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows(popularTourColumns).
			AddRow(3, "Cultural Triangle Explorer", "Ancient cities", 1000.0, 5, "cultural", "/images/sigiriya.jpg", time.Now(), 8))

	recs, err := svc.ForUser(12)
	require.NoError(t, err)
	require.Len(t, recs.Tours, 1)
	assert.Equal(t, 800.0, recs.Tours[0].AISuggestedPrice)
	assert.InDelta(t, 0.1, recs.Tours[0].AIScore, 0.001)
	assert.Equal(t, "Discounted for your profile", recs.Tours[0].RecommendationReason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationsRequireAdvisor(t *testing.T) {
	db, _ := newServiceDB(t)
	svc := NewRecommendationService(
		database.NewTourRepository(db),
		database.NewUserRepository(db),
		disabledAdvisor(t),
		testLogger(),
	)

	_, err := svc.ForUser(12)
	assert.ErrorIs(t, err, ErrAdvisorDisabled)
}

func TestRecommendationsUnknownUser(t *testing.T) {
	db, mock := newServiceDB(t)
	svc := NewRecommendationService(
		database.NewTourRepository(db),
		database.NewUserRepository(db),
		confidentAdvisor(t),
		testLogger(),
	)

	mock.ExpectQuery(`SELECT .+ FROM users`).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.ForUser(99)
	assert.ErrorIs(t, err, database.ErrUserNotFound)
}
