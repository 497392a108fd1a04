package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/ferbta/babyverse/config"
	"github.com/ferbta/babyverse/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a fresh in-memory database with the full
// schema and the seeded vaccination template.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, config.Migrate(db))
	require.NoError(t, config.SeedVaccinationSchedule(db))

	config.DB = db
	return db
}

func createTestUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := models.User{
		Email:              email,
		Password:           "x",
		Name:               "Test Parent",
		EmailNotifications: true,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return &user
}

func createTestChild(t *testing.T, userID uint, name string, birthDate time.Time) *models.Child {
	t.Helper()
	child := models.Child{
		UserID:    userID,
		Name:      name,
		BirthDate: birthDate,
		Gender:    "female",
		IsActive:  true,
	}
	require.NoError(t, config.DB.Create(&child).Error)
	return &child
}

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
