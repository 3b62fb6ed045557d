package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tropicaldog17/folio/internal/db"
	"github.com/tropicaldog17/folio/internal/models"
)

// setupTestDB opens a fresh shared in-memory sqlite database and migrates
// the full schema. Each test gets its own namespace so parallel tests do not
// see each other's rows.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database := &db.DB{DB: gdb}
	require.NoError(t, database.Migrate())

	t.Cleanup(func() {
		_ = database.Close()
	})
	return database
}

// createTestUser registers a user directly through the service
func createTestUser(t *testing.T, database *db.DB, username string) *models.User {
	t.Helper()

	svc := NewUserService(database)
	user, err := svc.Register(context.Background(), username, username+"@example.com", "password123")
	require.NoError(t, err)
	return user
}

// createTestPortfolio creates a portfolio for the user
func createTestPortfolio(t *testing.T, database *db.DB, userID, name string) *models.Portfolio {
	t.Helper()

	svc := NewPortfolioService(database)
	portfolio, err := svc.Create(context.Background(), userID, name)
	require.NoError(t, err)
	return portfolio
}
