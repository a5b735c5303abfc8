// Package dbtest opens isolated, migrated sqlite databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"crud-backend/internal/config"
	"crud-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New returns a fresh in-memory database with the production schema.
// Each call gets its own named memory database, so tests never share rows.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Env:            "test",
		DatabaseDriver: config.DriverSQLite,
		DatabaseDSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}

	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
