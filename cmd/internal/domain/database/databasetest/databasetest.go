// Package databasetest opens throwaway SQLite databases for tests.
package databasetest

import (
	"path/filepath"
	"testing"

	"brainagro/cmd/internal/domain/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open creates a migrated, file backed SQLite database under t.TempDir().
// Foreign keys are enforced, states are not seeded.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Init(database.Config{
		Driver: database.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
