// Package dbtest opens throwaway in-memory databases for package tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/farmergpt/internal/db"
)

// New returns a migrated, isolated in-memory SQLite database with foreign keys
// enforced. The database is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	gdb, err := dbpkg.OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := dbpkg.Migrate(gdb); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}
