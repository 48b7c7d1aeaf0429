package testutil

import (
	"testing"

	"github.com/brightdesk-dev/brightdesk/db"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// NewDB opens an isolated in-memory database and runs the migrations.
// The pool is pinned to a single connection so the in-memory store is
// shared by every query in the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("failed to access test database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return database
}
