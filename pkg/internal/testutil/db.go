package testutil

import (
	"strings"
	"testing"

	"github.com/smith3v/lcurve/pkg/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var memoryNameReplacer = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// SetupTestDB opens a migrated in-memory sqlite database private to t.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + memoryNameReplacer.Replace(t.Name()) + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to access underlying DB: %v", err)
	}

	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}
	})
	return gdb
}

// SetupTestRepository wraps SetupTestDB in a db.Repository.
func SetupTestRepository(t *testing.T) *db.Repository {
	t.Helper()
	return db.NewRepository(SetupTestDB(t))
}
