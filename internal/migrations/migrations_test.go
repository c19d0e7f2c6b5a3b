package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestRun_AppliesAllMigrations(t *testing.T) {
	db := openTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	version, err := GetCurrentVersion(db)
	if err != nil {
		t.Fatalf("GetCurrentVersion() error = %v", err)
	}

	want := AllMigrations[len(AllMigrations)-1].Version
	if version != want {
		t.Errorf("GetCurrentVersion() = %d, want %d", version, want)
	}

	// The kv table exists and accepts writes
	if _, err := db.Exec("INSERT INTO kv (key, value) VALUES ('k', 'v')"); err != nil {
		t.Errorf("kv table not usable after Run(): %v", err)
	}
}

func TestRun_Idempotent(t *testing.T) {
	db := openTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := Run(db); err != nil {
		t.Fatalf("Run() second call error = %v", err)
	}

	var applied int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied); err != nil {
		t.Fatalf("counting applied migrations: %v", err)
	}
	if applied != len(AllMigrations) {
		t.Errorf("applied migrations = %d, want %d", applied, len(AllMigrations))
	}
}
