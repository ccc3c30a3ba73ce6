package migration

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	r := NewRunner(setupTestDB(t), fstest.MapFS{})
	version, err := r.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}
}

func TestMigrations(t *testing.T) {
	src := fstest.MapFS{
		"002_second.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
		"001_first.sql":  {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"README.md":      {Data: []byte("ignored")},
	}
	ms, err := NewRunner(setupTestDB(t), src).Migrations()
	if err != nil {
		t.Fatalf("Migrations failed: %v", err)
	}
	if len(ms) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(ms))
	}
	if ms[0].Version != 1 || ms[0].Name != "first" || ms[1].Version != 2 {
		t.Errorf("unexpected order %+v", ms)
	}
}

func TestMigrationsInvalidNames(t *testing.T) {
	tests := []struct {
		name string
		src  fstest.MapFS
		want string
	}{
		{"no underscore", fstest.MapFS{"001.sql": {Data: []byte("")}}, "invalid migration filename"},
		{"bad number", fstest.MapFS{"abc_x.sql": {Data: []byte("")}}, "invalid version"},
		{"zero", fstest.MapFS{"000_x.sql": {Data: []byte("")}}, "invalid version"},
		{"duplicate", fstest.MapFS{
			"001_a.sql":  {Data: []byte("")},
			"0001_b.sql": {Data: []byte("")},
		}, "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRunner(setupTestDB(t), tt.src).Migrations()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	db := setupTestDB(t)
	src := fstest.MapFS{
		"001_settings.sql": {Data: []byte("CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT);")},
		"002_seed.sql":     {Data: []byte("INSERT INTO settings (key, value) VALUES ('k', 'v');")},
	}
	r := NewRunner(db, src)

	applied, err := r.Apply()
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 applied, got %d", applied)
	}
	if v, _ := r.CurrentVersion(); v != 2 {
		t.Errorf("expected version 2, got %d", v)
	}

	applied, err = r.Apply()
	if err != nil || applied != 0 {
		t.Errorf("second Apply = %d, %v; want 0, nil", applied, err)
	}

	var value string
	if err := db.QueryRow("SELECT value FROM settings WHERE key = 'k'").Scan(&value); err != nil || value != "v" {
		t.Errorf("seed row missing: %q, %v", value, err)
	}
}

func TestApplyFailureRollsBack(t *testing.T) {
	db := setupTestDB(t)
	src := fstest.MapFS{
		"001_ok.sql":  {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"002_bad.sql": {Data: []byte("THIS IS NOT SQL;")},
	}
	r := NewRunner(db, src)

	applied, err := r.Apply()
	if err == nil {
		t.Fatal("expected error")
	}
	if applied != 1 {
		t.Errorf("expected 1 applied before failure, got %d", applied)
	}
	if v, _ := r.CurrentVersion(); v != 1 {
		t.Errorf("expected version 1 after failed migration, got %d", v)
	}
}

func TestValidateNewerSchema(t *testing.T) {
	db := setupTestDB(t)
	src := fstest.MapFS{"001_a.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")}}
	r := NewRunner(db, src)
	if _, err := r.Apply(); err != nil {
		t.Fatal(err)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate failed on current schema: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 9"); err != nil {
		t.Fatal(err)
	}
	if err := r.Validate(); err == nil || !strings.Contains(err.Error(), "newer") {
		t.Errorf("expected newer schema error, got %v", err)
	}
	if _, err := r.Apply(); err == nil {
		t.Error("Apply should refuse a newer schema")
	}
}
