package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/infoboard/internal/constants"
	"github.com/julianstephens/infoboard/internal/models"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "infoboard.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitWritesDefaults(t *testing.T) {
	store := setupTestStore(t)

	if _, err := os.Stat(store.GetConfigPath()); err != nil {
		t.Fatalf("database file not created: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("got %+v, want defaults", settings)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	store := setupTestStore(t)

	want := models.DefaultSettings()
	want.WeekStart = constants.WeekStartMonday
	want.DefaultCity = "Guangzhou"
	want.GeoMode = constants.GeoModeStatic
	want.Latitude = 23.1291
	want.Longitude = 113.2644

	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestInitKeepsExistingSettings(t *testing.T) {
	store := setupTestStore(t)
	s := models.DefaultSettings()
	s.DefaultCity = "Hangzhou"
	if err := store.SaveSettings(s); err != nil {
		t.Fatal(err)
	}
	store.Close()

	again := NewSQLiteStore(store.GetConfigPath())
	if err := again.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer again.Close()

	got, err := again.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got.DefaultCity != "Hangzhou" {
		t.Errorf("Init overwrote default_city with %q", got.DefaultCity)
	}
}

func TestLoadNotInitialized(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestProviderInterface(t *testing.T) {
	var _ Provider = NewSQLiteStore("unused")
}

func TestSchemaVersionAndPing(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "fresh.db"))
	if _, _, err := store.SchemaVersion(); err != ErrNotInitialized {
		t.Errorf("SchemaVersion before open = %v, want ErrNotInitialized", err)
	}
	if err := store.Ping(); err != ErrNotInitialized {
		t.Errorf("Ping before open = %v, want ErrNotInitialized", err)
	}

	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	current, latest, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if current != latest || latest < 1 {
		t.Errorf("schema = %d/%d, want fully migrated", current, latest)
	}
	if err := store.Ping(); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
