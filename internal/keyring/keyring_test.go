package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetAPIKey(t *testing.T) {
	gokeyring.MockInit()

	if err := SetAPIKey("  abc123  "); err != nil {
		t.Fatalf("SetAPIKey() failed: %v", err)
	}

	got, err := GetAPIKey()
	if err != nil {
		t.Fatalf("GetAPIKey() failed: %v", err)
	}
	if got != "abc123" {
		t.Errorf("GetAPIKey() = %q, want %q", got, "abc123")
	}
}

func TestSetAPIKeyEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetAPIKey("   "); err == nil {
		t.Error("SetAPIKey(blank) should return an error")
	}
}

func TestGetAPIKeyNotFound(t *testing.T) {
	gokeyring.MockInit()

	_, err := GetAPIKey()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAPIKey() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteAPIKey(t *testing.T) {
	gokeyring.MockInit()

	if err := SetAPIKey("abc123"); err != nil {
		t.Fatal(err)
	}
	if err := DeleteAPIKey(); err != nil {
		t.Fatalf("DeleteAPIKey() failed: %v", err)
	}
	if _, err := GetAPIKey(); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete, GetAPIKey() error = %v, want %v", err, ErrNotFound)
	}
	if err := DeleteAPIKey(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want %v", err, ErrNotFound)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("mock keyring should be available")
	}
}

func TestResolveAPIKey(t *testing.T) {
	gokeyring.MockInit()

	if key, src := ResolveAPIKey(""); key != "" || src != SourceNone {
		t.Errorf("empty keyring resolved to %q from %s", key, src)
	}

	if err := SetAPIKey("stored"); err != nil {
		t.Fatal(err)
	}
	if key, src := ResolveAPIKey(""); key != "stored" || src != SourceKeyring {
		t.Errorf("resolved to %q from %s, want keyring", key, src)
	}
	if key, src := ResolveAPIKey("explicit"); key != "explicit" || src != SourceFlag {
		t.Errorf("resolved to %q from %s, want flag", key, src)
	}
}
