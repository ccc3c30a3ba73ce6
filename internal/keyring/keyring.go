// Package keyring keeps the OpenWeather API key in the OS keyring.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/infoboard/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no API key is stored
	ErrNotFound = errors.New("api key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be reached
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// KeySource says where a resolved API key came from.
type KeySource string

const (
	SourceFlag    KeySource = "flag"
	SourceKeyring KeySource = "keyring"
	SourceNone    KeySource = "none"
)

// GetAPIKey reads the OpenWeather key from the OS keyring.
func GetAPIKey() (string, error) {
	key, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetAPIKey stores the OpenWeather key in the OS keyring.
func SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("api key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, key); err != nil {
		return fmt.Errorf("failed to store api key in keyring: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the stored key.
func DeleteAPIKey() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete api key from keyring: %w", err)
	}
	return nil
}

// IsAvailable makes a best-effort read to see whether a keyring backend exists.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// ResolveAPIKey prefers an explicit key (flag or environment) and falls back
// to the keyring. A missing key is not an error.
func ResolveAPIKey(explicit string) (string, KeySource) {
	if k := strings.TrimSpace(explicit); k != "" {
		return k, SourceFlag
	}
	if k, err := GetAPIKey(); err == nil && k != "" {
		return k, SourceKeyring
	}
	return "", SourceNone
}
