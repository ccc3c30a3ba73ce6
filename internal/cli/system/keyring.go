package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/infoboard/internal/cli"
	"github.com/julianstephens/infoboard/internal/keyring"
)

// KeySetCmd stores the OpenWeather API key in the OS keyring
type KeySetCmd struct {
	Key string `arg:"" help:"OpenWeather API key to store in the keyring."`
}

func (cmd *KeySetCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetAPIKey(cmd.Key); err != nil {
		return fmt.Errorf("failed to store api key in keyring: %w", err)
	}
	ctx.Println("✓ API key stored successfully in OS keyring")
	return nil
}

// KeyDeleteCmd removes the OpenWeather API key from the OS keyring
type KeyDeleteCmd struct{}

func (cmd *KeyDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no api key found in keyring")
		}
		return fmt.Errorf("failed to delete api key from keyring: %w", err)
	}
	ctx.Println("✓ API key deleted from OS keyring")
	return nil
}

// KeyStatusCmd reports where the API key would be read from
type KeyStatusCmd struct{}

func (cmd *KeyStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		ctx.Println("❌ OS keyring is not available on this system")
	} else {
		ctx.Println("✓ OS keyring is available")
	}

	key, source := keyring.ResolveAPIKey(ctx.APIKey)
	switch source {
	case keyring.SourceNone:
		ctx.Println("ℹ No API key configured; weather by city will fail with 未配置 API Key")
	default:
		ctx.Printf("✓ API key %s (from %s)\n", maskKey(key), source)
	}
	return nil
}

// maskKey keeps only the last four characters of key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
