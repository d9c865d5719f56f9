package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"deepnotes/internal/app/model"
)

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; keys may be set system-wide instead.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// ResolveCredentials fills missing credential fields from the environment.
// Explicit per-request values take priority; GOOGLE_API_KEY is accepted as
// an alias for GEMINI_API_KEY.
func ResolveCredentials(explicit model.Credentials) model.Credentials {
	resolved := explicit

	if resolved.GeminiKey == "" {
		resolved.GeminiKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}
	if resolved.GeminiKey == "" {
		resolved.GeminiKey = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
	}
	if resolved.MistralKey == "" {
		resolved.MistralKey = strings.TrimSpace(os.Getenv("MISTRAL_API_KEY"))
	}

	return resolved
}
