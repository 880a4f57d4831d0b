package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Settings holds all environment-derived configuration. It is resolved once
// at startup and passed to the handlers; nothing else reads the environment.
type Settings struct {
	DatabaseURL    string
	UploadDir      string
	MaxUploadBytes int64
	DemoEmail      string
	DemoUsername   string
	DemoPassword   string
	Port           string
	Debug          bool
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load builds Settings from the process environment. A DATABASE_URL that is
// unset falls back to a local sqlite file (see Connect). An unparseable
// MAX_CONTENT_LENGTH_MB is a startup fault.
func Load() Settings {
	maxMB, err := strconv.Atoi(getenv("MAX_CONTENT_LENGTH_MB", "16"))
	if err != nil {
		log.Fatalf("invalid MAX_CONTENT_LENGTH_MB: %v", err)
	}

	return Settings{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		UploadDir:      getenv("UPLOAD_FOLDER", "uploads"),
		MaxUploadBytes: int64(maxMB) * 1024 * 1024,
		DemoEmail:      getenv("DEMO_EMAIL", "demo@edulink.local"),
		DemoUsername:   getenv("DEMO_USERNAME", "demo"),
		DemoPassword:   getenv("DEMO_PASSWORD", "demo123"),
		Port:           getenv("PORT", "8000"),
		Debug:          strings.ToLower(os.Getenv("DEBUG")) == "true",
	}
}
