package config

import (
	"os"
	"strings"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port           string
	CatalogBaseURL string
	StateDBPath    string
	AllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Port:           getenv("PORT", "8080"),
		CatalogBaseURL: getenv("CATALOG_BASE_URL", "https://swapi.dev/api/people"),
		StateDBPath:    getenv("STATE_DB_PATH", "data/state.db"),
		AllowedOrigins: splitCSV(getenv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
