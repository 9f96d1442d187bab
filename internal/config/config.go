package config

import (
	"fmt"
	"os"
	"strings"
)

// Save backends the API can run against.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type APIConfig struct {
	Addr        string
	SaveBackend string
	DatabaseURL string
	SaveDir     string
}

type CLIConfig struct {
	APIBaseURL string
}

func LoadAPIFromEnv() (APIConfig, error) {
	addr := os.Getenv("PORT")
	if addr != "" {
		if !strings.HasPrefix(addr, ":") {
			addr = ":" + addr
		}
	} else {
		addr = envDefault("MOGUL_API_ADDR", ":8080")
	}

	cfg := APIConfig{
		Addr:        addr,
		SaveBackend: envBackendDefault(),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SaveDir:     envDefault("MOGUL_SAVE_DIR", ""),
	}
	if cfg.SaveBackend == BackendPostgres && cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL is required when MOGUL_SAVE_BACKEND=postgres")
	}
	return cfg, nil
}

func LoadCLIFromEnv() CLIConfig {
	return CLIConfig{
		APIBaseURL: strings.TrimRight(envDefault("MOGUL_API_BASE_URL", "http://localhost:8080"), "/"),
	}
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envBackendDefault() string {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MOGUL_SAVE_BACKEND")))
	switch v {
	case BackendFile, BackendPostgres:
		return v
	default:
		return BackendFile
	}
}
