package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting the service reads.
type Config struct {
	Port        string
	LogLevel    string
	LogFormat   string
	CORSOrigins []string
}

const (
	defaultPort        = "8080"
	defaultLogLevel    = "info"
	defaultLogFormat   = "json"
	defaultCORSOrigins = "http://localhost:5173,http://127.0.0.1:5173"
)

// Load reads configuration from the environment, with a .env file as
// fallback for local development. Unset values fall back to defaults.
func Load() (Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("LOG_FORMAT", defaultLogFormat)
	v.SetDefault("CORS_ORIGINS", defaultCORSOrigins)

	cfg := Config{
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		CORSOrigins: splitCSV(v.GetString("CORS_ORIGINS")),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a valid port number, got %q", c.Port)
	}
	return nil
}

func splitCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
