// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Sources SourcesConfig
	Engine  EngineConfig
	DB      DatabaseConfig
	Redis   RedisConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type AuthConfig struct {
	Token string
}

type SourcesConfig struct {
	USGSEnabled      bool
	USGSURL          string
	GDACSEnabled     bool
	GDACSURL         string
	OpenMeteoEnabled bool
	OpenMeteoURL     string
}

type EngineConfig struct {
	DefaultRadiusKm float64
	RefreshInterval time.Duration
	// WatchTTL bounds how long a queried location stays in the background
	// refresh set without being queried again.
	WatchTTL       time.Duration
	LandmaskPath   string
	GeocodeEnabled bool
}

type DatabaseConfig struct {
	// URL is optional; without it harbors come from the built-in seed.
	URL           string
	MigrationsDir string
}

type RedisConfig struct {
	// URL is optional; without it alert sets are never cached.
	URL string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Auth: AuthConfig{
			Token: os.Getenv("API_TOKEN"),
		},
		Sources: SourcesConfig{
			USGSEnabled:      getEnvBool("USGS_ENABLED", true),
			USGSURL:          getEnv("USGS_URL", "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson"),
			GDACSEnabled:     getEnvBool("GDACS_ENABLED", true),
			GDACSURL:         getEnv("GDACS_URL", "https://www.gdacs.org/xml/rss.xml"),
			OpenMeteoEnabled: getEnvBool("OPENMETEO_ENABLED", true),
			OpenMeteoURL:     getEnv("OPENMETEO_URL", "https://api.open-meteo.com/v1/forecast"),
		},
		Engine: EngineConfig{
			DefaultRadiusKm: getEnvFloat("DEFAULT_RADIUS_KM", 500),
			RefreshInterval: getEnvDuration("REFRESH_INTERVAL", 10*time.Minute),
			WatchTTL:        getEnvDuration("WATCH_TTL", time.Hour),
			LandmaskPath:    os.Getenv("LANDMASK_SHAPEFILE"),
			GeocodeEnabled:  getEnvBool("GEOCODE_ENABLED", true),
		},
		DB: DatabaseConfig{
			URL:           os.Getenv("DATABASE_URL"),
			MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Auth.Token == "" {
		return fmt.Errorf("API_TOKEN must be set")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Engine.DefaultRadiusKm <= 0 {
		return fmt.Errorf("default radius must be positive")
	}
	if c.Engine.RefreshInterval < time.Minute {
		return fmt.Errorf("refresh interval must be at least 1 minute")
	}
	if c.Engine.WatchTTL < c.Engine.RefreshInterval {
		return fmt.Errorf("watch TTL must be at least the refresh interval")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
