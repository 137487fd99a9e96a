package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/limelight-casting/limelight/internal/scoring"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Nats     NatsConfig     `yaml:"nats"`
	Geocoder GeocoderConfig `yaml:"geocoder"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Geo      GeoConfig      `yaml:"geo"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type NatsConfig struct {
	URL string `yaml:"url"`
}

type GeocoderConfig struct {
	URL string `yaml:"url"`

	// Fallback reference point used when a viewer's location cannot be
	// resolved at all.
	FallbackLatitude  float64 `yaml:"fallback_latitude"`
	FallbackLongitude float64 `yaml:"fallback_longitude"`
	FallbackName      string  `yaml:"fallback_name"`
}

type ScoringConfig struct {
	// DefaultWeights apply to auditions created without explicit weights.
	DefaultWeights scoring.CriteriaWeights `yaml:"default_weights"`
}

type GeoConfig struct {
	NearbyRadiusKm float64 `yaml:"nearby_radius_km"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8080,
			MetricsPort: 8081,
		},
		Nats: NatsConfig{
			URL: "nats://localhost:4222",
		},
		Geocoder: GeocoderConfig{
			URL:               "https://nominatim.openstreetmap.org",
			FallbackLatitude:  40.7128,
			FallbackLongitude: -74.0060,
			FallbackName:      "New York, NY",
		},
		Scoring: ScoringConfig{
			DefaultWeights: scoring.DefaultWeights(),
		},
		Geo: GeoConfig{
			NearbyRadiusKm: 100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Scoring.DefaultWeights.Validate(); err != nil {
		return nil, fmt.Errorf("default scoring weights: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LIMELIGHT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("LIMELIGHT_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("LIMELIGHT_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("LIMELIGHT_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("LIMELIGHT_NATS_URL"); v != "" {
		cfg.Nats.URL = v
	}
	if v := os.Getenv("LIMELIGHT_GEOCODER_URL"); v != "" {
		cfg.Geocoder.URL = v
	}
	if v := os.Getenv("LIMELIGHT_NEARBY_RADIUS_KM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Geo.NearbyRadiusKm = f
		}
	}
	if v := os.Getenv("LIMELIGHT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
