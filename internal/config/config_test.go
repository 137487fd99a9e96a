package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/limelight-casting/limelight/internal/scoring"
)

func TestLoadDefaults(t *testing.T) {
	// Unset all LIMELIGHT_ env vars to test pure defaults
	envVars := []string{
		"LIMELIGHT_PORT", "LIMELIGHT_METRICS_PORT", "LIMELIGHT_ADMIN_TOKEN",
		"LIMELIGHT_DATABASE_URL", "LIMELIGHT_NATS_URL", "LIMELIGHT_GEOCODER_URL",
		"LIMELIGHT_NEARBY_RADIUS_KM", "LIMELIGHT_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8081 {
		t.Errorf("expected metrics port 8081, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Nats.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Nats.URL)
	}
	if cfg.Geocoder.URL != "https://nominatim.openstreetmap.org" {
		t.Errorf("expected nominatim URL, got %s", cfg.Geocoder.URL)
	}
	if cfg.Geocoder.FallbackName != "New York, NY" {
		t.Errorf("expected New York fallback, got %s", cfg.Geocoder.FallbackName)
	}
	if cfg.Geo.NearbyRadiusKm != 100 {
		t.Errorf("expected 100 km nearby radius, got %f", cfg.Geo.NearbyRadiusKm)
	}
	if cfg.Scoring.DefaultWeights != scoring.DefaultWeights() {
		t.Errorf("expected default weights, got %+v", cfg.Scoring.DefaultWeights)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LIMELIGHT_PORT", "9999")
	t.Setenv("LIMELIGHT_DATABASE_URL", "postgres://test/limelight")
	t.Setenv("LIMELIGHT_NEARBY_RADIUS_KM", "250")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("expected env port 9999, got %d", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://test/limelight" {
		t.Errorf("expected env database URL, got %s", cfg.Database.URL)
	}
	if cfg.Geo.NearbyRadiusKm != 250 {
		t.Errorf("expected env radius 250, got %f", cfg.Geo.NearbyRadiusKm)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
server:
  port: 7000
scoring:
  default_weights:
    relevance: 0.25
    sentiment: 0.25
    skills: 0.25
    video: 0.25
geo:
  nearby_radius_km: 50
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.Server.Port)
	}
	want := scoring.CriteriaWeights{Relevance: 0.25, Sentiment: 0.25, Skills: 0.25, Video: 0.25}
	if cfg.Scoring.DefaultWeights != want {
		t.Errorf("expected even weights, got %+v", cfg.Scoring.DefaultWeights)
	}
	if cfg.Geo.NearbyRadiusKm != 50 {
		t.Errorf("expected radius 50, got %f", cfg.Geo.NearbyRadiusKm)
	}
}

func TestLoadRejectsInvalidWeights(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
scoring:
  default_weights:
    relevance: 0.1
    sentiment: 0.1
    skills: 0.1
    video: 0.1
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for weights not summing to 1.0")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/definitely/not/here.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
