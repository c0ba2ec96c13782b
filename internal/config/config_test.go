package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataBackend != BackendPostgres || cfg.GRPCPort != "50051" || cfg.WebPort != "8080" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.AccessTokenTTL != 15*time.Minute || cfg.RefreshTokenTTL != 7*24*time.Hour {
		t.Errorf("unexpected ttls %v %v", cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	}
	if cfg.Location.String() != "UTC" {
		t.Errorf("unexpected location %v", cfg.Location)
	}
	if cfg.Facilities != nil || cfg.Slots != nil {
		t.Error("expected no overrides")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATA_BACKEND", "Memory")
	t.Setenv("TIMEZONE", "Asia/Kolkata")
	t.Setenv("CLOSED_ON_SUNDAY", "yes")
	t.Setenv("FACILITIES", "Sahyadri Blood Bank, Pune; ;Jankalyan Blood Bank, Pune")
	t.Setenv("APPOINTMENT_SLOTS", "09:00, 09:30,10:00")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataBackend != BackendMemory || !cfg.ClosedOnSunday {
		t.Errorf("unexpected cfg %+v", cfg)
	}
	if diff := cmp.Diff([]string{"Sahyadri Blood Bank, Pune", "Jankalyan Blood Bank, Pune"}, cfg.Facilities); diff != "" {
		t.Errorf("facilities (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"09:00", "09:30", "10:00"}, cfg.Slots); diff != "" {
		t.Errorf("slots (-want +got):\n%s", diff)
	}
	if cfg.AccessTokenTTL != 5*time.Minute || cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 4 {
		t.Errorf("unexpected numeric overrides %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"JWT_SECRET": ""}},
		{"bad backend", map[string]string{"DATA_BACKEND": "mongo"}},
		{"bad ttl", map[string]string{"ACCESS_TOKEN_TTL": "soon"}},
		{"bad burst", map[string]string{"RATE_LIMIT_BURST": "-1"}},
		{"bad rps", map[string]string{"RATE_LIMIT_RPS": "fast"}},
		{"bad timezone", map[string]string{"TIMEZONE": "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "s3cret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseBoolEnv(t *testing.T) {
	for _, s := range []string{"1", "true", "Yes", " on "} {
		if !parseBoolEnv(s) {
			t.Errorf("%q should be true", s)
		}
	}
	for _, s := range []string{"", "0", "false", "nope"} {
		if parseBoolEnv(s) {
			t.Errorf("%q should be false", s)
		}
	}
}
