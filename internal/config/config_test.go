package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("SESSION_SECRET", "test-secret-32-characters-long!")
	os.Setenv("DB_PASSWORD", "test")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port: got %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.Auth.SessionExpiry != 8*time.Hour {
		t.Errorf("SessionExpiry: got %v, want %v", cfg.Auth.SessionExpiry, 8*time.Hour)
	}
	if cfg.Auth.CleanupInterval != 1*time.Hour {
		t.Errorf("CleanupInterval: got %v, want %v", cfg.Auth.CleanupInterval, 1*time.Hour)
	}
	if cfg.Database.Name != "ypg_website" {
		t.Errorf("Database.Name: got %q, want %q", cfg.Database.Name, "ypg_website")
	}
}

func TestLoad_CustomDurations(t *testing.T) {
	os.Setenv("SESSION_SECRET", "test-secret-32-characters-long!")
	os.Setenv("DB_PASSWORD", "test")
	os.Setenv("SESSION_EXPIRY", "2h")
	os.Setenv("ATTEMPT_CLEANUP_INTERVAL", "30m")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	if cfg.Auth.SessionExpiry != 2*time.Hour {
		t.Errorf("SessionExpiry: got %v, want %v", cfg.Auth.SessionExpiry, 2*time.Hour)
	}
	if cfg.Auth.CleanupInterval != 30*time.Minute {
		t.Errorf("CleanupInterval: got %v, want %v", cfg.Auth.CleanupInterval, 30*time.Minute)
	}
}

func TestLoad_MissingSessionSecret(t *testing.T) {
	os.Clearenv()
	os.Setenv("DB_PASSWORD", "test")
	defer os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil, want error for missing SESSION_SECRET")
	}
}

func TestLoad_WeakSessionSecret(t *testing.T) {
	os.Setenv("SESSION_SECRET", "short")
	os.Setenv("DB_PASSWORD", "test")
	defer os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil, want error for weak SESSION_SECRET")
	}
}
