package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./coachctl.db" {
			t.Errorf("expected database path ./coachctl.db, got %s", config.Database.Path)
		}

		if config.API.Environment != "development" {
			t.Errorf("expected development environment, got %s", config.API.Environment)
		}

		if config.API.DevBaseURL != "http://localhost:5000" {
			t.Errorf("expected dev base URL http://localhost:5000, got %s", config.API.DevBaseURL)
		}

		if config.API.TimeoutSeconds != 30 {
			t.Errorf("expected timeout 30, got %d", config.API.TimeoutSeconds)
		}
	})

	t.Run("ResolveBaseURL", func(t *testing.T) {
		t.Run("Development Default", func(t *testing.T) {
			config := DefaultConfig()
			if url := config.ResolveBaseURL(); url != "http://localhost:5000" {
				t.Errorf("expected development URL, got %s", url)
			}
		})

		t.Run("Production Environment", func(t *testing.T) {
			config := DefaultConfig()
			config.API.Environment = "production"
			if url := config.ResolveBaseURL(); url != "https://api.coach-assistant.dz" {
				t.Errorf("expected production URL, got %s", url)
			}
		})

		t.Run("Explicit Override Wins", func(t *testing.T) {
			config := DefaultConfig()
			config.API.Environment = "production"
			config.API.BaseURL = "http://staging.local:5000"
			if url := config.ResolveBaseURL(); url != "http://staging.local:5000" {
				t.Errorf("expected override URL, got %s", url)
			}
		})
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
environment = "production"
prod_base_url = "https://api.example.dz"
timeout_seconds = 5
requests_per_second = 2.5

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected custom database path, got %s", config.Database.Path)
		}
		if config.API.RequestsPerSecond != 2.5 {
			t.Errorf("expected 2.5 requests per second, got %f", config.API.RequestsPerSecond)
		}
		if url := config.ResolveBaseURL(); url != "https://api.example.dz" {
			t.Errorf("expected production URL, got %s", url)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
