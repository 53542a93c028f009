package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
	if cfg.Database.URI != DBURI {
		t.Errorf("Expected URI '%s', got '%s'", DBURI, cfg.Database.URI)
	}
	if cfg.Database.MaxOpenConns != 1 {
		t.Errorf("Expected a single connection, got %d", cfg.Database.MaxOpenConns)
	}
}

func TestValidate(t *testing.T) {
	t.Run("EmptyURI", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Database.URI = "  "
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "database.uri is required") {
			t.Errorf("Expected uri error, got %v", err)
		}
	})

	t.Run("CollectsAllErrors", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Database.MaxOpenConns = 0
		cfg.Database.QueryTimeout = -time.Second
		cfg.Log.Level = "loud"

		err := cfg.Validate()
		if err == nil {
			t.Fatal("Expected validation error")
		}
		for _, want := range []string{"max_open_conns", "query_timeout", "log.level"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("Expected error to mention %s, got %v", want, err)
			}
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("EnvironmentOverride", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("FLIGHTDB_DATABASE_URI", "sqlite:///other.db")
		t.Setenv("FLIGHTDB_LOG_LEVEL", "debug")

		v, err := NewViper("")
		if err != nil {
			t.Fatalf("NewViper failed: %v", err)
		}
		cfg, err := Load(v)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Database.URI != "sqlite:///other.db" {
			t.Errorf("Expected env URI, got '%s'", cfg.Database.URI)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Expected 'debug', got '%s'", cfg.Log.Level)
		}
	})

	t.Run("DotEnvFile", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		// Register with t.Setenv so the value godotenv sets is restored afterwards
		t.Setenv("FLIGHTDB_DATABASE_URI", "")
		os.Unsetenv("FLIGHTDB_DATABASE_URI")

		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("FLIGHTDB_DATABASE_URI=sqlite:///from-dotenv.db\n"), 0644); err != nil {
			t.Fatal(err)
		}

		v, err := NewViper("")
		if err != nil {
			t.Fatalf("NewViper failed: %v", err)
		}
		cfg, err := Load(v)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Database.URI != "sqlite:///from-dotenv.db" {
			t.Errorf("Expected .env URI, got '%s'", cfg.Database.URI)
		}
	})

	t.Run("ConfigFile", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		path := filepath.Join(dir, "custom.yaml")
		content := "database:\n  uri: mysql://u:p@localhost:3306/flights\n  query_timeout: 5s\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		v, err := NewViper(path)
		if err != nil {
			t.Fatalf("NewViper failed: %v", err)
		}
		cfg, err := Load(v)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Database.URI != "mysql://u:p@localhost:3306/flights" {
			t.Errorf("Expected file URI, got '%s'", cfg.Database.URI)
		}
		if cfg.Database.QueryTimeout != 5*time.Second {
			t.Errorf("Expected 5s timeout, got %s", cfg.Database.QueryTimeout)
		}
	})

	t.Run("MissingExplicitConfigFile", func(t *testing.T) {
		chdir(t, t.TempDir())
		if _, err := NewViper("does-not-exist.yaml"); err == nil {
			t.Error("Expected error for missing explicit config file")
		}
	})
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24)
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})
}
