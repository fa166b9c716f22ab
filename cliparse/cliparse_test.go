// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/danielhkuo/twosevenths/models"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseMemory {
		t.Errorf("expected memory database, got %q", cfg.DatabaseType)
	}
	if !slices.Equal(cfg.Options, models.DefaultOptionSet()) {
		t.Errorf("expected default options, got %v", cfg.Options)
	}
	if cfg.MaxMessageLength != 200 || cfg.DefaultListLimit != 20 || cfg.MaxListLimit != 100 {
		t.Errorf("unexpected limits: %+v", cfg)
	}
	if cfg.TimelineSize != 100 {
		t.Errorf("expected timeline 100, got %d", cfg.TimelineSize)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Errorf("expected no origins, got %v", cfg.AllowedOrigins)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_TYPE", "sqlite")
	os.Setenv("DATABASE_URL", "file:test.db")
	os.Setenv("POLL_OPTIONS", "yes, no")
	os.Setenv("MAX_MESSAGE_LENGTH", "50")
	os.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite || cfg.DatabaseURL != "file:test.db" {
		t.Errorf("unexpected database settings: %q %q", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if !slices.Equal(cfg.Options, models.OptionSet{"yes", "no"}) {
		t.Errorf("expected options [yes no], got %v", cfg.Options)
	}
	if cfg.MaxMessageLength != 50 {
		t.Errorf("expected max length 50, got %d", cfg.MaxMessageLength)
	}
	if !slices.Equal(cfg.AllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DEFAULT_LIST_LIMIT", "5")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-default-limit", "10", "-timeline", "0"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DefaultListLimit != 10 {
		t.Errorf("CLI should override env: expected 10, got %d", cfg.DefaultListLimit)
	}
	if cfg.TimelineSize != 0 {
		t.Errorf("expected timeline disabled, got %d", cfg.TimelineSize)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"unknown database type", []string{"-t", "mysql"}, nil},
		{"missing database URL", []string{"-t", "postgres"}, nil},
		{"duplicate options", []string{"-options", "a,b,a"}, nil},
		{"empty option label", []string{"-options", "a,,b"}, nil},
		{"max below default", []string{"-default-limit", "50", "-max-limit", "10"}, nil},
		{"negative message length", []string{"-max-message-length", "-1"}, nil},
		{"bad port env", nil, map[string]string{"PORT": "abc"}},
		{"port out of range", []string{"-p", "70000"}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Clearenv()
			defer os.Clearenv()
			for k, v := range tc.env {
				os.Setenv(k, v)
			}

			if _, err := ParseFlags(tc.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=7000\nPOLL_OPTIONS=left,right\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	os.Setenv("POLL_OPTIONS", "up,down")

	if err := LoadEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 7000 {
		t.Errorf("expected port from .env, got %d", cfg.Port)
	}
	// Existing environment wins over the file
	if !slices.Equal(cfg.Options, models.OptionSet{"up", "down"}) {
		t.Errorf("expected options from env, got %v", cfg.Options)
	}
}
