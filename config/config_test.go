package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Curated: CuratedConfig{
			URL:      "https://api.curated.co/api/v3",
			APIKey:   "valid-api-key",
			PageSize: 100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing URL",
			mutate:  func(c *Config) { c.Curated.URL = "" },
			wantErr: true,
		},
		{
			name:    "missing API key",
			mutate:  func(c *Config) { c.Curated.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "placeholder API key",
			mutate:  func(c *Config) { c.Curated.APIKey = "your-api-key-here" },
			wantErr: true,
		},
		{
			name:    "negative page size",
			mutate:  func(c *Config) { c.Curated.PageSize = -1 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads file and applies defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		contents := []byte("curated:\n  api_key: test-key\n  publication_id: \"42\"\n")
		if err := os.WriteFile(path, contents, 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Curated.APIKey != "test-key" {
			t.Errorf("APIKey = %q, want %q", cfg.Curated.APIKey, "test-key")
		}
		if cfg.Curated.PublicationID != "42" {
			t.Errorf("PublicationID = %q, want %q", cfg.Curated.PublicationID, "42")
		}
		if cfg.Curated.URL != "https://api.curated.co/api/v3" {
			t.Errorf("URL default not applied, got %q", cfg.Curated.URL)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("Logging.Level default not applied, got %q", cfg.Logging.Level)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("Load() expected error for missing file")
		}
	})

	t.Run("invalid file fails validation", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		contents := []byte("curated:\n  api_key: test-key\nlogging:\n  level: verbose\n")
		if err := os.WriteFile(path, contents, 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := Load(path); err == nil {
			t.Fatal("Load() expected validation error")
		}
	})
}
