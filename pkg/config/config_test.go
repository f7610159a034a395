package config

import (
	"strings"
	"testing"
)

func productionConfig() *Config {
	return &Config{
		Environment:       EnvProduction,
		LogLevel:          "info",
		PublicBaseURL:     "https://ecoleta.example.org",
		ImageStoreBackend: ImageBackendGCS,
		GCSBucket:         "ecoleta-points",
		ImageMaxBytes:     5 << 20,
	}
}

func TestValidateForProduction(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid production config", func(*Config) {}, ""},
		{"non-production is never validated", func(c *Config) {
			c.Environment = EnvDevelopment
			c.LogLevel = "debug"
			c.PublicBaseURL = "http://localhost:8080"
		}, ""},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"localhost public url", func(c *Config) { c.PublicBaseURL = "http://localhost:8080" }, "localhost"},
		{"relative public url", func(c *Config) { c.PublicBaseURL = "/uploads" }, "absolute URL"},
		{"gcs without bucket", func(c *Config) { c.GCSBucket = " " }, "GCS_BUCKET"},
		{"disk backend needs no bucket", func(c *Config) {
			c.ImageStoreBackend = ImageBackendDisk
			c.GCSBucket = ""
		}, ""},
		{"zero image limit", func(c *Config) { c.ImageMaxBytes = 0 }, "IMAGE_MAX_BYTES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}
