package config

import (
	"strings"
	"testing"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func validConfig() *Config {
	return &Config{
		Qonqr: QonqrConfig{
			BaseURL:   "https://api.qonqr.com/pub/zones/",
			APIKey:    "valid-app-key",
			APISecret: testSecret,
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
		errPart string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.Qonqr.APIKey = "" },
			wantErr: true,
			errPart: "api_key",
		},
		{
			name:    "placeholder api key",
			mutate:  func(c *Config) { c.Qonqr.APIKey = "your-api-key-here" },
			wantErr: true,
			errPart: "api_key",
		},
		{
			name:    "secret wrong length",
			mutate:  func(c *Config) { c.Qonqr.APISecret = "too-short" },
			wantErr: true,
			errPart: "api_secret",
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
			errPart: "logging level",
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
			errPart: "logging format",
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
			if err != nil && tt.errPart != "" && !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("validate() error = %v, want it to mention %q", err, tt.errPart)
			}
		})
	}
}
