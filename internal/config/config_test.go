package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lensview/lens-go/pkg/constants"
)

func TestLoadConfigurationDefaults(t *testing.T) {
	conf, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() unexpected error = %v", err)
	}

	if conf.Service.Endpoint != constants.DefaultEndpoint {
		t.Errorf("endpoint = %s, expected %s", conf.Service.Endpoint, constants.DefaultEndpoint)
	}
}

func TestLoadConfigurationFromFile(t *testing.T) {
	doc := `service:
  endpoint: http://localhost:8080
logging:
  level: debug
  format: console
output:
  format: csv
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() unexpected error = %v", err)
	}

	if conf.Service.Endpoint != "http://localhost:8080" {
		t.Errorf("endpoint = %s, expected http://localhost:8080", conf.Service.Endpoint)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("logging level = %s, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %s, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("LoadConfiguration() expected error for missing file")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		override  string
		expectErr bool
	}{
		{
			name:      "Default level",
			level:     "",
			override:  "",
			expectErr: false,
		},
		{
			name:      "Config level",
			level:     "debug",
			override:  "",
			expectErr: false,
		},
		{
			name:      "Override wins",
			level:     "debug",
			override:  "error",
			expectErr: false,
		},
		{
			name:      "Invalid level",
			level:     "loud",
			override:  "",
			expectErr: true,
		},
		{
			name:      "Invalid override",
			level:     "info",
			override:  "silent",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(LoggingConfig{Level: tt.level}, tt.override)

			if tt.expectErr {
				if err == nil {
					t.Errorf("NewLogger(%s, %s) expected error but got none", tt.level, tt.override)
				}
				return
			}
			if err != nil {
				t.Errorf("NewLogger(%s, %s) unexpected error = %v", tt.level, tt.override, err)
			}
			if logger == nil {
				t.Errorf("NewLogger(%s, %s) returned nil logger", tt.level, tt.override)
			}
		})
	}
}

func TestNewLoggerInvalidFormat(t *testing.T) {
	_, err := NewLogger(LoggingConfig{Format: "xml"}, "")
	if err == nil {
		t.Fatal("NewLogger() expected error for invalid format")
	}
}
