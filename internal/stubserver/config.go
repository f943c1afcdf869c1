package stubserver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lensview/lens-go/internal/config"
	"github.com/lensview/lens-go/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the stub server.
type Config struct {
	Address     string               `yaml:"address"`
	MaxBodySize int64                `yaml:"maxBodySize"`
	Logging     config.LoggingConfig `yaml:"logging"`
}

// LoadConfig loads the stub server configuration from YAML. If the file does
// not exist, defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:     constants.DefaultStubAddress,
		MaxBodySize: constants.DefaultMaxBodySizeBytes,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read stub server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stub server config: %w", err)
	}

	if cfg.Address == "" {
		cfg.Address = constants.DefaultStubAddress
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = constants.DefaultMaxBodySizeBytes
	}
	return cfg, nil
}
