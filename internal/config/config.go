// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/lensview/lens-go/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the lens summary client.
type Configuration struct {
	Service ServiceConfig `yaml:"service,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// ServiceConfig holds the model summary service parameters.
type ServiceConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"` // defaults to the lensview endpoint
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path returns the defaults without touching
// the filesystem.
func LoadConfiguration(configPath string) (*Configuration, error) {
	var configuration Configuration
	if configPath == "" {
		configuration.applyDefaults()
		return &configuration, nil
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.Service.Endpoint == "" {
		conf.Service.Endpoint = constants.DefaultEndpoint
	}
}
