// Package config loads the cribbage HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "cribbage.hcl"

// Config represents the complete cribbage configuration
type Config struct {
	LogLevel    string             `hcl:"log_level,optional"`
	NoColor     bool               `hcl:"no_color,optional"`
	Parallelism int                `hcl:"parallelism,optional"`
	Histogram   *HistogramSettings `hcl:"histogram,block"`
	Server      *ServerSettings    `hcl:"server,block"`
}

// HistogramSettings controls the score distribution chart
type HistogramSettings struct {
	Width int `hcl:"width,optional"`
}

// ServerSettings contains websocket service configuration
type ServerSettings struct {
	Address string `hcl:"address,optional"`
	Port    int    `hcl:"port,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		Parallelism: 0,
		Histogram:   &HistogramSettings{Width: 80},
		Server: &ServerSettings{
			Address: "localhost",
			Port:    8080,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Histogram == nil {
		c.Histogram = def.Histogram
	} else if c.Histogram.Width == 0 {
		c.Histogram.Width = def.Histogram.Width
	}
	if c.Server == nil {
		c.Server = def.Server
	} else {
		if c.Server.Address == "" {
			c.Server.Address = def.Server.Address
		}
		if c.Server.Port == 0 {
			c.Server.Port = def.Server.Port
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must not be negative: %d", c.Parallelism)
	}
	if c.Histogram.Width < 20 {
		return fmt.Errorf("histogram width must be at least 20: %d", c.Histogram.Width)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	return nil
}

// ServerAddress returns the full server address
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
