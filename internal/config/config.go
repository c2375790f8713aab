// Package config loads the serialcmd session configuration from a YAML file
// and applies it to a console session.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"serialcmd/internal/console"
	"serialcmd/pkg/cmdtypes"
)

// Config holds the tunable session settings plus the transport and logging
// options used by the serialcmd binary.
type Config struct {
	Echo         bool   `yaml:"echo"`
	CRLFEcho     bool   `yaml:"crlf_echo"`
	CRLFResponse bool   `yaml:"crlf_response"`
	Delimiter    string `yaml:"delimiter"`
	Terminators  string `yaml:"terminators"`
	Listen       string `yaml:"listen"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
}

// Default returns the configuration matching the interpreter defaults.
func Default() *Config {
	return &Config{
		Echo:         true,
		CRLFEcho:     false,
		CRLFResponse: true,
		Delimiter:    string(rune(cmdtypes.DefaultDelimiter)),
		Terminators:  cmdtypes.DefaultTerminators,
		Listen:       "localhost:7700",
	}
}

// Load reads a YAML configuration file over the defaults, so absent keys keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the session settings for values the interpreter cannot
// honor.
func (c *Config) Validate() error {
	if len(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be exactly one character, got %q", c.Delimiter)
	}
	if len(c.Terminators) == 0 || len(c.Terminators) > cmdtypes.MaxTerminators {
		return fmt.Errorf("terminators must be one or two characters, got %q", c.Terminators)
	}
	if c.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	return nil
}

// Apply configures a console session with the session settings.
func (c *Config) Apply(con *console.Console) {
	con.Echo(c.Echo)
	con.CRLFEcho(c.CRLFEcho)
	con.CRLFResponse(c.CRLFResponse)
	con.SetDelimiter(c.Delimiter[0])
	con.SetTerminators(c.Terminators)
}
