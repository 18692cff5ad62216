package configs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultTimeoutSeconds = 15

// Config holds one invocation's settings. It is normally generated
// from command-line flags, but can also be loaded from a YAML file so
// that site-wide defaults (thresholds, timeout) can be shared between
// service definitions.
type Config struct {
	// WarningKB and CriticalKB are resident-set-size thresholds in
	// kilobytes. nil means the threshold is unset and never triggers.
	WarningKB  *int64 `yaml:"warning,omitempty"`
	CriticalKB *int64 `yaml:"critical,omitempty"`

	// NoMatchOK makes an empty match set report OK instead of UNKNOWN.
	NoMatchOK bool `yaml:"no_filter_match"`

	// Process filters. Zero values mean the filter is not applied.
	FName   string `yaml:"fname"`
	CmdLine string `yaml:"cmndline"`
	UID     string `yaml:"uid"`
	GID     string `yaml:"gid"`
	PID     int    `yaml:"pid"`
	PidFile string `yaml:"pidfile"`

	TimeoutSeconds int  `yaml:"timeout"`
	Verbose        bool `yaml:"verbose"`

	File string `yaml:"-"`
}

func NewConfig() *Config {
	return &Config{
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

func NewConfigWithBytes(b []byte) (*Config, error) {
	config := NewConfig()
	if err := yaml.Unmarshal(b, config); err != nil {
		return nil, err
	}
	return config, nil
}

func NewConfigWithFile(file string) (*Config, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	config, err := NewConfigWithBytes(b)
	if err != nil {
		return nil, err
	}
	config.File = file
	return config, nil
}

func (c *Config) Verify() error {
	if c == nil {
		return errors.New("config is null")
	}
	if c.WarningKB != nil && c.CriticalKB != nil && *c.WarningKB > *c.CriticalKB {
		return fmt.Errorf("warning threshold (%dKB) must not exceed critical threshold (%dKB)",
			*c.WarningKB, *c.CriticalKB)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", c.TimeoutSeconds)
	}
	if c.PID < 0 {
		return fmt.Errorf("pid must not be negative, got %d", c.PID)
	}
	return nil
}
