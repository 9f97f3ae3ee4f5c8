package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is stripped from environment variable names below.
const envPrefix = "COVREPORT"

// EnvConfig holds environment-based configuration.
type EnvConfig struct {
	// LogLevel is the log verbosity level.
	// Env: COVREPORT_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: COVREPORT_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Style is the syntax-highlighting style name.
	// Env: COVREPORT_STYLE (default: github)
	Style string `envconfig:"STYLE" default:"github"`

	// ViolationColor is the flagged-line background colour.
	// Env: COVREPORT_VIOLATION_COLOR (default: #ffcccc)
	ViolationColor string `envconfig:"VIOLATION_COLOR" default:"#ffcccc"`

	// Concurrency is the number of files rendered in parallel.
	// Env: COVREPORT_CONCURRENCY (default: 4)
	Concurrency int `envconfig:"CONCURRENCY" default:"4"`
}

// LoadFromEnv reads configuration from COVREPORT_-prefixed environment
// variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("process environment: %w", err)
	}
	return cfg, nil
}

// ToAppConfig converts environment configuration into the resolved form.
func (c EnvConfig) ToAppConfig() AppConfig {
	format := LogFormatPretty
	if strings.EqualFold(c.LogFormat, string(LogFormatJSON)) {
		format = LogFormatJSON
	}
	return NewAppConfig(strings.ToUpper(c.LogLevel), format, c.Style, c.ViolationColor, c.Concurrency)
}
