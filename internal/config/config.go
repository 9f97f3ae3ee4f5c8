// Package config provides application configuration.
package config

// Default configuration values.
const (
	DefaultLogLevel       = "INFO"
	DefaultStyleName      = "github"
	DefaultViolationColor = "#ffcccc"
	DefaultConcurrency    = 4
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig is the resolved application configuration. Immutable; build it
// with LoadConfig or NewAppConfig.
type AppConfig struct {
	logLevel       string
	logFormat      LogFormat
	styleName      string
	violationColor string
	concurrency    int
}

// NewAppConfig creates an AppConfig, substituting defaults for zero values.
func NewAppConfig(logLevel string, logFormat LogFormat, styleName, violationColor string, concurrency int) AppConfig {
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}
	if logFormat != LogFormatJSON {
		logFormat = LogFormatPretty
	}
	if styleName == "" {
		styleName = DefaultStyleName
	}
	if violationColor == "" {
		violationColor = DefaultViolationColor
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return AppConfig{
		logLevel:       logLevel,
		logFormat:      logFormat,
		styleName:      styleName,
		violationColor: violationColor,
		concurrency:    concurrency,
	}
}

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// StyleName returns the syntax-highlighting style name.
func (c AppConfig) StyleName() string { return c.styleName }

// ViolationColor returns the flagged-line background colour.
func (c AppConfig) ViolationColor() string { return c.violationColor }

// Concurrency returns the number of files rendered in parallel.
func (c AppConfig) Concurrency() int { return c.concurrency }
