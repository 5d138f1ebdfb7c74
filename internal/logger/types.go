// Package logger provides logging functionality for the application.
package logger

// Level represents the logging level.
type Level string

const (
	// DebugLevel logs debug messages.
	DebugLevel Level = "debug"
	// InfoLevel logs info messages.
	InfoLevel Level = "info"
	// WarnLevel logs warning messages.
	WarnLevel Level = "warn"
	// ErrorLevel logs error messages.
	ErrorLevel Level = "error"
)

// Default configuration values.
const (
	// DefaultLevel keeps routine runs quiet; only warnings and failures reach stderr.
	DefaultLevel = WarnLevel
	// DefaultEncoding is the default log encoding format.
	DefaultEncoding = "console"
)

// Config holds logger settings.
type Config struct {
	// Level is the minimum logging level (debug, info, warn, error).
	Level Level `mapstructure:"level"`
	// Encoding is the log encoding format (console, json).
	Encoding string `mapstructure:"encoding"`
	// Development enables colored levels and caller information.
	Development bool `mapstructure:"development"`
}
