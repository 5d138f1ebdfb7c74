// Package config assembles htmlcheck settings from flags, environment and an
// optional config file.
package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/jonesrussell/north-cloud/htmlcheck/internal/checks"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/logger"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/report"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/source"
)

// EnvPrefix prefixes every environment override, e.g. HTMLCHECK_FETCH_USER_AGENT.
const EnvPrefix = "HTMLCHECK"

// Config holds all htmlcheck settings.
type Config struct {
	// ChecksFile is the path of the selector list.
	ChecksFile string `mapstructure:"checks"`
	// HTMLFile is the local HTML document, used when URL is empty.
	HTMLFile string `mapstructure:"file"`
	// URL is the remote HTML document.
	URL     string        `mapstructure:"url"`
	Checker CheckerConfig `mapstructure:"checker"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Output  OutputConfig  `mapstructure:"output"`
	Logger  logger.Config `mapstructure:"logger"`
}

// CheckerConfig holds selector evaluation settings.
type CheckerConfig struct {
	// SkipInvalidSelectors records malformed selectors as absent instead of failing.
	SkipInvalidSelectors bool `mapstructure:"skip_invalid_selectors"`
}

// FetchConfig holds URL retrieval settings.
type FetchConfig struct {
	UserAgent string `mapstructure:"user_agent"`
	// RequestTimeout of zero disables the timeout.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxBodySize    int           `mapstructure:"max_body_size"`
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Defaults returns the default settings keyed the way viper stores them.
func Defaults() map[string]any {
	return map[string]any{
		"checks": checks.DefaultFile,
		"file":   source.DefaultHTMLFile,
		"url":    "",
		"checker": map[string]any{
			"skip_invalid_selectors": false,
		},
		"fetch": map[string]any{
			"user_agent":      source.DefaultUserAgent,
			"request_timeout": "0s",
			"max_body_size":   0,
		},
		"output": map[string]any{
			"format": string(report.FormatJSON),
		},
		"logger": map[string]any{
			"level":       string(logger.DefaultLevel),
			"encoding":    logger.DefaultEncoding,
			"development": false,
		},
	}
}

// FromSettings decodes a nested settings map, as returned by viper's
// AllSettings, into a Config.
func FromSettings(settings map[string]any) (*Config, error) {
	cfg := &Config{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("create config decoder: %w", err)
	}

	if err = decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings that cannot be corrected by defaults.
func (c *Config) Validate() error {
	if c.ChecksFile == "" {
		return &ValidationError{Field: "checks", Value: c.ChecksFile, Reason: "checks file must be specified"}
	}
	if c.URL == "" && c.HTMLFile == "" {
		return &ValidationError{Field: "file", Value: c.HTMLFile, Reason: "html file or url must be specified"}
	}
	if c.Fetch.RequestTimeout < 0 {
		return &ValidationError{Field: "fetch.request_timeout", Value: c.Fetch.RequestTimeout, Reason: "must not be negative"}
	}
	if c.Fetch.MaxBodySize < 0 {
		return &ValidationError{Field: "fetch.max_body_size", Value: c.Fetch.MaxBodySize, Reason: "must not be negative"}
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return &ValidationError{Field: "output.format", Value: c.Output.Format, Reason: err.Error()}
	}
	switch c.Logger.Encoding {
	case "", "console", "json":
	default:
		return &ValidationError{Field: "logger.encoding", Value: c.Logger.Encoding, Reason: "must be console or json"}
	}
	switch c.Logger.Level {
	case "", logger.DebugLevel, logger.InfoLevel, logger.WarnLevel, logger.ErrorLevel:
	default:
		return &ValidationError{Field: "logger.level", Value: c.Logger.Level, Reason: "must be debug, info, warn or error"}
	}
	return nil
}

// UsesURL reports whether the document comes from a URL.
func (c *Config) UsesURL() bool {
	return c.URL != ""
}
