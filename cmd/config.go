package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jonesrussell/north-cloud/htmlcheck/internal/config"
)

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"checks":                 "checks",
	"file":                   "file",
	"url":                    "url",
	"skip-invalid-selectors": "checker.skip_invalid_selectors",
	"output":                 "output.format",
}

// initConfig layers defaults, config file, environment and flags into v.
func initConfig(v *viper.Viper, flags *pflag.FlagSet, cfgFile string, debug bool) error {
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range config.Defaults() {
		v.SetDefault(key, value)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", cfgFile, err)
		}
	}

	if err := bindCommandLineFlags(v, flags); err != nil {
		return err
	}

	if debug {
		v.Set("logger.level", "debug")
	}

	return nil
}

// bindCommandLineFlags binds command-line flags to Viper.
func bindCommandLineFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for flagName, key := range flagKeys {
		flag := flags.Lookup(flagName)
		if flag == nil {
			return fmt.Errorf("flag %s is not defined", flagName)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind %s flag: %w", flagName, err)
		}
	}
	return nil
}

// loadConfig decodes and validates the layered settings.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	cfg, err := config.FromSettings(v.AllSettings())
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
