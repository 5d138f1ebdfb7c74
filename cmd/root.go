// Package cmd implements the htmlcheck command-line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/north-cloud/htmlcheck/internal/checker"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/checks"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/config"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/grader"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/logger"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/report"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/source"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "1.0.0"

// Execute runs the root command.
func Execute() error {
	// Environment from .env is optional.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the htmlcheck command with its own configuration state.
func NewRootCommand() *cobra.Command {
	var (
		cfgFile string
		debug   bool
	)
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "htmlcheck",
		Short: "Check an HTML document for required CSS selectors",
		Long: `Checks that an HTML document, read from a local file or fetched from a URL,
contains each CSS selector listed in a checks file, and prints a JSON report
mapping every selector to whether it matched.

Example:
  htmlcheck --checks checks.json --file index.html
  htmlcheck -c checks.json -u https://example.com`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(v, cmd.Flags(), cfgFile, debug); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringP("checks", "c", checks.DefaultFile, "Path to checks.json")
	flags.StringP("file", "f", source.DefaultHTMLFile, "Path to index.html")
	flags.StringP("url", "u", "", "URL to check")
	flags.Bool("skip-invalid-selectors", false, "report malformed selectors as absent instead of failing")
	flags.StringP("output", "o", string(report.FormatJSON), "output format (json, table)")
	flags.StringVar(&cfgFile, "config", "", "config file (YAML)")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "htmlcheck version %s\n", Version)
		},
	})

	return cmd
}

// run validates the inputs, checks the document and writes the report to out.
func run(ctx context.Context, out, errOut io.Writer, cfg *config.Config) error {
	log, err := logger.NewWithWriter(cfg.Logger, errOut)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if err = validateSources(cfg); err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	reporter := report.New(out, format)

	c := checker.New(
		checker.WithSkipInvalid(cfg.Checker.SkipInvalidSelectors),
		checker.WithLogger(log.With("component", "checker")),
	)

	if cfg.UsesURL() {
		fetcher := source.NewURLFetcher(source.URLFetcherConfig{
			UserAgent:      cfg.Fetch.UserAgent,
			RequestTimeout: cfg.Fetch.RequestTimeout,
			MaxBodySize:    cfg.Fetch.MaxBodySize,
		}, log.With("component", "fetcher"))

		log.Info("Checking URL", "url", cfg.URL, "checks_file", cfg.ChecksFile)
		return grader.New(c, fetcher, log).CheckHTMLURL(ctx, cfg.URL, cfg.ChecksFile, reporter.Emit)
	}

	log.Info("Checking file", "file", cfg.HTMLFile, "checks_file", cfg.ChecksFile)
	result, err := grader.New(c, nil, log).CheckHTMLFile(cfg.HTMLFile, cfg.ChecksFile)
	if err != nil {
		return err
	}
	return reporter.Emit(result)
}

// validateSources requires the checks file to exist, and the HTML file when it
// is read or was set to something other than the default. A non-default file
// together with a URL is rejected.
func validateSources(cfg *config.Config) error {
	if _, err := source.AssertFileExists(cfg.ChecksFile); err != nil {
		return err
	}

	explicitFile := cfg.HTMLFile != source.DefaultHTMLFile
	if !cfg.UsesURL() || explicitFile {
		if _, err := source.AssertFileExists(cfg.HTMLFile); err != nil {
			return err
		}
	}

	if cfg.UsesURL() && explicitFile {
		return ErrConflictingSource
	}
	return nil
}
