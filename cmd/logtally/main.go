package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/modoterra/logtally/internal/buildinfo"
	"github.com/modoterra/logtally/pkg/analysis"
	"github.com/modoterra/logtally/pkg/config"
	"github.com/modoterra/logtally/pkg/prompt"
	"github.com/modoterra/logtally/pkg/report"
	"github.com/modoterra/logtally/pkg/source"
)

var (
	configPath string
	limitFlag  int
	outputFlag string
	levelFlag  string

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("logtally failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "logtally [file]",
	Short:         "Count API calls in an access log",
	Long:          "logtally parses the head of an access log and prints call counts per endpoint, per minute and per status code.",
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runAnalyze,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to logtally.yaml (default ./"+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().StringVar(&levelFlag, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().IntVar(&limitFlag, "limit", 0, "number of records kept from the head of the file")
	rootCmd.Flags().StringVar(&outputFlag, "output", "", "output format: table or json")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// --- Root: analyze ---

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogger(cfg); err != nil {
		return err
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		path, err = prompt.Ask(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	runner := analysis.NewRunner(source.New(logger), cfg.Limit, logger)
	res, err := runner.Run(path)
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), cfg.Output, res)
}

// loadConfig merges the config file (if any) with command-line flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()

	switch {
	case configPath != "":
		c, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		if _, err := os.Stat(config.DefaultPath); err == nil {
			c, err := config.Load(config.DefaultPath)
			if err != nil {
				return nil, err
			}
			cfg = c
		}
	}

	if limitFlag > 0 {
		cfg.Limit = limitFlag
	}
	if outputFlag != "" {
		cfg.Output = outputFlag
	}
	if levelFlag != "" {
		cfg.LogLevel = levelFlag
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return cfg, nil
}

func setupLogger(cfg *config.Config) error {
	lv, err := cfg.Level()
	if err != nil {
		return err
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
	return nil
}

// --- Version ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "logtally %s (%s) built %s\n", buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	},
}

// --- Config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage logtally.yaml",
}

var configInitOutput string

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a logtally.yaml with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.Save(config.Default(), configInitOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", configInitOutput)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a logtally.yaml",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultPath
		if len(args) > 0 {
			path = args[0]
		}

		c, err := config.Load(path)
		if err != nil {
			return err
		}

		errs := config.Validate(c)
		if len(errs) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", path)
			return nil
		}

		for _, e := range errs {
			fmt.Fprintf(cmd.ErrOrStderr(), "  • %s\n", e)
		}
		return fmt.Errorf("%s: %d error(s)", path, len(errs))
	},
}

func init() {
	configInitCmd.Flags().StringVar(&configInitOutput, "output", config.DefaultPath, "output file path")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
}
