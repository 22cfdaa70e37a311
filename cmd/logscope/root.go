package main

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mandalnilabja/logscope/internal/analysis"
	"github.com/mandalnilabja/logscope/internal/config"
	"github.com/mandalnilabja/logscope/internal/payload"
	"github.com/mandalnilabja/logscope/internal/report"
	"github.com/mandalnilabja/logscope/internal/storage"
)

// decodeCacheEntries bounds the per-run payload decode memo.
const decodeCacheEntries = 1024

type options struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "logscope [database_path]",
		Short: "Summarise failed requests recorded in a chat backend log database",
		Long: `logscope reads the request_logs table of a chat backend SQLite database
and prints overall counts, the latest 500 errors with payload analysis,
a per-provider breakdown and response error types.

The database is opened read-only. database_path defaults to the configured
db_path, $LOGSCOPE_DB_PATH, or ` + config.DefaultDBPath + `.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $LOGSCOPE_CONFIG or ./"+config.DefaultConfigFile+")")
	flags.StringVar(&opts.logLevel, "log-level", "", "diagnostic log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "diagnostic log format: text or json")

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, opts options, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.DBPath = args[0]
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}

	logger := setupLogger(stderr, cfg.LogLevel, cfg.LogFormat).With("run_id", uuid.NewString())
	logger.Info("starting analysis", "db_path", cfg.DBPath)

	store, err := storage.OpenSQLiteReader(ctx, cfg.DBPath)
	if err != nil {
		logger.Error("failed to open log store", "db_path", cfg.DBPath, "error", err)
		return err
	}
	defer store.Close()

	decoder, err := payload.NewDecoder(decodeCacheEntries)
	if err != nil {
		return err
	}
	defer decoder.Close()

	agg := analysis.New(store, analysis.Limits(cfg.Limits), logger)
	if err := report.New(agg, decoder, logger).Render(ctx, stdout, cfg.DBPath); err != nil {
		return err
	}

	logger.Info("analysis complete")
	return nil
}
