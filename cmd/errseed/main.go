// Command errseed generates synthetic error records and ships them to
// Google Cloud Logging so they surface in Error Reporting.
//
// Per-record send failures are summarized, never fatal: the exit status is
// non-zero only when the project ID cannot be resolved or setup fails.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/strongdm/errseed/internal/config"
	"github.com/strongdm/errseed/internal/project"
	"github.com/strongdm/errseed/pkg/errseed"
	"github.com/strongdm/errseed/pkg/errseed/transports/cloudlog"
	"github.com/strongdm/errseed/pkg/errseed/transports/multi"
	"github.com/strongdm/errseed/pkg/errseed/transports/stderr"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		projectID  = pflag.String("project-id", "", "Google Cloud project ID (defaults to environment or gcloud config)")
		count      = pflag.Int("count", 10, "Number of error records to generate")
		formatStr  = pflag.String("format", string(errseed.FormatAll), "Payload format: text-trace, json-trace, typed-event, reported-event, nested-custom, or all")
		prefix     = pflag.String("prefix", "", "Text prepended to every record's message and trace")
		seed       = pflag.Int64("seed", 0, "Seed for deterministic output (0 means time-seeded)")
		logName    = pflag.String("log-name", cloudlog.DefaultLogName, "Cloud Logging log name to write to")
		configPath = pflag.String("config", "", "Path to an optional YAML run configuration")
		dryRun     = pflag.Bool("dry-run", false, "Print records to stderr instead of sending them")
		verbose    = pflag.Bool("verbose", false, "Include full payloads in dry-run output and enable debug logging")
	)
	pflag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return 1
	}
	applyConfig(cfg, pflag.CommandLine, projectID, count, formatStr, prefix, seed, logName)

	format, err := errseed.ParseFormat(*formatStr)
	if err != nil {
		logger.Error("invalid format", zap.Error(err))
		return 1
	}
	if *count < 0 {
		logger.Error("count must not be negative", zap.Int("count", *count))
		return 1
	}

	ctx := context.Background()

	transport, cleanup, err := buildTransport(ctx, logger, *dryRun, *verbose, *projectID, *logName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer cleanup()

	opts := []errseed.GeneratorOption{
		errseed.WithTransport(transport),
		errseed.WithPrefix(*prefix),
		errseed.WithReportWriter(os.Stdout),
	}
	if *seed != 0 {
		opts = append(opts, errseed.WithSeed(*seed))
	}
	gen := errseed.NewGenerator(opts...)

	result := gen.RunBatch(ctx, *count, format)
	logger.Info("batch complete",
		zap.Int("attempted", result.Attempted),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed()),
	)

	if !*dryRun {
		fmt.Println("\nCheck Google Cloud Console:")
		fmt.Println("  - Logging: https://console.cloud.google.com/logs")
		fmt.Println("  - Error Reporting: https://console.cloud.google.com/errors")
	}

	// Per-record failures are already summarized; configuration succeeded.
	return 0
}

// applyConfig fills in file values for flags the user did not set.
func applyConfig(cfg *config.Config, flags *pflag.FlagSet, projectID *string, count *int, formatStr, prefix *string, seed *int64, logName *string) {
	if cfg.ProjectID != "" && !flags.Changed("project-id") {
		*projectID = cfg.ProjectID
	}
	if cfg.Count != 0 && !flags.Changed("count") {
		*count = cfg.Count
	}
	if cfg.Format != "" && !flags.Changed("format") {
		*formatStr = cfg.Format
	}
	if cfg.Prefix != "" && !flags.Changed("prefix") {
		*prefix = cfg.Prefix
	}
	if cfg.Seed != nil && !flags.Changed("seed") {
		*seed = *cfg.Seed
	}
	if cfg.LogName != "" && !flags.Changed("log-name") {
		*logName = cfg.LogName
	}
}

// buildTransport resolves the project and connects the Cloud Logging
// transport, or substitutes the stderr transport for dry runs.
func buildTransport(ctx context.Context, logger *zap.Logger, dryRun, verbose bool, projectID, logName string) (errseed.Transport, func(), error) {
	if dryRun {
		logger.Info("dry run, printing records to stderr")
		transport := stderr.NewTransport(stderrOptions(verbose)...)
		return transport, func() {}, nil
	}

	resolved, err := project.Resolve(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("resolved project", zap.String("project_id", resolved))

	transport, err := cloudlog.New(ctx, resolved, cloudlog.WithLogName(logName))
	if err != nil {
		return nil, nil, fmt.Errorf("initialize transport: %w", err)
	}
	logger.Info("logger initialized", zap.String("log_name", logName))

	// Verbose live runs mirror every record to stderr alongside delivery.
	if verbose {
		transport = multi.NewTransport(transport, stderr.NewTransport(stderr.WithVerbose()))
	}

	cleanup := func() {
		if err := transport.Flush(ctx); err != nil {
			logger.Warn("flush failed", zap.Error(err))
		}
		if err := transport.Close(); err != nil {
			logger.Warn("close failed", zap.Error(err))
		}
	}
	return transport, cleanup, nil
}

func stderrOptions(verbose bool) []stderr.Option {
	if verbose {
		return []stderr.Option{stderr.WithVerbose()}
	}
	return nil
}

// newLogger builds the operational logger on stderr, keeping stdout free
// for the batch report.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
