package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/vpraion/homedia/internal/deps"
	"github.com/vpraion/homedia/internal/encoding"
	"github.com/vpraion/homedia/internal/logging"
	"github.com/vpraion/homedia/internal/media/probe"
	"github.com/vpraion/homedia/internal/policy"
	"github.com/vpraion/homedia/internal/services"
	"github.com/vpraion/homedia/internal/workflow"
)

type pipelineMode int

const (
	modeQuality pipelineMode = iota
	modeAudit
)

func (m pipelineMode) String() string {
	if m == modeAudit {
		return "bitrate audit"
	}
	return "constant quality"
}

// runPipeline is the shared driver behind the encode and audit commands:
// validate inputs, check tools, take the single-run lock, and hand off to the
// workflow runner.
func (c *commandContext) runPipeline(cmd *cobra.Command, mode pipelineMode, media, root string, dryRun bool) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	genre, err := policy.ParseGenre(media)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "cli", "parse media", err.Error(), nil)
	}

	rootPath, err := filepath.Abs(root)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "cli", "resolve root", root, err)
	}
	info, err := os.Stat(rootPath)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "cli", "inspect root", rootPath, err)
	}
	if !info.IsDir() {
		return services.Wrap(services.ErrConfiguration, "cli", "inspect root",
			fmt.Sprintf("%s is not a directory", rootPath), nil)
	}

	statuses := deps.CheckBinaries(deps.Required(cfg.Encoder.FFmpegBinary, cfg.Encoder.FFprobeBinary))
	if missing, ok := deps.MissingRequired(statuses); ok {
		return services.Wrap(services.ErrConfiguration, "cli", "check tools",
			fmt.Sprintf("%s unavailable: %s", missing.Name, missing.Detail), nil)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Paths.LockPath), 0o755); err != nil {
		return services.Wrap(services.ErrConfiguration, "cli", "prepare lock", cfg.Paths.LockPath, err)
	}
	lock := flock.New(cfg.Paths.LockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "cli", "acquire lock", cfg.Paths.LockPath, err)
	}
	if !locked {
		return services.Wrap(services.ErrConfiguration, "cli", "acquire lock",
			"another homedia run is already active", nil)
	}
	defer func() { _ = lock.Unlock() }()

	logger, err := c.newRunLogger()
	if err != nil {
		return err
	}
	logger.Info("starting run",
		logging.String("mode", mode.String()),
		logging.String("genre", genre.String()),
		logging.String("root", rootPath),
		logging.Bool("dry_run", dryRun),
	)

	prober := probe.New(cfg.Encoder.FFprobeBinary)
	invoker := encoding.NewInvoker(cfg.Encoder, nil, logger)
	runner := workflow.New(cfg, prober, invoker, logger)

	opts := workflow.Options{Genre: genre, Root: rootPath, DryRun: dryRun}
	var summary workflow.Summary
	if mode == modeAudit {
		summary = runner.RunAudit(cmd.Context(), opts)
	} else {
		summary = runner.RunQuality(cmd.Context(), opts)
	}

	out := cmd.OutOrStdout()
	if summary.Empty() {
		fmt.Fprintf(out, "No media files found under %s\n", rootPath)
		return nil
	}
	fmt.Fprintln(out, renderSummary(mode, genre, summary, dryRun))
	return nil
}
