package workflow

import (
	"context"
	"log/slog"

	"github.com/vpraion/homedia/internal/config"
	"github.com/vpraion/homedia/internal/encoding"
	"github.com/vpraion/homedia/internal/logging"
	"github.com/vpraion/homedia/internal/media/probe"
	"github.com/vpraion/homedia/internal/policy"
	"github.com/vpraion/homedia/internal/scan"
)

// Options describes one pipeline run.
type Options struct {
	Genre  policy.Genre
	Root   string
	DryRun bool
}

// Runner executes a pipeline over a library tree.
type Runner struct {
	cfg     *config.Config
	prober  *probe.Prober
	invoker *encoding.Invoker
	logger  *slog.Logger
}

// New builds a Runner. The prober and invoker carry their own subprocess
// seams, so tests construct them with fakes.
func New(cfg *config.Config, prober *probe.Prober, invoker *encoding.Invoker, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:     cfg,
		prober:  prober,
		invoker: invoker,
		logger:  logging.WithComponent(logger, "workflow"),
	}
}

// RunQuality executes the constant-quality pipeline: every probeable file not
// already in the target codec is re-encoded at a genre- and resolution-derived
// CRF.
func (r *Runner) RunQuality(ctx context.Context, opts Options) Summary {
	var summary Summary
	for path := range scan.Files(opts.Root, r.cfg.ExtensionSet(), r.cfg.Encoder.TempSuffix) {
		if ctx.Err() != nil {
			break
		}
		summary.record(r.qualityFile(ctx, path, opts, &summary))
	}
	return summary
}

func (r *Runner) qualityFile(ctx context.Context, path string, opts Options, summary *Summary) Outcome {
	result, err := r.prober.Identify(ctx, path)
	if err != nil {
		r.logger.Warn("skipping file without usable metadata",
			logging.String("path", path), logging.Error(err))
		return OutcomeMetadataSkip
	}
	summary.Analyzed++

	decision := policy.DecideQuality(result.Codec, opts.Genre, result.Pixels(), r.cfg.Quality)
	if decision.Action == policy.ActionAlreadyTarget {
		r.logger.Info("already in target codec",
			logging.String("path", path), logging.String("codec", result.Codec))
		return OutcomeAlreadyTarget
	}

	r.logger.Info("re-encode candidate",
		logging.String("path", path),
		logging.String("codec", result.Codec),
		logging.Int("ratio", policy.ResolutionRatio(result.Pixels())),
		logging.Int("crf", decision.CRF),
	)
	if opts.DryRun {
		return OutcomeCandidate
	}
	if err := r.invoker.EncodeQuality(ctx, path, decision.CRF); err != nil {
		r.logger.Error("encode failed", logging.String("path", path), logging.Error(err))
		return OutcomeFailed
	}
	r.logger.Info("re-encoded", logging.String("path", path), logging.Int("crf", decision.CRF))
	return OutcomeReEncoded
}

// RunAudit executes the bitrate-audit pipeline: files whose observed bitrate
// exceeds the recommendation by more than the configured margin are re-encoded
// at the recommended bitrate, regardless of their current codec.
func (r *Runner) RunAudit(ctx context.Context, opts Options) Summary {
	var summary Summary
	for path := range scan.Files(opts.Root, r.cfg.ExtensionSet(), r.cfg.Encoder.TempSuffix) {
		if ctx.Err() != nil {
			break
		}
		summary.record(r.auditFile(ctx, path, opts, &summary))
	}
	return summary
}

func (r *Runner) auditFile(ctx context.Context, path string, opts Options, summary *Summary) Outcome {
	result, err := r.prober.Measure(ctx, path)
	if err != nil {
		r.logger.Warn("skipping file without usable metadata",
			logging.String("path", path), logging.Error(err))
		return OutcomeMetadataSkip
	}
	summary.Analyzed++

	recommended := policy.RecommendedKbps(opts.Genre, result.Pixels(), r.cfg.Audit)
	summary.ObservedKbpsSum += result.ObservedKbps
	summary.RecommendedKbpsSum += recommended

	decision := policy.DecideAudit(result.ObservedKbps, recommended, r.cfg.Audit.MarginPercent)
	if decision.Action == policy.ActionSkip {
		r.logger.Info("within bitrate budget",
			logging.String("path", path),
			logging.Int64("observed_kbps", result.ObservedKbps),
			logging.Int64("recommended_kbps", recommended),
		)
		return OutcomeSkip
	}

	r.logger.Info("oversized file",
		logging.String("path", path),
		logging.String("codec", result.Codec),
		logging.Int64("observed_kbps", result.ObservedKbps),
		logging.Int64("recommended_kbps", recommended),
	)
	if opts.DryRun {
		return OutcomeCandidate
	}
	if err := r.invoker.EncodeBitrate(ctx, path, decision.TargetKbps); err != nil {
		r.logger.Error("encode failed", logging.String("path", path), logging.Error(err))
		return OutcomeFailed
	}
	r.logger.Info("re-encoded",
		logging.String("path", path), logging.Int64("target_kbps", decision.TargetKbps))
	return OutcomeReEncoded
}
