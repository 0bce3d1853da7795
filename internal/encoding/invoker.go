package encoding

import (
	"context"
	"log/slog"
	"os"
	"os/exec"

	"github.com/vpraion/homedia/internal/config"
	"github.com/vpraion/homedia/internal/logging"
	"github.com/vpraion/homedia/internal/services"
)

// Runner executes an encoder invocation and returns its combined output.
// Tests substitute it to avoid shelling out.
type Runner func(ctx context.Context, binary string, args ...string) ([]byte, error)

// ExecRunner invokes the real binary.
func ExecRunner(ctx context.Context, binary string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, binary, args...).CombinedOutput()
}

// Invoker shells out to the media encoder and replaces sources in place.
type Invoker struct {
	cfg    config.Encoder
	runner Runner
	logger *slog.Logger
}

// NewInvoker builds an Invoker from the encoder configuration. A nil runner
// uses the real binary.
func NewInvoker(cfg config.Encoder, runner Runner, logger *slog.Logger) *Invoker {
	if runner == nil {
		runner = ExecRunner
	}
	return &Invoker{
		cfg:    cfg,
		runner: runner,
		logger: logging.WithComponent(logger, "encoder"),
	}
}

// EncodeQuality transcodes video stream 0 to the target codec at the given
// CRF and atomically replaces the source on success.
func (inv *Invoker) EncodeQuality(ctx context.Context, source string, crf int) error {
	temp := TempPath(source, inv.cfg.TempSuffix)
	args := qualityArgs(source, temp, inv.cfg.VideoCodec, crf, inv.cfg.Preset)
	return inv.run(ctx, source, temp, args)
}

// EncodeBitrate transcodes video stream 0 to the target codec at the given
// target bitrate, copying everything else, and atomically replaces the source
// on success.
func (inv *Invoker) EncodeBitrate(ctx context.Context, source string, targetKbps int64) error {
	temp := TempPath(source, inv.cfg.TempSuffix)
	args := bitrateArgs(source, temp, inv.cfg.VideoCodec, targetKbps, inv.cfg.Preset)
	return inv.run(ctx, source, temp, args)
}

func (inv *Invoker) run(ctx context.Context, source, temp string, args []string) error {
	inv.logger.Debug("invoking encoder",
		logging.String("binary", inv.cfg.FFmpegBinary),
		logging.String("source", source),
		logging.String("temp", temp),
	)

	output, err := inv.runner(ctx, inv.cfg.FFmpegBinary, args...)
	if err != nil {
		// Discard the partial output; the original stays untouched.
		_ = os.Remove(temp)
		if diagnostics := FilterNoise(string(output)); diagnostics != "" {
			inv.logger.Error("encoder failed",
				logging.String("source", source),
				logging.String("diagnostics", diagnostics),
			)
		}
		return services.Wrap(services.ErrExternalTool, "encoder", "transcode", source, err)
	}

	if err := os.Rename(temp, source); err != nil {
		_ = os.Remove(temp)
		return services.Wrap(services.ErrExternalTool, "encoder", "replace original", source, err)
	}
	return nil
}
