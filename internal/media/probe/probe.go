package probe

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/vpraion/homedia/internal/media/ffprobe"
	"github.com/vpraion/homedia/internal/services"
)

// Result carries the metadata extracted for a single media file.
type Result struct {
	Path   string
	Width  int
	Height int
	Codec  string

	// Populated by Measure only.
	DurationSeconds float64
	SizeBytes       int64
	AudioKbps       int64
	ObservedKbps    int64
}

// Pixels returns the frame pixel count.
func (r Result) Pixels() int {
	return r.Width * r.Height
}

// Prober runs ffprobe against library files.
type Prober struct {
	Binary string
	Runner ffprobe.Runner
}

// New returns a Prober using the given ffprobe binary.
func New(binary string) *Prober {
	return &Prober{Binary: binary}
}

// Identify extracts dimensions and codec identity. Errors are tagged
// services.ErrMetadata so the driver counts the file as a metadata skip.
func (p *Prober) Identify(ctx context.Context, path string) (Result, error) {
	inspected, err := ffprobe.Inspect(ctx, p.Runner, p.Binary, path)
	if err != nil {
		return Result{}, services.Wrap(services.ErrMetadata, "probe", "inspect", "", err)
	}
	return p.identify(path, inspected)
}

// Measure extracts everything Identify does plus duration, size, and the
// observed video bitrate estimate used by the bitrate audit.
func (p *Prober) Measure(ctx context.Context, path string) (Result, error) {
	inspected, err := ffprobe.Inspect(ctx, p.Runner, p.Binary, path)
	if err != nil {
		return Result{}, services.Wrap(services.ErrMetadata, "probe", "inspect", "", err)
	}
	result, err := p.identify(path, inspected)
	if err != nil {
		return Result{}, err
	}

	duration := inspected.DurationSeconds()
	if math.IsNaN(duration) || duration <= 0 {
		return Result{}, services.Wrap(services.ErrMetadata, "probe", "duration",
			fmt.Sprintf("no usable container duration for %s", path), nil)
	}
	result.DurationSeconds = duration

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, services.Wrap(services.ErrMetadata, "probe", "stat", path, err)
	}
	if info.Size() <= 0 {
		return Result{}, services.Wrap(services.ErrMetadata, "probe", "stat",
			fmt.Sprintf("%s is empty", path), nil)
	}
	result.SizeBytes = info.Size()

	result.AudioKbps = inspected.AudioBitRateKbpsSum()
	result.ObservedKbps = observedVideoKbps(result.SizeBytes, duration, result.AudioKbps)
	return result, nil
}

func (p *Prober) identify(path string, inspected ffprobe.Result) (Result, error) {
	video, ok := inspected.FirstVideoStream()
	if !ok {
		return Result{}, services.Wrap(services.ErrMetadata, "probe", "dimensions",
			fmt.Sprintf("no video stream in %s", path), nil)
	}
	if video.Width <= 0 || video.Height <= 0 {
		return Result{}, services.Wrap(services.ErrMetadata, "probe", "dimensions",
			fmt.Sprintf("malformed dimensions %dx%d in %s", video.Width, video.Height, path), nil)
	}
	codec := NormalizeCodec(video.CodecName)
	if codec == "" {
		return Result{}, services.Wrap(services.ErrMetadata, "probe", "codec",
			fmt.Sprintf("no video codec reported for %s", path), nil)
	}
	return Result{
		Path:   path,
		Width:  video.Width,
		Height: video.Height,
		Codec:  codec,
	}, nil
}

// observedVideoKbps estimates the video-only bitrate from container size and
// duration. When audio streams report bitrates, their sum is subtracted as
// long as the remainder stays positive; otherwise the total stands.
func observedVideoKbps(sizeBytes int64, durationSeconds float64, audioKbps int64) int64 {
	total := int64(float64(sizeBytes) * 8 / 1000 / durationSeconds)
	if audioKbps > 0 {
		if video := total - audioKbps; video > 0 {
			return video
		}
	}
	return total
}

// NormalizeCodec reduces an ffprobe codec report to a comparable identifier:
// everything past the first comma is dropped, whitespace and carriage returns
// stripped, and the result lowercased.
func NormalizeCodec(raw string) string {
	if idx := strings.IndexByte(raw, ','); idx >= 0 {
		raw = raw[:idx]
	}
	raw = strings.ReplaceAll(raw, "\r", "")
	return strings.ToLower(strings.TrimSpace(raw))
}
