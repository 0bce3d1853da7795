package probe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/vpraion/homedia/internal/media/ffprobe"
	"github.com/vpraion/homedia/internal/services"
)

func fakeRunner(payload string) ffprobe.Runner {
	return func(context.Context, string, ...string) ([]byte, error) {
		return []byte(payload), nil
	}
}

func probePayload(codec string, width, height int, duration string, audioRates ...string) string {
	streams := fmt.Sprintf(`{"index":0,"codec_name":%q,"codec_type":"video","width":%d,"height":%d}`, codec, width, height)
	for i, rate := range audioRates {
		streams += fmt.Sprintf(`,{"index":%d,"codec_name":"aac","codec_type":"audio","bit_rate":%q}`, i+1, rate)
	}
	return fmt.Sprintf(`{"streams":[%s],"format":{"duration":%q}}`, streams, duration)
}

func writeFile(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.mkv")
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func TestIdentifyNormalizesCodec(t *testing.T) {
	p := New("ffprobe")
	p.Runner = fakeRunner(probePayload("HEVC, Main 10\r", 1920, 1080, "60"))

	result, err := p.Identify(context.Background(), "/lib/a.mkv")
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if result.Codec != "hevc" {
		t.Fatalf("expected normalized codec hevc, got %q", result.Codec)
	}
	if result.Pixels() != 1920*1080 {
		t.Fatalf("unexpected pixel count %d", result.Pixels())
	}
}

func TestIdentifyFailsWithoutVideoStreamOrDimensions(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"no video stream", `{"streams":[{"index":0,"codec_type":"audio"}],"format":{}}`},
		{"zero dimensions", probePayload("h264", 0, 1080, "60")},
		{"blank codec", probePayload("  ", 1280, 720, "60")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := New("ffprobe")
			p.Runner = fakeRunner(tc.payload)
			_, err := p.Identify(context.Background(), "/lib/a.mkv")
			if !errors.Is(err, services.ErrMetadata) {
				t.Fatalf("expected ErrMetadata, got %v", err)
			}
		})
	}
}

func TestMeasureDerivesObservedBitrate(t *testing.T) {
	// 2_500_000 bytes over 100s => 200 kb/s total, minus 50 kb/s audio.
	path := writeFile(t, 2_500_000)
	p := New("ffprobe")
	p.Runner = fakeRunner(probePayload("h264", 1920, 1080, "100", "50000"))

	result, err := p.Measure(context.Background(), path)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if result.AudioKbps != 50 {
		t.Fatalf("expected 50 kb/s audio, got %d", result.AudioKbps)
	}
	if result.ObservedKbps != 150 {
		t.Fatalf("expected 150 kb/s video estimate, got %d", result.ObservedKbps)
	}
}

func TestMeasureFallsBackToTotalWhenAudioDominates(t *testing.T) {
	// 125_000 bytes over 100s => 10 kb/s total; 50 kb/s of reported audio
	// would go negative, so the total stands.
	path := writeFile(t, 125_000)
	p := New("ffprobe")
	p.Runner = fakeRunner(probePayload("h264", 640, 480, "100", "50000"))

	result, err := p.Measure(context.Background(), path)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if result.ObservedKbps != 10 {
		t.Fatalf("expected total fallback of 10 kb/s, got %d", result.ObservedKbps)
	}
}

func TestMeasureFailsOnBadDurationOrSize(t *testing.T) {
	path := writeFile(t, 1024)

	for _, duration := range []string{"", "0", "N/A"} {
		p := New("ffprobe")
		p.Runner = fakeRunner(probePayload("h264", 1280, 720, duration))
		if _, err := p.Measure(context.Background(), path); !errors.Is(err, services.ErrMetadata) {
			t.Fatalf("duration %q: expected ErrMetadata, got %v", duration, err)
		}
	}

	empty := writeFile(t, 0)
	p := New("ffprobe")
	p.Runner = fakeRunner(probePayload("h264", 1280, 720, "60"))
	if _, err := p.Measure(context.Background(), empty); !errors.Is(err, services.ErrMetadata) {
		t.Fatalf("empty file: expected ErrMetadata, got %v", err)
	}
}

func TestNormalizeCodec(t *testing.T) {
	cases := map[string]string{
		"av1":             "av1",
		"AV01":            "av01",
		"h264, High":      "h264",
		" HEVC \r":        "hevc",
		"vp9,Profile 2\r": "vp9",
		"":                "",
		",h264":           "",
	}
	for input, want := range cases {
		if got := NormalizeCodec(input); got != want {
			t.Errorf("NormalizeCodec(%q) = %q, want %q", input, got, want)
		}
	}
}
