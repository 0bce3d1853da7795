package services

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapTagsMarkerAndDetail(t *testing.T) {
	inner := errors.New("exit status 1")
	err := Wrap(ErrExternalTool, "encoder", "transcode", "ffmpeg failed", inner)

	if !errors.Is(err, ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool marker in %v", err)
	}
	if !errors.Is(err, inner) {
		t.Fatalf("expected wrapped inner error in %v", err)
	}
	if !strings.Contains(err.Error(), "encoder: transcode: ffmpeg failed") {
		t.Fatalf("unexpected detail: %v", err)
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := Wrap(nil, "probe", "", "", nil)
	if !errors.Is(err, ErrExternalTool) {
		t.Fatalf("nil marker should default to ErrExternalTool: %v", err)
	}
}

func TestIsFatal(t *testing.T) {
	if !IsFatal(Wrap(ErrConfiguration, "cli", "parse", "bad media kind", nil)) {
		t.Fatal("configuration errors are fatal")
	}
	if IsFatal(Wrap(ErrMetadata, "probe", "dimensions", "missing video stream", nil)) {
		t.Fatal("metadata errors are per-file")
	}
}
