package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsMatchBuiltinHeuristics(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if cfg.Quality.AnimeCRF != 31 || cfg.Quality.CartoonCRF != 32 || cfg.Quality.MovieCRF != 26 {
		t.Fatalf("unexpected CRF baselines: %+v", cfg.Quality)
	}
	if cfg.Quality.MinCRF != 18 || cfg.Quality.MaxCRF != 40 {
		t.Fatalf("unexpected CRF clamp: %+v", cfg.Quality)
	}
	if cfg.Audit.AnimeKbps != 2500 || cfg.Audit.MovieKbps != 4000 || cfg.Audit.CartoonKbps != 1700 {
		t.Fatalf("unexpected bitrate baselines: %+v", cfg.Audit)
	}
	if cfg.Audit.FloorKbps != 500 || cfg.Audit.MarginPercent != 10 {
		t.Fatalf("unexpected bitrate floor/margin: %+v", cfg.Audit)
	}
	if len(cfg.Scan.Extensions) != 7 {
		t.Fatalf("unexpected extension defaults: %v", cfg.Scan.Extensions)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if cfg.Encoder.FFmpegBinary != "ffmpeg" {
		t.Fatalf("unexpected ffmpeg binary: %q", cfg.Encoder.FFmpegBinary)
	}
}

func TestLoadAppliesOverridesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "homedia.toml")
	content := `
[scan]
extensions = [".MKV", "mp4", "mkv", ""]

[encoder]
preset = 8
temp_suffix = ""

[audit]
margin_percent = 25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if got := cfg.Scan.Extensions; len(got) != 2 || got[0] != "mkv" || got[1] != "mp4" {
		t.Fatalf("extensions not normalized: %v", got)
	}
	if cfg.Encoder.Preset != 8 {
		t.Fatalf("preset override lost: %d", cfg.Encoder.Preset)
	}
	if cfg.Encoder.TempSuffix != ".homedia.tmp" {
		t.Fatalf("empty temp_suffix should fall back to default, got %q", cfg.Encoder.TempSuffix)
	}
	if cfg.Audit.MarginPercent != 25 {
		t.Fatalf("margin override lost: %d", cfg.Audit.MarginPercent)
	}
	// Untouched sections keep defaults.
	if cfg.Quality.MovieCRF != 26 {
		t.Fatalf("movie CRF default lost: %d", cfg.Quality.MovieCRF)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"empty extensions", "[scan]\nextensions = []\n", "scan.extensions"},
		{"bad preset", "[encoder]\npreset = 99\n", "encoder.preset"},
		{"inverted clamp", "[quality]\nmin_crf = 50\nmax_crf = 20\n", "min_crf"},
		{"negative margin", "[audit]\nmargin_percent = -1\n", "margin_percent"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "homedia.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestExtensionSetCarriesDots(t *testing.T) {
	cfg := Default()
	set := cfg.ExtensionSet()
	for _, want := range []string{".mkv", ".mp4", ".webm"} {
		if _, ok := set[want]; !ok {
			t.Fatalf("missing %s in %v", want, set)
		}
	}
}

func TestCreateSampleWritesEmbeddedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[encoder]") {
		t.Fatalf("sample config missing encoder section")
	}
}
