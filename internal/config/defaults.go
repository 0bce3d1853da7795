package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultLogDir        = "~/.local/share/homedia/logs"
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"
	defaultVideoCodec    = "libsvtav1"
	defaultPreset        = 6
	defaultTempSuffix    = ".homedia.tmp"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"

	defaultAnimeCRF   = 31
	defaultCartoonCRF = 32
	defaultMovieCRF   = 26
	defaultMinCRF     = 18
	defaultMaxCRF     = 40

	defaultAnimeKbps     = 2500
	defaultMovieKbps     = 4000
	defaultCartoonKbps   = 1700
	defaultFloorKbps     = 500
	defaultMarginPercent = 10
)

// DefaultExtensions lists the recognized video file extensions.
var DefaultExtensions = []string{"mkv", "mp4", "mov", "avi", "ts", "m4v", "webm"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			LockPath: defaultLockPath(),
		},
		Scan: Scan{
			Extensions: append([]string(nil), DefaultExtensions...),
		},
		Encoder: Encoder{
			FFmpegBinary:  defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
			VideoCodec:    defaultVideoCodec,
			Preset:        defaultPreset,
			TempSuffix:    defaultTempSuffix,
		},
		Quality: Quality{
			AnimeCRF:   defaultAnimeCRF,
			CartoonCRF: defaultCartoonCRF,
			MovieCRF:   defaultMovieCRF,
			MinCRF:     defaultMinCRF,
			MaxCRF:     defaultMaxCRF,
		},
		Audit: Audit{
			AnimeKbps:     defaultAnimeKbps,
			MovieKbps:     defaultMovieKbps,
			CartoonKbps:   defaultCartoonKbps,
			FloorKbps:     defaultFloorKbps,
			MarginPercent: defaultMarginPercent,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultLockPath() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "homedia", "homedia.lock")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/homedia/homedia.lock"
	}
	return filepath.Join(home, ".cache", "homedia", "homedia.lock")
}
