package encoding

import (
	"path/filepath"
	"strconv"
	"strings"
)

// formatHint maps a source extension to the explicit output-format flag ffmpeg
// needs when it cannot infer the container. Unknown extensions get no hint and
// the encoder is left to infer or fail.
func formatHint(sourcePath string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(sourcePath), ".")) {
	case "mkv":
		return "matroska"
	case "mp4", "m4v", "mov":
		return "mp4"
	case "webm":
		return "webm"
	case "ts":
		return "mpegts"
	case "avi":
		return "avi"
	default:
		return ""
	}
}

// qualityArgs builds the constant-quality invocation: remap every stream,
// re-encode video stream 0 at the given CRF, copy audio and subtitles, and
// regenerate presentation timestamps.
func qualityArgs(source, temp, codec string, crf, preset int) []string {
	args := []string{
		"-y",
		"-hide_banner",
		"-nostdin",
		"-fflags", "+genpts",
		"-i", source,
		"-map", "0",
		"-c:v:0", codec,
		"-crf", strconv.Itoa(crf),
		"-preset", strconv.Itoa(preset),
		"-c:a", "copy",
		"-c:s", "copy",
	}
	if hint := formatHint(source); hint != "" {
		args = append(args, "-f", hint)
	}
	return append(args, temp)
}

// bitrateArgs builds the bitrate-audit invocation: copy all streams by
// default, overriding only video stream 0 to the target bitrate.
func bitrateArgs(source, temp, codec string, targetKbps int64, preset int) []string {
	args := []string{
		"-y",
		"-hide_banner",
		"-nostdin",
		"-i", source,
		"-map", "0",
		"-c", "copy",
		"-c:v:0", codec,
		"-b:v", strconv.FormatInt(targetKbps, 10) + "k",
		"-preset", strconv.Itoa(preset),
	}
	if hint := formatHint(source); hint != "" {
		args = append(args, "-f", hint)
	}
	return append(args, temp)
}
