// Package ffprobe wraps the external ffprobe binary and decodes its JSON
// output into typed stream and container metadata.
//
// The wrapper stays deliberately thin: it reports what the tool said and leaves
// interpretation (codec normalization, bitrate derivation, skip decisions) to
// the probe package.
package ffprobe
