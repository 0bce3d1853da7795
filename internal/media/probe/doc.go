// Package probe interprets ffprobe output into the per-file metadata the
// encode policies consume: dimensions, normalized codec identity, and, for
// bitrate audits, an observed video bitrate estimate.
//
// A file whose dimensions, codec, duration, or size cannot be established is
// reported as a metadata failure and never re-encoded.
package probe
