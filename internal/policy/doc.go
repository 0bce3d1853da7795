// Package policy holds the pure decision functions behind both pipelines:
// CRF selection for the constant-quality pass and recommended-bitrate math for
// the bitrate audit.
//
// Everything here is a deterministic function of numeric inputs and the
// configured baselines. The two policies answer different questions and are
// deliberately not reconciled: the quality pass asks "is this an outdated
// codec?" and never touches AV1 files, while the audit asks "is this wasting
// bitrate?" and will re-encode an oversized file regardless of codec.
package policy
