// Package encoding assembles ffmpeg invocations and performs the
// temp-then-rename replacement of re-encoded files.
//
// Output is always written to a hidden sibling of the source so media servers
// watching the directory never pick up a half-written file; the original is
// replaced only after the encoder exits cleanly.
package encoding
