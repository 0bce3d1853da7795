// Package services defines the error classification shared by the subprocess
// wrappers and the workflow driver.
//
// Errors are tagged with sentinel markers so the driver can tell fatal
// configuration problems apart from per-file failures that only increment a
// counter.
package services
