// Package pipeline runs one clipcraft invocation end to end:
//
//	tokens → edit.Parse → ffmpeg.Plan/Build → preview + confirmation → execute
//
// Parse and compile failures are printed in debug form and end the run
// without an error exit. Execution only happens after an exact "Y" answer
// and when enabled in the configuration.
package pipeline
