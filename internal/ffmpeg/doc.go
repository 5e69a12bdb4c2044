// Package ffmpeg compiles edit operations into an ffmpeg (or ffplay)
// command and runs it.
//
// Argument layout produced by [Build]:
//
//	<invocation> [-i <merge input> ...] [-vf <filters>] [-crf C -maxrate RM -bufsize BM] [-map ... -vsync 0] [<output>]
//
// The filter, rate-control and mapping groups always appear in that order,
// whatever order the operations were given in.
package ffmpeg
