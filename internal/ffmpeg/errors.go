package ffmpeg

import "regexp"

// Pre-compiled regexes for classifying ffmpeg stderr output into operator
// hints. Checked in order by [Diagnose].
var (
	reMissingInput = regexp.MustCompile(
		`No such file or directory|does not exist`)

	reFilterGraph = regexp.MustCompile(
		`(?i)Error (initializing|reinitializing|configuring) (the )?(complex )?filter|` +
			`Invalid stream specifier|` +
			`Stream specifier .* matches no streams|` +
			`has an unconnected output|` +
			`No such filter`)

	reUnknownOption = regexp.MustCompile(
		`(?i)Unrecognized option|Option not found|Error setting option`)

	reOutputNotWritable = regexp.MustCompile(
		`(?i)Permission denied|Read-only file system|already exists\. Exiting`)
)

// MatchMissingInput reports whether stderr shows an input file that could not be opened.
func MatchMissingInput(stderr string) bool {
	return reMissingInput.MatchString(stderr)
}

// MatchFilterGraph reports whether stderr shows a filter graph or stream label error.
func MatchFilterGraph(stderr string) bool {
	return reFilterGraph.MatchString(stderr)
}

// MatchUnknownOption reports whether stderr shows an option the tool rejected.
func MatchUnknownOption(stderr string) bool {
	return reUnknownOption.MatchString(stderr)
}

// MatchOutputNotWritable reports whether stderr shows the output could not be written.
func MatchOutputNotWritable(stderr string) bool {
	return reOutputNotWritable.MatchString(stderr)
}

// Diagnose returns a one-line hint for a failed run, or "" when stderr
// matches none of the known failure patterns.
func Diagnose(stderr string) string {
	switch {
	case MatchMissingInput(stderr):
		return "an input file could not be opened; check the --merge paths"
	case MatchFilterGraph(stderr):
		return "the filter graph was rejected; --merge inputs need one video and one audio stream each"
	case MatchUnknownOption(stderr):
		return "the tool rejected an option; check the configured ffmpeg/ffplay binary"
	case MatchOutputNotWritable(stderr):
		return "the output file could not be written"
	}
	return ""
}
