package planner

import (
	"fmt"
	"strings"
)

// ScaleFilter returns the scale fragment for a resize.
func ScaleFilter(width, height int) string {
	return fmt.Sprintf("scale=%d:%d", width, height)
}

// ConcatGraph returns the filter graph that concatenates n inputs, video
// and first audio stream of each, into the [outv] and [outa] pads:
//
//	[0][v0];[1][v1];[v0][0:a:0][v1][1:a:0]concat=n=2:v=1:a=1[outv][outa]
func ConcatGraph(n int) string {
	passthrough := make([]string, n)
	var concatIn strings.Builder
	for i := 0; i < n; i++ {
		passthrough[i] = fmt.Sprintf("[%d][v%d]", i, i)
		fmt.Fprintf(&concatIn, "[v%d][%d:a:0]", i, i)
	}
	return fmt.Sprintf("%s;%sconcat=n=%d:v=1:a=1[%s][%s]",
		strings.Join(passthrough, ";"), concatIn.String(), n, ConcatVideoPad, ConcatAudioPad)
}

// Output pads of ConcatGraph.
const (
	ConcatVideoPad = "outv"
	ConcatAudioPad = "outa"
)

// ConcatMapOpts maps the concat output pads and disables frame-rate sync.
func ConcatMapOpts() []string {
	return []string{
		"-map", "[" + ConcatVideoPad + "]",
		"-map", "[" + ConcatAudioPad + "]",
		"-vsync", "0",
	}
}

// JoinFilters joins filter fragments into one -vf value. Empty fragments
// are dropped.
func JoinFilters(filters []string) string {
	kept := make([]string, 0, len(filters))
	for _, f := range filters {
		if f != "" {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, ",")
}
