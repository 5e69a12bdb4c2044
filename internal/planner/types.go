package planner

import "github.com/backmassage/clipcraft/internal/edit"

// Plan holds every decision needed to build one command. It is produced by
// BuildPlan and consumed by ffmpeg.Build.
type Plan struct {
	Execution edit.ExecutionType

	// Inputs are the merge sources, in order; input i is label [i] in the
	// filter graph.
	Inputs []string

	// Filters are filter-graph fragments in operation order. They are
	// joined with "," into a single -vf value.
	Filters []string

	// Rate is the rate control of the last Quality operation, nil when no
	// quality was requested.
	Rate *RateControl

	// MapOpts are the stream mapping flags set by a merge.
	MapOpts []string

	// OutputPath is the destination from the trailing path token, empty
	// when none was given.
	OutputPath string
}

// RateControl is the encoder rate control derived from a quality score.
type RateControl struct {
	CRF     int
	MaxRate float64 // Mbit/s.
	BufSize float64 // Mbit/s, always 2 x MaxRate.
}
