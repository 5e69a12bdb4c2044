// Package planner folds a parsed edit operation list into a Plan that the
// ffmpeg package turns into command arguments.
//
//   - Plan, RateControl (types.go)
//   - BuildPlan: per-operation folding into filter, rate and mapping groups (planner.go)
//   - QualityToRate: quality score to CRF/maxrate/bufsize curve (quality.go)
//   - ScaleFilter, ConcatGraph, JoinFilters: filter-graph fragments (filter.go)
package planner
