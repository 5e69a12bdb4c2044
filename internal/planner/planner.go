package planner

import (
	"fmt"

	"github.com/backmassage/clipcraft/internal/edit"
)

// UnrecognizedOpError is returned when an operation type has no folding rule.
type UnrecognizedOpError struct {
	Op edit.Op
}

func (e *UnrecognizedOpError) Error() string {
	return fmt.Sprintf("unrecognized operation %v", e.Op)
}

// BuildPlan folds ops into a Plan. Filters accumulate in operation order;
// a later Quality replaces an earlier one and a later Merge replaces the
// mapping flags.
func BuildPlan(ops []edit.Op) (*Plan, error) {
	plan := &Plan{Execution: edit.ExecDefault}

	for _, op := range ops {
		switch op := op.(type) {
		case edit.Resize:
			plan.Filters = append(plan.Filters, ScaleFilter(op.Width, op.Height))
		case edit.Quality:
			rc := QualityToRate(scoreToInt(op.Score))
			plan.Rate = &rc
		case edit.Merge:
			plan.Inputs = append(plan.Inputs, op.Paths...)
			plan.Filters = append(plan.Filters, ConcatGraph(len(op.Paths)))
			plan.MapOpts = ConcatMapOpts()
		case edit.Execution:
			plan.Execution = op.Type
		case edit.OutFilePath:
			plan.OutputPath = op.Path
		default:
			return nil, &UnrecognizedOpError{Op: op}
		}
	}
	return plan, nil
}

// scoreToInt converts a parsed score without overflowing; anything past
// QualityMax clamps to the same rate control anyway.
func scoreToInt(score uint) int {
	if score > QualityMax {
		return QualityMax
	}
	return int(score)
}
