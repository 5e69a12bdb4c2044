package edit

import (
	"fmt"
	"strings"
)

// Op is one structured edit operation. The set of implementations is
// closed: Resize, Quality, Merge, Execution and OutFilePath.
type Op interface {
	fmt.Stringer
	isOp()
}

// ExecutionType selects which tool consumes the compiled command.
type ExecutionType int

const (
	ExecDefault ExecutionType = iota // Transcode to the output path.
	ExecPreview                      // Play the result instead of writing it.
)

func (t ExecutionType) String() string {
	if t == ExecPreview {
		return "Preview"
	}
	return "Default"
}

// Resize scales the video to Width x Height.
type Resize struct {
	Width  int
	Height int
}

// Quality is a 0-100 quality score. Values above 100 are accepted here and
// clamped when rate control is computed.
type Quality struct {
	Score uint
}

// Merge concatenates two or more clips in order.
type Merge struct {
	Paths []string
}

// Execution carries the execution type requested on the command line.
type Execution struct {
	Type ExecutionType
}

// OutFilePath is the destination file. At most one per operation list,
// always last.
type OutFilePath struct {
	Path string
}

func (Resize) isOp()      {}
func (Quality) isOp()     {}
func (Merge) isOp()       {}
func (Execution) isOp()   {}
func (OutFilePath) isOp() {}

func (r Resize) String() string { return fmt.Sprintf("Resize(%d, %d)", r.Width, r.Height) }
func (q Quality) String() string { return fmt.Sprintf("Quality(%d)", q.Score) }
func (e Execution) String() string { return fmt.Sprintf("ExecutionType(%s)", e.Type) }
func (o OutFilePath) String() string { return fmt.Sprintf("OutFilePath(%q)", o.Path) }

func (m Merge) String() string {
	quoted := make([]string, len(m.Paths))
	for i, p := range m.Paths {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return "Merge([" + strings.Join(quoted, ", ") + "])"
}

// Describe renders an operation list as "[Op, Op, ...]" for logging.
func Describe(ops []Op) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
