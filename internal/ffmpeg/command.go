package ffmpeg

import (
	"errors"
	"fmt"
	"strings"
)

// Command is a compiled invocation. It is not modified after Compile returns.
type Command struct {
	Invocation string
	Args       []string
}

// String returns the invocation and arguments joined by single spaces,
// without shell quoting.
func (c *Command) String() string {
	if len(c.Args) == 0 {
		return c.Invocation
	}
	return c.Invocation + " " + strings.Join(c.Args, " ")
}

// ErrUnrecognizedArg matches any *CompileError through errors.Is.
var ErrUnrecognizedArg = errors.New("unrecognized argument")

// CompileError reports an operation the compiler has no rule for.
type CompileError struct {
	Op  string // String form of the offending operation.
	Err error  // Underlying planner error.
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("UnrecognizedArg: cannot compile %s", e.Op)
}

func (e *CompileError) Unwrap() []error { return []error{ErrUnrecognizedArg, e.Err} }

// GoString renders the error in debug form.
func (e *CompileError) GoString() string {
	return fmt.Sprintf("UnrecognizedArg(%q)", e.Op)
}
