package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmPrompt is printed after the command preview. Only an exact "Y"
// answer proceeds.
const ConfirmPrompt = "Are you sure you wanna execute? (Y/n): "

var commandStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))

// PrintPreview writes the command that is about to run followed by the
// confirmation prompt (no trailing newline, the answer goes on that line).
func PrintPreview(w io.Writer, invocation string, args []string) {
	line := style(w, commandStyle).Render(CommandLine(invocation, args))
	fmt.Fprintf(w, "The command that will be executed is:\n\n\t%s\n\n%s", line, ConfirmPrompt)
}
