package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/clipcraft/internal/term"
)

const banner = `      _ _                       __ _
  ___| (_)_ __   ___ _ __ __ _ / _| |_
 / __| | | '_ \ / __| '__/ _` + "`" + ` | |_| __|
| (__| | | |_) | (__| | | (_| |  _| |_
 \___|_|_| .__/ \___|_|  \__,_|_|  \__|
         |_|`

// PrintBanner writes the ASCII art banner, in magenta when colors are on.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, style(w, bannerStyle).Render(banner))
}

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))

// style binds s to a renderer for w whose color profile follows the
// configured color mode rather than lipgloss's own detection.
func style(w io.Writer, s lipgloss.Style) lipgloss.Style {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(term.Profile())
	return s.Renderer(r)
}
