package ffmpeg

import (
	"strings"
	"testing"
)

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   string // substring of the hint, "" for no hint
	}{
		{"missing input", "a.mp4: No such file or directory", "--merge paths"},
		{"filter graph", "Error initializing complex filters.\nInvalid argument", "filter graph"},
		{"stream specifier", "Stream specifier ':a:0' in filtergraph description matches no streams.", "filter graph"},
		{"unknown option", "Unrecognized option 'crf'.", "rejected an option"},
		{"permission", "out.mp4: Permission denied", "could not be written"},
		{"clean", "frame= 100 fps=25", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diagnose(tt.stderr)
			if tt.want == "" {
				if got != "" {
					t.Errorf("Diagnose(%q) = %q, want no hint", tt.stderr, got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Diagnose(%q) = %q, want it to contain %q", tt.stderr, got, tt.want)
			}
		})
	}
}

func TestMatchers(t *testing.T) {
	if !MatchMissingInput("Error opening input: No such file or directory") {
		t.Error("MatchMissingInput")
	}
	if !MatchFilterGraph("No such filter: 'concatt'") {
		t.Error("MatchFilterGraph")
	}
	if !MatchUnknownOption("Error setting option maxrate to value 3M.") {
		t.Error("MatchUnknownOption")
	}
	if !MatchOutputNotWritable("File 'out.mp4' already exists. Exiting.") {
		t.Error("MatchOutputNotWritable")
	}
}
