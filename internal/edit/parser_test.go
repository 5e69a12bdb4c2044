package edit

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_ValidSequences(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []Op
	}{
		{"output only", []string{"prog", "out.mp4"}, []Op{OutFilePath{Path: "out.mp4"}}},
		{"program only", []string{"prog"}, nil},
		{
			"resize",
			[]string{"prog", "--resize", "1920:1080", "out.mp4"},
			[]Op{Resize{Width: 1920, Height: 1080}, OutFilePath{Path: "out.mp4"}},
		},
		{
			"negative dimension keeps sign",
			[]string{"prog", "--resize", "-1:720", "out.mp4"},
			[]Op{Resize{Width: -1, Height: 720}, OutFilePath{Path: "out.mp4"}},
		},
		{
			"quality",
			[]string{"prog", "--quality", "50", "out.mp4"},
			[]Op{Quality{Score: 50}, OutFilePath{Path: "out.mp4"}},
		},
		{
			"quality above 100 is accepted",
			[]string{"prog", "--quality", "250", "out.mp4"},
			[]Op{Quality{Score: 250}, OutFilePath{Path: "out.mp4"}},
		},
		{
			"preview",
			[]string{"prog", "--preview", "out.mp4"},
			[]Op{Execution{Type: ExecPreview}, OutFilePath{Path: "out.mp4"}},
		},
		{
			"merge stops before output path",
			[]string{"prog", "--merge", "a.mp4", "b.mp4", "c.mp4", "out.mp4"},
			[]Op{Merge{Paths: []string{"a.mp4", "b.mp4", "c.mp4"}}, OutFilePath{Path: "out.mp4"}},
		},
		{
			"merge swallows later flags",
			[]string{"prog", "--merge", "a.mp4", "--preview", "out.mp4"},
			[]Op{Merge{Paths: []string{"a.mp4", "--preview"}}, OutFilePath{Path: "out.mp4"}},
		},
		{
			"encounter order preserved",
			[]string{"prog", "--preview", "--quality", "80", "--resize", "640:360", "--merge", "x.mkv", "y.mkv", "out.mkv"},
			[]Op{
				Execution{Type: ExecPreview},
				Quality{Score: 80},
				Resize{Width: 640, Height: 360},
				Merge{Paths: []string{"x.mkv", "y.mkv"}},
				OutFilePath{Path: "out.mkv"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.tokens)
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error %v", tt.tokens, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.tokens, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		wantKind Kind
		wantErr  error
		contains string
	}{
		{"empty stream", nil, KindShouldNotHappen, ErrShouldNotHappen, ""},
		{"resize missing value", []string{"prog", "--resize"}, KindResize, ErrResize, "found nothing"},
		{"resize one part", []string{"prog", "--resize", "1920", "out.mp4"}, KindResize, ErrResize, `"1920"`},
		{"resize three parts", []string{"prog", "--resize", "1:2:3", "out.mp4"}, KindResize, ErrResize, `"1:2:3"`},
		{"resize non-integer", []string{"prog", "--resize", "wide:1080", "out.mp4"}, KindResize, ErrResize, "non-integer"},
		{"resize empty part", []string{"prog", "--resize", "1920:", "out.mp4"}, KindResize, ErrResize, "non-integer"},
		{"quality missing value", []string{"prog", "--quality"}, KindQuality, ErrQuality, "found nothing"},
		{"quality non-integer", []string{"prog", "--quality", "high", "out.mp4"}, KindQuality, ErrQuality, `"high"`},
		{"quality negative", []string{"prog", "--quality", "-5", "out.mp4"}, KindQuality, ErrQuality, `"-5"`},
		{"merge one path", []string{"prog", "--merge", "a.mp4", "out.mp4"}, KindMerge, ErrMerge, "found 1 [a.mp4]"},
		{"merge no paths", []string{"prog", "--merge", "out.mp4"}, KindMerge, ErrMerge, "found 0"},
		{"merge at end of stream", []string{"prog", "--merge"}, KindMerge, ErrMerge, "found 0"},
		{"unexpected bare token", []string{"prog", "unexpected", "out.mp4"}, KindUnknown, ErrUnknown, `"unexpected"`},
		{"unknown flag", []string{"prog", "--speed", "2", "out.mp4"}, KindUnknown, ErrUnknown, `"--speed"`},
		{"two trailing paths after flag", []string{"prog", "--preview", "a.mp4", "b.mp4"}, KindUnknown, ErrUnknown, `"a.mp4"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := Parse(tt.tokens)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.tokens, Describe(ops))
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if pe.Kind != tt.wantKind {
				t.Errorf("kind: got %s, want %s", pe.Kind, tt.wantKind)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.wantErr)
			}
			if !strings.Contains(pe.Message, tt.contains) {
				t.Errorf("message %q does not contain %q", pe.Message, tt.contains)
			}
			if ops != nil {
				t.Errorf("ops on error: got %v, want nil", Describe(ops))
			}
		})
	}
}

func TestParse_ResizeRoundTrip(t *testing.T) {
	dims := [][2]int{{1920, 1080}, {0, 0}, {-2, 480}, {7680, -4320}, {2147483647, -2147483648}}
	for _, d := range dims {
		token := fmt.Sprintf("%d:%d", d[0], d[1])
		ops, err := Parse([]string{"prog", "--resize", token, "out.mp4"})
		if err != nil {
			t.Fatalf("Parse resize %s: %v", token, err)
		}
		want := Resize{Width: d[0], Height: d[1]}
		if ops[0] != want {
			t.Errorf("resize %s: got %v, want %v", token, ops[0], want)
		}
	}
}

func TestParse_AtMostOneOutputPath(t *testing.T) {
	ops, err := Parse([]string{"prog", "--resize", "1280:720", "--quality", "70", "--preview", "clip.mp4"})
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for i, op := range ops {
		if _, ok := op.(OutFilePath); ok {
			count++
			if i != len(ops)-1 {
				t.Errorf("OutFilePath at index %d, want last (%d)", i, len(ops)-1)
			}
		}
	}
	if count != 1 {
		t.Errorf("OutFilePath count: got %d, want 1", count)
	}
}

func TestParse_PathCheck(t *testing.T) {
	errMissing := errors.New("no such file")
	check := func(path string) error {
		if path == "missing.mp4" {
			return errMissing
		}
		return nil
	}

	_, err := Parse([]string{"prog", "--merge", "a.mp4", "missing.mp4", "out.mp4"}, WithPathCheck(check))
	if !errors.Is(err, ErrFilepath) {
		t.Fatalf("got %v, want Filepath error", err)
	}
	if !strings.Contains(err.Error(), "missing.mp4") {
		t.Errorf("error %q should name the rejected path", err)
	}

	ops, err := Parse([]string{"prog", "--merge", "a.mp4", "b.mp4", "out.mp4"}, WithPathCheck(check))
	if err != nil {
		t.Fatalf("valid paths rejected: %v", err)
	}
	if len(ops) != 2 {
		t.Errorf("ops: got %v", Describe(ops))
	}
}

func TestParseError_DebugForm(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Kind: KindMerge, Message: "too few"}, `Merge("too few")`},
		{&ParseError{Kind: KindUnknown, Message: `argument "x" is not recognized`}, `Unknown("argument \"x\" is not recognized")`},
		{&ParseError{Kind: KindShouldNotHappen}, "ShouldNotHappen"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf("%#v", tt.err); got != tt.want {
			t.Errorf("%%#v: got %s, want %s", got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	ops := []Op{
		Resize{Width: 1920, Height: 1080},
		Quality{Score: 50},
		Merge{Paths: []string{"a.mp4", "b.mp4"}},
		Execution{Type: ExecPreview},
		OutFilePath{Path: "out.mp4"},
	}
	want := `[Resize(1920, 1080), Quality(50), Merge(["a.mp4", "b.mp4"]), ExecutionType(Preview), OutFilePath("out.mp4")]`
	if got := Describe(ops); got != want {
		t.Errorf("Describe:\n got %s\nwant %s", got, want)
	}
}
