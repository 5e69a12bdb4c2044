package edit

import (
	"strconv"
	"strings"

	"github.com/backmassage/clipcraft/internal/cursor"
)

// Flag tokens recognized by Parse. Anything else is a candidate output path.
const (
	FlagResize  = "--resize"
	FlagQuality = "--quality"
	FlagPreview = "--preview"
	FlagMerge   = "--merge"
)

// PathCheck validates a merge input path. A nil PathCheck accepts any string.
type PathCheck func(path string) error

// Option configures Parse.
type Option func(*parser)

// WithPathCheck makes Parse reject merge inputs for which check fails. The
// failure is reported as a Filepath error.
func WithPathCheck(check PathCheck) Option {
	return func(p *parser) { p.checkPath = check }
}

type parser struct {
	cur       *cursor.Cursor[string]
	checkPath PathCheck
	ops       []Op
}

// Parse turns raw process arguments (program name first) into edit
// operations in the order they were given.
func Parse(tokens []string, opts ...Option) ([]Op, error) {
	p := &parser{cur: cursor.New(tokens)}
	for _, opt := range opts {
		opt(p)
	}
	return p.parse()
}

func (p *parser) parse() ([]Op, error) {
	// The first token is the program itself.
	if _, err := p.cur.NextOr(&ParseError{Kind: KindShouldNotHappen}); err != nil {
		return nil, err
	}

	for {
		tok, ok := p.cur.Next()
		if !ok {
			return p.ops, nil
		}

		var (
			op  Op
			err error
		)
		switch tok {
		case FlagResize:
			op, err = p.parseResize()
		case FlagQuality:
			op, err = p.parseQuality()
		case FlagPreview:
			op = Execution{Type: ExecPreview}
		case FlagMerge:
			op, err = p.parseMerge()
		default:
			op, err = p.parseOutPath(tok)
		}
		if err != nil {
			return nil, err
		}
		p.ops = append(p.ops, op)
	}
}

func (p *parser) parseResize() (Op, error) {
	value, err := p.cur.NextOr(newError(KindResize,
		"expected dimensions after %s (e.g. %s 1920:1080), found nothing", FlagResize, FlagResize))
	if err != nil {
		return nil, err
	}

	dims := strings.Split(value, ":")
	if len(dims) != 2 {
		return nil, newError(KindResize, "%q is not a valid W:H pair (e.g. 1920:1080)", value)
	}
	w, errW := strconv.ParseInt(dims[0], 10, 32)
	h, errH := strconv.ParseInt(dims[1], 10, 32)
	if errW != nil || errH != nil {
		return nil, newError(KindResize, "%q has a non-integer dimension (e.g. 1920:1080)", value)
	}
	return Resize{Width: int(w), Height: int(h)}, nil
}

func (p *parser) parseQuality() (Op, error) {
	value, err := p.cur.NextOr(newError(KindQuality,
		"expected a value after %s (e.g. %s 50), found nothing", FlagQuality, FlagQuality))
	if err != nil {
		return nil, err
	}

	q, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, newError(KindQuality, "%q is not a valid positive integer (e.g. 50)", value)
	}
	return Quality{Score: uint(q)}, nil
}

// parseMerge collects paths until only the output path is left.
func (p *parser) parseMerge() (Op, error) {
	var paths []string
	for p.cur.TokensLeft() > 1 {
		path, _ := p.cur.Next()
		if err := p.validatePath(path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	if len(paths) < 2 {
		return nil, newError(KindMerge,
			"expected at least 2 files after %s (e.g. %s a.mp4 b.mp4), found %d [%s]",
			FlagMerge, FlagMerge, len(paths), strings.Join(paths, ", "))
	}
	return Merge{Paths: paths}, nil
}

// parseOutPath accepts tok as the output path only when it is the final token.
func (p *parser) parseOutPath(tok string) (Op, error) {
	if p.cur.TokensLeft() > 0 {
		return nil, newError(KindUnknown, "argument %q is not recognized", tok)
	}
	return OutFilePath{Path: tok}, nil
}

func (p *parser) validatePath(path string) error {
	if p.checkPath == nil {
		return nil
	}
	if err := p.checkPath(path); err != nil {
		return newError(KindFilepath, "%q is not a valid path: %v", path, err)
	}
	return nil
}
