package prettytable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidHeaders      = errors.New("invalid headers")
	ErrInvalidRows         = errors.New("invalid rows")
	ErrRowShape            = errors.New("invalid row")
	ErrColumnCountMismatch = errors.New("column count mismatch")
	ErrInvalidColors       = errors.New("invalid colors")
	ErrColorCountMismatch  = errors.New("color count mismatch")
	ErrTruthyColorCount    = errors.New("truthy colors must be empty or a true/false pair")
	ErrInvalidTruthyColumn = errors.New("invalid truthy column")
	ErrInvalidAlignment    = errors.New("invalid alignment")
	ErrInvalidDocument     = errors.New("invalid document")
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignNames = [...]string{"left", "center", "right"}

// String returns the alignment name.
func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
	return alignNames[a]
}

// ParseAlignment parses "left", "center" or "right". The empty string is left.
func ParseAlignment(s string) (Alignment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return AlignLeft, nil
	}
	for i, name := range alignNames {
		if name == s {
			return Alignment(i), nil
		}
	}
	return AlignLeft, fmt.Errorf("%w: %q", ErrInvalidAlignment, s)
}

type config struct {
	placeholder string
	colors      any
	truthy      any
	falsyEmpty  bool
	aligns      []Alignment
	width       WidthFunc
}

// Option configures a single Format, Write or Marshal call.
type Option func(*config)

// WithPlaceholder sets the text shown for nil cells. Default: empty string.
func WithPlaceholder(s string) Option {
	return func(c *config) { c.placeholder = s }
}

// WithColors colors each column with the matching token, header included.
// The number of colors must equal the number of columns.
//
// Combined with [WithTruthyColumn], colors is instead an optional
// {trueColor, falseColor} pair.
func WithColors(colors ...Color) Option {
	if colors == nil {
		colors = []Color{}
	}
	return func(c *config) { c.colors = colors }
}

// WithTruthyColumn colors every cell of a data row with the true color when
// the value in column idx (0-based) is truthy and with the false color
// otherwise. The header row is left uncolored. Defaults to green and red.
func WithTruthyColumn(idx int) Option {
	return func(c *config) { c.truthy = idx }
}

// WithFalsyPlaceholder substitutes the placeholder for every falsy value
// (0, "", empty slices and maps), not only nil. Booleans still render as
// "True"/"False".
func WithFalsyPlaceholder() Option {
	return func(c *config) { c.falsyEmpty = true }
}

// WithAlignments sets per-column alignment. Missing entries are left aligned.
func WithAlignments(aligns ...Alignment) Option {
	return func(c *config) { c.aligns = aligns }
}

// WithWidthFunc replaces the cell width measure. Default: [RuneCount].
func WithWidthFunc(fn WidthFunc) Option {
	return func(c *config) { c.width = fn }
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func lines(headers, rows any, opts []Option) ([]string, error) {
	cfg := newConfig(opts)
	l, err := validate(headers, rows, cfg.colors, cfg.truthy)
	if err != nil {
		return nil, err
	}
	return render(l, cfg), nil
}

// Format renders headers and rows as a table. Headers and rows accept any
// slice or array type, so both []string and [][]any work. The result has no
// trailing newline.
func Format(headers, rows any, opts ...Option) (string, error) {
	out, err := lines(headers, rows, opts)
	if err != nil {
		return "", err
	}
	return strings.Join(out, "\n"), nil
}

// Write renders the table and writes it to w, one newline-terminated line at
// a time. Nothing is written when validation fails.
func Write(w io.Writer, headers, rows any, opts ...Option) error {
	out, err := lines(headers, rows, opts)
	if err != nil {
		return err
	}
	for _, line := range out {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Marshal renders the table and returns the bytes written by [Write].
func Marshal(headers, rows any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, headers, rows, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
