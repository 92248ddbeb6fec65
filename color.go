package prettytable

import (
	"fmt"
	"strings"
)

// Color is an opaque token written before a cell's padded text. The palette
// below holds ANSI escape sequences, but any string is accepted.
type Color string

// Palette.
const (
	Black  Color = "\033[90m"
	Blue   Color = "\033[94m"
	Cyan   Color = "\033[96m"
	Green  Color = "\033[92m"
	Purple Color = "\033[95m"
	Red    Color = "\033[91m"
	White  Color = "\033[97m"
	Yellow Color = "\033[93m"

	Bold      Color = "\033[1m"
	Underline Color = "\033[4m"
	Reset     Color = "\033[0m" // Resets all text formatting
	None      Color = Reset
)

// Default truthy-mode colors.
const (
	DefaultTrueColor  = Green
	DefaultFalseColor = Red
)

var colorNames = map[string]Color{
	"black":     Black,
	"blue":      Blue,
	"cyan":      Cyan,
	"green":     Green,
	"purple":    Purple,
	"red":       Red,
	"white":     White,
	"yellow":    Yellow,
	"bold":      Bold,
	"underline": Underline,
	"reset":     Reset,
	"none":      None,
}

// String returns the raw token.
func (c Color) String() string { return string(c) }

// Wrap returns s preceded by the token and followed by [Reset].
func (c Color) Wrap(s string) string {
	return string(c) + s + string(Reset)
}

// ParseColor resolves a palette name such as "green" or "bold" (case
// insensitive). Strings starting with an escape character are returned as raw
// tokens.
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "\033") {
		return Color(s), nil
	}
	if c, ok := colorNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: unknown color %q", ErrInvalidColors, s)
}
