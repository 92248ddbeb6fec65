package prettytable

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	leftBorder    = "| "
	columnDivider = " | "
	rightBorder   = " |"
	headerRule    = "-"
)

// WidthFunc measures the width of a cell's display text.
type WidthFunc func(string) int

// RuneCount counts Unicode code points. It is the default measure.
func RuneCount(s string) int { return utf8.RuneCountInString(s) }

// DisplayWidth measures terminal columns, counting East Asian wide glyphs as
// two and combining marks as zero.
func DisplayWidth(s string) int { return runewidth.StringWidth(s) }

// styleFunc wraps the padded text of the cell in column i.
type styleFunc func(i int, s string) string

func render(l *layout, cfg *config) []string {
	cells := make([][]string, len(l.rows))
	truth := make([]bool, len(l.rows))
	for r, row := range l.rows {
		cells[r] = make([]string, len(row))
		for i, v := range row {
			c := newCell(v, cfg.placeholder, cfg.falsyEmpty)
			cells[r][i] = c.Text
			if i == l.truthy {
				truth[r] = c.Truthy()
			}
		}
	}

	measure := cfg.width
	if measure == nil {
		measure = RuneCount
	}
	widths := computeWidths(measure, l.header, cells)
	aligns := extendAligns(cfg.aligns, len(widths))

	headerStyle, rowStyle := styles(l)

	lines := make([]string, 0, len(cells)+2)
	lines = append(lines, formatRow(measure, l.header, widths, aligns, headerStyle))
	lines = append(lines, separatorRow(widths))
	for r, row := range cells {
		lines = append(lines, formatRow(measure, row, widths, aligns, rowStyle(truth[r])))
	}
	return lines
}

// styles picks the coloring strategy. Truthy mode wins over per-column colors.
func styles(l *layout) (header styleFunc, row func(truthy bool) styleFunc) {
	switch {
	case l.truthy >= 0:
		trueColor, falseColor := DefaultTrueColor, DefaultFalseColor
		if len(l.colors) == 2 {
			trueColor, falseColor = l.colors[0], l.colors[1]
		}
		onTrue := colorAll(trueColor)
		onFalse := colorAll(falseColor)
		// The header carries no color, only the reset that follows every cell.
		header = colorAll("")
		return header, func(truthy bool) styleFunc {
			if truthy {
				return onTrue
			}
			return onFalse
		}
	case l.colors != nil:
		perColumn := func(i int, s string) string {
			return colorAt(l.colors, i).Wrap(s)
		}
		return perColumn, func(bool) styleFunc { return perColumn }
	default:
		return nil, func(bool) styleFunc { return nil }
	}
}

func colorAll(c Color) styleFunc {
	return func(_ int, s string) string { return c.Wrap(s) }
}

func colorAt(colors []Color, i int) Color {
	if i < len(colors) {
		return colors[i]
	}
	return None
}

func computeWidths(measure WidthFunc, header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = measure(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := measure(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

func separatorRow(widths []int) string {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat(headerRule, width)
	}
	return leftBorder + strings.Join(sep, columnDivider) + rightBorder
}

func formatRow(measure WidthFunc, cells []string, widths []int, aligns []Alignment, style styleFunc) string {
	var sb strings.Builder
	sb.WriteString(leftBorder)
	for i, width := range widths {
		if i > 0 {
			sb.WriteString(columnDivider)
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		formatted := alignCell(measure, cell, width, aligns[i])
		if style != nil {
			formatted = style(i, formatted)
		}
		sb.WriteString(formatted)
	}
	sb.WriteString(rightBorder)
	return sb.String()
}

func alignCell(measure WidthFunc, s string, width int, align Alignment) string {
	pad := width - measure(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
