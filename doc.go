// Package prettytable renders a header row and data rows as an aligned,
// optionally colorized text table for console output.
//
//	out, err := prettytable.Format(
//		[]string{"ID", "Name"},
//		[][]any{{1, "Justin"}, {2, "Misty"}},
//	)
//
// produces
//
//	| ID | Name   |
//	| -- | ------ |
//	| 1  | Justin |
//	| 2  | Misty  |
//
// Column widths are the longest display string in each column, header
// included. Lines are joined by "\n" and [Format] adds no trailing newline;
// [Write] and [Marshal] terminate every line.
//
// # Cells
//
// Cells may hold any value. true and false render as "True" and "False", nil
// renders as the placeholder set with [WithPlaceholder] (empty by default),
// and everything else uses its fmt form. [WithFalsyPlaceholder] extends the
// substitution to zero numbers, empty strings and empty containers. See
// [NewCell].
//
// # Colors
//
// [WithColors] wraps each column in a [Color] token followed by [Reset]. The
// tokens wrap the padded text, so escape sequences never count toward width.
// The package ships a palette of ANSI constants; any string may be used.
//
// [WithTruthyColumn] colors whole data rows instead: green when the value in
// the given column is truthy, red otherwise. Passing two colors with
// [WithColors] replaces that pair. The header row is never colored in truthy
// mode, and truthy mode takes precedence over per-column colors.
//
// # Documents
//
// A [Document] holds a table definition decoded from YAML or JSON with
// [ParseDocument] or [DecodeDocument]. Color entries are palette names such
// as "green" or "bold".
//
// # Errors
//
// Invalid input is rejected before anything is rendered. Every failure wraps
// one of the exported sentinels:
//
//   - [ErrInvalidHeaders] — headers missing, empty or not a slice
//   - [ErrInvalidRows] — rows missing, empty or not a slice
//   - [ErrRowShape] — a row is not a slice
//   - [ErrColumnCountMismatch] — a row's length differs from the headers'
//   - [ErrInvalidColors] — colors not a slice, or an unknown color name
//   - [ErrColorCountMismatch] — colors length differs from the headers'
//   - [ErrTruthyColorCount] — truthy mode with colors other than 0 or 2
//   - [ErrInvalidTruthyColumn] — truthy column not an integer in range
//   - [ErrInvalidAlignment] — unknown alignment name in a document
//   - [ErrInvalidDocument] — a document could not be decoded
package prettytable
