package prettytable_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bjaus/prettytable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const employeesYAML = `
headers: [ID, Name, Occupation, Employed]
rows:
  - [1, Justin, Software Engineer, true]
  - [2, Misty, Receptionist, false]
  - [3, John, null, false]
placeholder: No data
`

func TestParseDocument(t *testing.T) {
	t.Parallel()
	doc, err := prettytable.ParseDocument([]byte(employeesYAML))
	require.NoError(t, err)
	out, err := doc.Format()
	require.NoError(t, err)
	assert.Equal(t, "| ID | Name   | Occupation        | Employed |\n"+
		"| -- | ------ | ----------------- | -------- |\n"+
		"| 1  | Justin | Software Engineer | True     |\n"+
		"| 2  | Misty  | Receptionist      | False    |\n"+
		"| 3  | John   | No data           | False    |", out)
}

func TestParseDocumentJSON(t *testing.T) {
	t.Parallel()
	doc, err := prettytable.ParseDocument([]byte(`{"headers": ["ID", "Name"], "rows": [[1, "Justin"], [2, "Misty"]]}`))
	require.NoError(t, err)
	out, err := doc.Format()
	require.NoError(t, err)
	assert.Equal(t, "| ID | Name   |\n| -- | ------ |\n| 1  | Justin |\n| 2  | Misty  |", out)
}

func TestDocumentTruthyColorNames(t *testing.T) {
	t.Parallel()
	doc, err := prettytable.DecodeDocument(strings.NewReader(employeesYAML + "colors: [cyan, purple]\ntruthy: 3\n"))
	require.NoError(t, err)
	out, err := doc.Format()
	require.NoError(t, err)
	want, err := prettytable.Format(
		[]string{"ID", "Name", "Occupation", "Employed"},
		[][]any{
			{1, "Justin", "Software Engineer", true},
			{2, "Misty", "Receptionist", false},
			{3, "John", nil, false},
		},
		prettytable.WithPlaceholder("No data"),
		prettytable.WithColors(prettytable.Cyan, prettytable.Purple),
		prettytable.WithTruthyColumn(3),
	)
	require.NoError(t, err)
	assert.Equal(t, want, out)
}

func TestDocumentAlign(t *testing.T) {
	t.Parallel()
	doc, err := prettytable.ParseDocument([]byte("headers: [ID, Name]\nrows: [[7, Al]]\nalign: [right, center]\n"))
	require.NoError(t, err)
	out, err := doc.Format()
	require.NoError(t, err)
	assert.Equal(t, "| ID | Name |\n| -- | ---- |\n|  7 |  Al  |", out)
}

func TestDocumentWrite(t *testing.T) {
	t.Parallel()
	doc, err := prettytable.ParseDocument([]byte("headers: [a]\nrows: [[x]]\n"))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))
	assert.Equal(t, "| a |\n| - |\n| x |\n", buf.String())
}

func TestDocumentCallOptionsOverride(t *testing.T) {
	t.Parallel()
	doc, err := prettytable.ParseDocument([]byte("headers: [a]\nrows: [[null]]\nplaceholder: doc\n"))
	require.NoError(t, err)
	out, err := doc.Format(prettytable.WithPlaceholder("call"))
	require.NoError(t, err)
	assert.Equal(t, "| a    |\n| ---- |\n| call |", out)
}

func TestDocumentErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input  string
		target error
		msg    string
	}{
		"missing headers": {
			input:  "rows: [[1]]",
			target: prettytable.ErrInvalidHeaders,
		},
		"scalar headers": {
			input:  "headers: ID\nrows: [[1]]",
			target: prettytable.ErrInvalidHeaders,
		},
		"missing rows": {
			input:  "headers: [ID]",
			target: prettytable.ErrInvalidRows,
		},
		"mapping rows": {
			input:  "headers: [ID]\nrows: {a: 1}",
			target: prettytable.ErrInvalidRows,
		},
		"scalar row": {
			input:  "headers: [ID]\nrows: [[1], 2]",
			target: prettytable.ErrRowShape,
			msg:    "row 2",
		},
		"short row": {
			input:  "headers: [a, b]\nrows: [[x]]",
			target: prettytable.ErrColumnCountMismatch,
			msg:    "row 1 has 1 columns which doesn't match the table columns of 2",
		},
		"scalar colors": {
			input:  "headers: [a]\nrows: [[x]]\ncolors: blue",
			target: prettytable.ErrInvalidColors,
		},
		"unknown color": {
			input:  "headers: [a]\nrows: [[x]]\ncolors: [mauve]",
			target: prettytable.ErrInvalidColors,
			msg:    "mauve",
		},
		"color count": {
			input:  "headers: [a, b]\nrows: [[x, y]]\ncolors: [blue]",
			target: prettytable.ErrColorCountMismatch,
		},
		"truthy color count": {
			input:  "headers: [a, b]\nrows: [[x, y]]\ncolors: [blue]\ntruthy: 1",
			target: prettytable.ErrTruthyColorCount,
		},
		"truthy not integer": {
			input:  "headers: [a]\nrows: [[x]]\ntruthy: bad",
			target: prettytable.ErrInvalidTruthyColumn,
			msg:    "Column: bad",
		},
		"truthy float": {
			input:  "headers: [a]\nrows: [[x]]\ntruthy: 0.5",
			target: prettytable.ErrInvalidTruthyColumn,
		},
		"truthy out of range": {
			input:  "headers: [a, b]\nrows: [[x, y]]\ntruthy: 5",
			target: prettytable.ErrInvalidTruthyColumn,
			msg:    "Column: 5",
		},
		"unknown alignment": {
			input:  "headers: [a]\nrows: [[x]]\nalign: [sideways]",
			target: prettytable.ErrInvalidAlignment,
			msg:    "column 1",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			doc, err := prettytable.ParseDocument([]byte(tt.input))
			require.NoError(t, err)
			out, err := doc.Format()
			require.ErrorIs(t, err, tt.target)
			assert.Empty(t, out)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestParseDocumentInvalid(t *testing.T) {
	t.Parallel()
	_, err := prettytable.ParseDocument([]byte("headers: [a\n"))
	require.ErrorIs(t, err, prettytable.ErrInvalidDocument)
}

func TestDecodeDocumentEmpty(t *testing.T) {
	t.Parallel()
	_, err := prettytable.DecodeDocument(strings.NewReader(""))
	require.ErrorIs(t, err, prettytable.ErrInvalidDocument)
}

func TestDocumentWriteError(t *testing.T) {
	t.Parallel()
	doc, err := prettytable.ParseDocument([]byte("headers: [a]\nrows: [[x]]\nalign: [up]\n"))
	require.NoError(t, err)
	var buf bytes.Buffer
	err = doc.Write(&buf)
	require.ErrorIs(t, err, prettytable.ErrInvalidAlignment)
	assert.Empty(t, buf.String())
}
