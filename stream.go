package prettytable

import (
	"io"
	"iter"
)

// FormatIter collects rows from seq and renders them with [Format]. Column
// widths depend on every row, so nothing is rendered until seq is exhausted.
func FormatIter(headers any, seq iter.Seq[[]any], opts ...Option) (string, error) {
	return Format(headers, collect(seq), opts...)
}

// WriteIter collects rows from seq and writes the table to w.
func WriteIter(w io.Writer, headers any, seq iter.Seq[[]any], opts ...Option) error {
	return Write(w, headers, collect(seq), opts...)
}

// WriteChan collects rows from ch until it is closed and writes the table to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, headers any, ch <-chan []any, opts ...Option) error {
	return WriteIter(w, headers, chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func collect(seq iter.Seq[[]any]) [][]any {
	rows := [][]any{}
	for row := range seq {
		rows = append(rows, row)
	}
	return rows
}
