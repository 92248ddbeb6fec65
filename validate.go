package prettytable

import (
	"fmt"
	"reflect"
)

// layout is the checked form of a table's inputs.
type layout struct {
	header []string
	rows   [][]any
	colors []Color // nil when no colors were given
	truthy int     // -1 when truthy mode is off
}

// validate checks headers, rows, colors and truthy before anything is
// rendered. The first problem found is returned.
func validate(headers, rows, colors, truthy any) (*layout, error) {
	hv, ok := sequence(headers)
	if !ok {
		return nil, fmt.Errorf("%w: headers are either not set or are not a proper array", ErrInvalidHeaders)
	}
	if hv.Len() == 0 {
		return nil, fmt.Errorf("%w: headers are empty", ErrInvalidHeaders)
	}
	rv, ok := sequence(rows)
	if !ok {
		return nil, fmt.Errorf("%w: rows are either not set or are not a proper array", ErrInvalidRows)
	}
	if rv.Len() == 0 {
		return nil, fmt.Errorf("%w: rows are empty", ErrInvalidRows)
	}

	l := &layout{
		header: make([]string, hv.Len()),
		rows:   make([][]any, rv.Len()),
		truthy: -1,
	}
	for i := range l.header {
		l.header[i] = headerText(hv.Index(i).Interface())
	}

	want := len(l.header)
	for i := range l.rows {
		row, ok := sequence(rv.Index(i).Interface())
		if !ok {
			return nil, fmt.Errorf("%w: row %d is not a proper array", ErrRowShape, i+1)
		}
		if row.Len() != want {
			return nil, fmt.Errorf("%w: row %d has %d columns which doesn't match the table columns of %d",
				ErrColumnCountMismatch, i+1, row.Len(), want)
		}
		cells := make([]any, want)
		for j := range cells {
			cells[j] = row.Index(j).Interface()
		}
		l.rows[i] = cells
	}

	truthyMode := truthy != nil
	if colors != nil {
		cs, err := colorTokens(colors)
		if err != nil {
			return nil, err
		}
		switch {
		case !truthyMode && len(cs) != want:
			return nil, fmt.Errorf("%w: got %d colors for %d columns", ErrColorCountMismatch, len(cs), want)
		case truthyMode && len(cs) != 0 && len(cs) != 2:
			return nil, fmt.Errorf("%w: got %d colors, want 0 or 2", ErrTruthyColorCount, len(cs))
		}
		l.colors = cs
	}

	if truthyMode {
		idx, ok := integer(truthy)
		if !ok || idx < 0 || idx >= want {
			return nil, fmt.Errorf("%w: the column specified for truthy values does not exist. Column: %v",
				ErrInvalidTruthyColumn, truthy)
		}
		l.truthy = idx
	}
	return l, nil
}

// sequence reports whether v is a non-nil slice or an array. Strings are not
// sequences.
func sequence(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice:
		return rv, !rv.IsNil()
	case reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

func colorTokens(colors any) ([]Color, error) {
	if cs, ok := colors.([]Color); ok {
		return cs, nil
	}
	cv, ok := sequence(colors)
	if !ok {
		return nil, fmt.Errorf("%w: colors are not a proper array", ErrInvalidColors)
	}
	cs := make([]Color, cv.Len())
	for i := range cs {
		switch c := cv.Index(i).Interface().(type) {
		case Color:
			cs[i] = c
		case string:
			parsed, err := ParseColor(c)
			if err != nil {
				return nil, fmt.Errorf("color %d: %w", i+1, err)
			}
			cs[i] = parsed
		default:
			return nil, fmt.Errorf("%w: color %d is %T, not a color token", ErrInvalidColors, i+1, c)
		}
	}
	return cs, nil
}

// integer accepts any signed or unsigned integer type. Booleans and floats
// are rejected.
func integer(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > uint64(^uint(0)>>1) {
			return 0, false
		}
		return int(u), true
	default:
		return 0, false
	}
}
