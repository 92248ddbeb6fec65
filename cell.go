package prettytable

import (
	"fmt"
	"reflect"
)

// Kind classifies the raw value behind a [Cell].
type Kind int

const (
	KindEmpty  Kind = iota // nil, or falsy with WithFalsyPlaceholder
	KindBool               // true or false
	KindString             // string values
	KindNumber             // integer, unsigned, float and complex values
	KindValue              // anything else, rendered with fmt
)

var kindNames = [...]string{"empty", "bool", "string", "number", "value"}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Cell is a normalized table value: its display text plus the boolean
// interpretation of the value it was built from.
type Cell struct {
	Kind   Kind
	Text   string
	truthy bool
}

// Truthy reports the boolean interpretation of the source value: false for
// nil, false, zero numbers and empty strings or containers; true otherwise.
func (c Cell) Truthy() bool { return c.truthy }

// String returns the display text.
func (c Cell) String() string { return c.Text }

// NewCell normalizes v for display. Booleans become "True"/"False" and nil
// becomes placeholder. Everything else keeps its fmt form.
func NewCell(v any, placeholder string) Cell {
	return newCell(v, placeholder, false)
}

func newCell(v any, placeholder string, falsyEmpty bool) Cell {
	if c, ok := v.(Cell); ok {
		return c
	}
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if _, ok := rv.Interface().(fmt.Stringer); ok && !rv.IsNil() {
			break
		}
		if rv.IsNil() {
			return Cell{Kind: KindEmpty, Text: placeholder}
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return Cell{Kind: KindEmpty, Text: placeholder}
	}

	if rv.Kind() == reflect.Bool {
		if rv.Bool() {
			return Cell{Kind: KindBool, Text: "True", truthy: true}
		}
		return Cell{Kind: KindBool, Text: "False"}
	}

	kind, truthy := classify(rv)
	if !truthy && falsyEmpty {
		return Cell{Kind: KindEmpty, Text: placeholder}
	}
	return Cell{Kind: kind, Text: fmt.Sprint(rv.Interface()), truthy: truthy}
}

func classify(rv reflect.Value) (Kind, bool) {
	switch rv.Kind() {
	case reflect.String:
		return KindString, rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindNumber, rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindNumber, rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return KindNumber, rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return KindNumber, rv.Complex() != 0
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return KindValue, rv.Len() > 0
	default:
		return KindValue, true
	}
}

// headerText stringifies a header value. Headers are labels, so no boolean or
// placeholder substitution applies.
func headerText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
