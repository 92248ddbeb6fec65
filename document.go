package prettytable

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is a table definition read from YAML or JSON:
//
//	headers: [ID, Name, Employed]
//	rows:
//	  - [1, Justin, true]
//	  - [2, Misty, null]
//	placeholder: No data
//	colors: [cyan, purple]
//	truthy: 2
//	align: [right]
//
// Fields stay loosely typed so that malformed input is reported by the same
// validation that guards [Format].
type Document struct {
	Headers     any      `yaml:"headers" json:"headers"`
	Rows        any      `yaml:"rows" json:"rows"`
	Placeholder string   `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Colors      any      `yaml:"colors,omitempty" json:"colors,omitempty"`
	Truthy      any      `yaml:"truthy,omitempty" json:"truthy,omitempty"`
	Align       []string `yaml:"align,omitempty" json:"align,omitempty"`
}

// ParseDocument decodes a YAML or JSON table definition.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc, nil
}

// DecodeDocument reads one YAML or JSON table definition from r.
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc, nil
}

// Options converts the document settings into call options.
func (d Document) Options() ([]Option, error) {
	opts := []Option{WithPlaceholder(d.Placeholder)}
	if d.Colors != nil {
		colors := d.Colors
		opts = append(opts, func(c *config) { c.colors = colors })
	}
	if d.Truthy != nil {
		truthy := d.Truthy
		opts = append(opts, func(c *config) { c.truthy = truthy })
	}
	if len(d.Align) > 0 {
		aligns := make([]Alignment, len(d.Align))
		for i, name := range d.Align {
			a, err := ParseAlignment(name)
			if err != nil {
				return nil, fmt.Errorf("column %d: %w", i+1, err)
			}
			aligns[i] = a
		}
		opts = append(opts, WithAlignments(aligns...))
	}
	return opts, nil
}

// Format renders the document as a table.
func (d Document) Format(opts ...Option) (string, error) {
	docOpts, err := d.Options()
	if err != nil {
		return "", err
	}
	return Format(d.Headers, d.Rows, append(docOpts, opts...)...)
}

// Write renders the document and writes it to w.
func (d Document) Write(w io.Writer, opts ...Option) error {
	docOpts, err := d.Options()
	if err != nil {
		return err
	}
	return Write(w, d.Headers, d.Rows, append(docOpts, opts...)...)
}
