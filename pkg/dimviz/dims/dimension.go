// Package dims defines the Dimension value type describing the semantic
// metadata of one data axis: a short name used as a lookup key, a
// human-readable label, and optional range, unit, step and allowed-value
// information. Dimensions are treated as immutable; every update helper
// returns a new value and leaves the receiver untouched.
package dims

import "fmt"

// Span is a closed numeric interval. Unbounded ends use ±Inf.
type Span struct {
	// Min is the lower bound.
	Min float64 `json:"min"`
	// Max is the upper bound.
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the span.
func (s Span) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

// Dimension describes one axis of meaning attached to data.
// Construct values through New, NewLabeled or Make so defaults and
// validation are applied; treat constructed values as read-only and use
// the With helpers for updates.
type Dimension struct {
	// Name is the short identifier used as the lookup key.
	Name string `json:"name"`
	// Label is the human-readable description. Defaults to Name.
	Label string `json:"label"`
	// Unit is an optional unit string shown alongside the label.
	Unit string `json:"unit,omitempty"`
	// Range optionally constrains allowed values.
	Range *Span `json:"range,omitempty"`
	// SoftRange is an advisory display range.
	SoftRange *Span `json:"soft_range,omitempty"`
	// Step is the numeric sampling increment. Zero means unset.
	Step float64 `json:"step,omitempty"`
	// Values optionally enumerates the allowed values.
	Values []any `json:"values,omitempty"`
}

// New constructs a Dimension from a bare name. The name doubles as the label.
func New(name string) (Dimension, error) {
	return Make(Dimension{Name: name})
}

// NewLabeled constructs a Dimension from a (name, label) pair.
func NewLabeled(name, label string) (Dimension, error) {
	return Make(Dimension{Name: name, Label: label})
}

// Make normalizes and validates a full field set: the label defaults to
// the name and nested fields are copied so the result shares nothing
// with the input.
func Make(d Dimension) (Dimension, error) {
	if d.Label == "" {
		d.Label = d.Name
	}
	if err := d.Validate(); err != nil {
		return Dimension{}, err
	}
	return d.copy(), nil
}

// MustNew is like New but panics on an invalid name. It is intended for
// package-level dimension defaults.
func MustNew(name string) Dimension {
	d, err := New(name)
	if err != nil {
		panic(fmt.Sprintf("dims: invalid dimension name %q: %v", name, err))
	}
	return d
}

// copy returns a Dimension sharing no mutable state with the receiver.
func (d Dimension) copy() Dimension {
	c := d
	if d.Range != nil {
		r := *d.Range
		c.Range = &r
	}
	if d.SoftRange != nil {
		r := *d.SoftRange
		c.SoftRange = &r
	}
	if d.Values != nil {
		c.Values = append([]any(nil), d.Values...)
	}
	return c
}

// Renamed returns a copy carrying the new name. A label that merely
// defaulted to the old name follows the rename; an explicit label is
// preserved.
func (d Dimension) Renamed(name string) (Dimension, error) {
	c := d.copy()
	if c.Label == c.Name {
		c.Label = name
	}
	c.Name = name
	if err := c.Validate(); err != nil {
		return Dimension{}, err
	}
	return c, nil
}

// WithLabel returns a copy with the given label. An empty label resets
// it to the name.
func (d Dimension) WithLabel(label string) Dimension {
	c := d.copy()
	if label == "" {
		label = c.Name
	}
	c.Label = label
	return c
}

// WithUnit returns a copy with the given unit.
func (d Dimension) WithUnit(unit string) Dimension {
	c := d.copy()
	c.Unit = unit
	return c
}

// WithRange returns a copy constrained to [min, max].
func (d Dimension) WithRange(min, max float64) Dimension {
	c := d.copy()
	c.Range = &Span{Min: min, Max: max}
	return c
}

// WithSoftRange returns a copy carrying the advisory span [min, max].
func (d Dimension) WithSoftRange(min, max float64) Dimension {
	c := d.copy()
	c.SoftRange = &Span{Min: min, Max: max}
	return c
}

// WithStep returns a copy with the given sampling increment.
func (d Dimension) WithStep(step float64) Dimension {
	c := d.copy()
	c.Step = step
	return c
}

// WithValues returns a copy with the given allowed-value set.
func (d Dimension) WithValues(values ...any) Dimension {
	c := d.copy()
	c.Values = append([]any(nil), values...)
	return c
}

// Equal reports whether two dimensions share the identifying core pair.
// Only name and label take part; unit, ranges, step and values do not.
func (d Dimension) Equal(o Dimension) bool {
	return d.Name == o.Name && d.Label == o.Label
}

// Identical reports whether every field matches, not just the core pair.
func (d Dimension) Identical(o Dimension) bool {
	if !d.Equal(o) || d.Unit != o.Unit || d.Step != o.Step {
		return false
	}
	if !spanEqual(d.Range, o.Range) || !spanEqual(d.SoftRange, o.SoftRange) {
		return false
	}
	if len(d.Values) != len(o.Values) {
		return false
	}
	for i := range d.Values {
		if d.Values[i] != o.Values[i] {
			return false
		}
	}
	return true
}

func spanEqual(a, b *Span) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Matches reports whether spec names this dimension by name or label.
func (d Dimension) Matches(spec string) bool {
	return spec == d.Name || spec == d.Label
}

// PrettyLabel returns the label with a unit suffix when a unit is set,
// suitable for axis titling.
func (d Dimension) PrettyLabel() string {
	if d.Unit == "" {
		return d.Label
	}
	return fmt.Sprintf("%s (%s)", d.Label, d.Unit)
}

// String returns the core pair in "name (label)" form.
func (d Dimension) String() string {
	if d.Label == d.Name {
		return d.Name
	}
	return fmt.Sprintf("%s (%s)", d.Name, d.Label)
}
