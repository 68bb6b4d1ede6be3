package element

import "strings"

// Overlay is an ordered composition of elements meant to be drawn on a
// shared set of axes. Overlays are immutable; Add returns a new value.
type Overlay struct {
	items []Annotated
}

// NewOverlay composes the given elements in draw order.
func NewOverlay(items ...Annotated) *Overlay {
	return &Overlay{items: append([]Annotated(nil), items...)}
}

// Add returns a new overlay with the item appended.
func (o *Overlay) Add(item Annotated) *Overlay {
	items := make([]Annotated, 0, len(o.items)+1)
	items = append(items, o.items...)
	return &Overlay{items: append(items, item)}
}

// Items returns the composed elements in draw order.
func (o *Overlay) Items() []Annotated {
	return append([]Annotated(nil), o.items...)
}

// Len returns the number of composed elements.
func (o *Overlay) Len() int {
	return len(o.items)
}

// Get returns the first element whose Kind.Group.Label path starts with
// the given dot-separated prefix, e.g. "Curve" or "Curve.Signal".
func (o *Overlay) Get(path string) (Annotated, bool) {
	for _, item := range o.items {
		if matchesPath(SpecPath(item), path) {
			return item, true
		}
	}
	return nil, false
}

// SpecPath returns the dot-separated addressing path of an element:
// the kind name, the group, and the label when one is set.
func SpecPath(a Annotated) string {
	parts := []string{a.Kind().Name, a.Group()}
	if a.Label() != "" {
		parts = append(parts, a.Label())
	}
	return strings.Join(parts, ".")
}

func matchesPath(full, prefix string) bool {
	if full == prefix {
		return true
	}
	return strings.HasPrefix(full, prefix+".")
}
