package data

// Selector is a per-dimension predicate used to filter element data.
type Selector interface {
	// Dimension returns the dimension name the selector applies to.
	Dimension() string
	// Keep reports whether a single cell value satisfies the selector.
	Keep(v any) bool
}

type eqSelector struct {
	dim   string
	value any
}

func (s eqSelector) Dimension() string { return s.dim }

func (s eqSelector) Keep(v any) bool { return EqualValue(v, s.value) }

// Eq keeps rows whose cell equals value along the named dimension.
func Eq(dim string, value any) Selector {
	return eqSelector{dim: dim, value: value}
}

type rangeSelector struct {
	dim      string
	min, max float64
}

func (s rangeSelector) Dimension() string { return s.dim }

func (s rangeSelector) Keep(v any) bool {
	f, ok := AsFloat(v)
	return ok && f >= s.min && f <= s.max
}

// RangeOf keeps rows whose numeric cell lies in [min, max] along the
// named dimension. Non-numeric cells never match.
func RangeOf(dim string, min, max float64) Selector {
	return rangeSelector{dim: dim, min: min, max: max}
}

type inSelector struct {
	dim    string
	values []any
}

func (s inSelector) Dimension() string { return s.dim }

func (s inSelector) Keep(v any) bool {
	for _, want := range s.values {
		if EqualValue(v, want) {
			return true
		}
	}
	return false
}

// In keeps rows whose cell matches any of the given values.
func In(dim string, values ...any) Selector {
	return inSelector{dim: dim, values: append([]any(nil), values...)}
}
