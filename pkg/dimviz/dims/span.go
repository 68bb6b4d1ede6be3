package dims

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// SpanOf returns the closed span covering xs, or nil when xs is empty.
func SpanOf(xs []float64) *Span {
	if len(xs) == 0 {
		return nil
	}
	min, max := (stats.Sample{Xs: xs}).Bounds()
	return &Span{Min: min, Max: max}
}

// SoftSpanOf derives an advisory span from observed data, clipped to the
// dimension range when one is set. Returns nil when xs is empty.
func (d Dimension) SoftSpanOf(xs []float64) *Span {
	s := SpanOf(xs)
	if s == nil {
		return nil
	}
	if d.Range != nil {
		s.Min = math.Max(s.Min, d.Range.Min)
		s.Max = math.Min(s.Max, d.Range.Max)
	}
	return s
}

// Samples returns sample positions across the dimension range. When a
// step is set the positions advance by step from the lower bound and n
// is ignored; otherwise n evenly spaced positions are produced. Returns
// nil when no finite range is set.
func (d Dimension) Samples(n int) []float64 {
	r := d.Range
	if r == nil || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return nil
	}
	if d.Step > 0 {
		count := int(math.Floor((r.Max-r.Min)/d.Step)) + 1
		if count < 1 {
			return nil
		}
		if count == 1 {
			return []float64{r.Min}
		}
		return vec.Linspace(r.Min, r.Min+d.Step*float64(count-1), count)
	}
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{r.Min}
	}
	return vec.Linspace(r.Min, r.Max, n)
}
