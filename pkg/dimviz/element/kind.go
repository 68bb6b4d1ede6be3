// Package element provides annotated data elements: containers binding
// key and value dimensions, a group and a label to raw data. Elements
// are immutable; rename, relabel, redim and select all return clones
// that share the underlying data where it is unchanged.
package element

import "github.com/dimviz/dimviz-go/pkg/dimviz/dims"

// Kind describes an element kind: its name (which doubles as the
// default group) and the dimension arity it requires. A negative Max
// means unbounded.
type Kind struct {
	// Name is the element kind name, e.g. "Curve".
	Name string
	// MinKDims and MaxKDims bound the key dimension count.
	MinKDims, MaxKDims int
	// MinVDims and MaxVDims bound the value dimension count.
	MinVDims, MaxVDims int
	// DefaultKDims supplies key dimensions when none are configured.
	DefaultKDims []dims.Dimension
	// DefaultVDims supplies value dimensions when none are configured.
	DefaultVDims []dims.Dimension
}

var (
	// Curve is a continuous 1D mapping from one key to one value.
	Curve = Kind{
		Name:     "Curve",
		MinKDims: 1, MaxKDims: 1, MinVDims: 1, MaxVDims: 1,
		DefaultKDims: []dims.Dimension{dims.MustNew("x")},
		DefaultVDims: []dims.Dimension{dims.MustNew("y")},
	}

	// Scatter is a discrete 1D mapping from one key to one value.
	Scatter = Kind{
		Name:     "Scatter",
		MinKDims: 1, MaxKDims: 1, MinVDims: 1, MaxVDims: 1,
		DefaultKDims: []dims.Dimension{dims.MustNew("x")},
		DefaultVDims: []dims.Dimension{dims.MustNew("y")},
	}

	// Histogram maps bin positions to frequencies.
	Histogram = Kind{
		Name:     "Histogram",
		MinKDims: 1, MaxKDims: 1, MinVDims: 1, MaxVDims: 1,
		DefaultKDims: []dims.Dimension{dims.MustNew("x")},
		DefaultVDims: []dims.Dimension{dims.MustNew("Frequency")},
	}

	// Points is a collection of 2D positions with optional extra values.
	Points = Kind{
		Name:     "Points",
		MinKDims: 2, MaxKDims: 2, MinVDims: 0, MaxVDims: -1,
		DefaultKDims: []dims.Dimension{dims.MustNew("x"), dims.MustNew("y")},
	}

	// HeatMap maps two keys onto one value.
	HeatMap = Kind{
		Name:     "HeatMap",
		MinKDims: 2, MaxKDims: 2, MinVDims: 1, MaxVDims: 1,
		DefaultKDims: []dims.Dimension{dims.MustNew("x"), dims.MustNew("y")},
		DefaultVDims: []dims.Dimension{dims.MustNew("z")},
	}

	// TableKind holds arbitrary tabular data with free dimension counts.
	TableKind = Kind{
		Name:     "Table",
		MinKDims: 0, MaxKDims: -1, MinVDims: 0, MaxVDims: -1,
	}

	// PathKind is a collection of 2D paths.
	PathKind = Kind{
		Name:     "Path",
		MinKDims: 2, MaxKDims: 2, MinVDims: 0, MaxVDims: 0,
		DefaultKDims: []dims.Dimension{dims.MustNew("x"), dims.MustNew("y")},
	}

	// ContoursKind is a path collection carrying a contour level.
	ContoursKind = Kind{
		Name:     "Contours",
		MinKDims: 2, MaxKDims: 2, MinVDims: 1, MaxVDims: 1,
		DefaultKDims: []dims.Dimension{dims.MustNew("x"), dims.MustNew("y")},
		DefaultVDims: []dims.Dimension{dims.MustNew("Level")},
	}

	// PolygonsKind is a closed path collection carrying a value.
	PolygonsKind = Kind{
		Name:     "Polygons",
		MinKDims: 2, MaxKDims: 2, MinVDims: 1, MaxVDims: 1,
		DefaultKDims: []dims.Dimension{dims.MustNew("x"), dims.MustNew("y")},
		DefaultVDims: []dims.Dimension{dims.MustNew("Value")},
	}
)

// tabularKinds are the kinds constructible from a data table.
var tabularKinds = []Kind{Curve, Scatter, Histogram, Points, HeatMap, TableKind}

// KindByName resolves a tabular kind from its name, case-sensitively.
func KindByName(name string) (Kind, bool) {
	for _, k := range tabularKinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// checkArity verifies a dimension count against kind bounds.
func (k Kind) checkArity(nk, nv int) error {
	if nk < k.MinKDims || (k.MaxKDims >= 0 && nk > k.MaxKDims) {
		return arityError(k, "key", nk, k.MinKDims, k.MaxKDims)
	}
	if nv < k.MinVDims || (k.MaxVDims >= 0 && nv > k.MaxVDims) {
		return arityError(k, "value", nv, k.MinVDims, k.MaxVDims)
	}
	return nil
}
