package element

import (
	"errors"
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"github.com/dimviz/dimviz-go/pkg/dimviz/dims"
)

// ErrPathLengths indicates mismatched x/y sample counts for a path.
var ErrPathLengths = errors.New("path x and y values must be the same length")

// Vertex is one 2D sample position on a path.
type Vertex struct {
	// X is the horizontal coordinate.
	X float64 `json:"x"`
	// Y is the vertical coordinate.
	Y float64 `json:"y"`
}

// PathElement is an annotated collection of 2D paths: two fixed key
// dimensions and, for contour-like kinds, one value dimension holding a
// scalar level. The path list is owned by value.
type PathElement struct {
	kind  Kind
	kdims []dims.Dimension
	vdims []dims.Dimension
	group string
	label string
	level *float64
	paths [][]Vertex
}

// NewPath builds a Path element from a list of vertex paths.
func NewPath(paths [][]Vertex, cfg Config) (*PathElement, error) {
	return newPathElement(PathKind, paths, nil, cfg)
}

// NewPathXY builds a Path element from one x sample array and one y
// array per path. Every y array must match the x length.
func NewPathXY(xs []float64, ys [][]float64, cfg Config) (*PathElement, error) {
	paths := make([][]Vertex, len(ys))
	for i, column := range ys {
		if len(column) != len(xs) {
			return nil, NewElementError(PathKind.Name, "",
				fmt.Errorf("%w: path %d has %d y values for %d x values",
					ErrPathLengths, i, len(column), len(xs)))
		}
		path := make([]Vertex, len(xs))
		for j := range xs {
			path[j] = Vertex{X: xs[j], Y: column[j]}
		}
		paths[i] = path
	}
	return newPathElement(PathKind, paths, nil, cfg)
}

// NewContours builds a Contours element: paths plus the contour level.
func NewContours(paths [][]Vertex, level float64, cfg Config) (*PathElement, error) {
	return newPathElement(ContoursKind, paths, &level, cfg)
}

// NewPolygons builds a Polygons element: closed paths plus a value.
func NewPolygons(paths [][]Vertex, value float64, cfg Config) (*PathElement, error) {
	return newPathElement(PolygonsKind, paths, &value, cfg)
}

func newPathElement(kind Kind, paths [][]Vertex, level *float64, cfg Config) (*PathElement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kdims := cfg.KDims
	if kdims == nil {
		kdims = kind.DefaultKDims
	}
	vdims := cfg.VDims
	if vdims == nil {
		vdims = kind.DefaultVDims
	}
	if err := kind.checkArity(len(kdims), len(vdims)); err != nil {
		return nil, err
	}

	e := &PathElement{kind: kind, group: cfg.Group, label: cfg.Label, level: level}
	if e.group == "" {
		e.group = kind.Name
	}
	if err := deepcopy.Copy(&e.kdims, kdims); err != nil {
		return nil, err
	}
	if err := deepcopy.Copy(&e.vdims, vdims); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, d := range e.Dimensions() {
		if err := d.Validate(); err != nil {
			return nil, NewElementError(kind.Name, d.Name, err)
		}
		if seen[d.Name] {
			return nil, NewElementError(kind.Name, d.Name, ErrDuplicateDimension)
		}
		seen[d.Name] = true
	}
	e.paths = copyPaths(paths)
	return e, nil
}

func copyPaths(paths [][]Vertex) [][]Vertex {
	out := make([][]Vertex, len(paths))
	for i, p := range paths {
		out[i] = append([]Vertex(nil), p...)
	}
	return out
}

// Kind returns the element kind descriptor.
func (e *PathElement) Kind() Kind { return e.kind }

// Group returns the organizational group tag.
func (e *PathElement) Group() string { return e.group }

// Label returns the organizational label tag.
func (e *PathElement) Label() string { return e.label }

// Len returns the number of paths.
func (e *PathElement) Len() int { return len(e.paths) }

// Level returns the scalar level of contour-like elements.
func (e *PathElement) Level() (float64, bool) {
	if e.level == nil {
		return 0, false
	}
	return *e.level, true
}

// Paths returns a copy of the vertex paths.
func (e *PathElement) Paths() [][]Vertex { return copyPaths(e.paths) }

// KDims returns a copy of the key dimensions in order.
func (e *PathElement) KDims() []dims.Dimension {
	return append([]dims.Dimension(nil), e.kdims...)
}

// VDims returns a copy of the value dimensions in order.
func (e *PathElement) VDims() []dims.Dimension {
	return append([]dims.Dimension(nil), e.vdims...)
}

// Dimensions returns key dimensions followed by value dimensions.
func (e *PathElement) Dimensions() []dims.Dimension {
	all := make([]dims.Dimension, 0, len(e.kdims)+len(e.vdims))
	all = append(all, e.kdims...)
	return append(all, e.vdims...)
}

// DimensionValues returns the concatenated coordinates along a key
// dimension, or the level for the value dimension.
func (e *PathElement) DimensionValues(name string) ([]any, error) {
	for i, d := range e.kdims {
		if !d.Matches(name) {
			continue
		}
		var out []any
		for _, p := range e.paths {
			for _, v := range p {
				if i == 0 {
					out = append(out, v.X)
				} else {
					out = append(out, v.Y)
				}
			}
		}
		return out, nil
	}
	for _, d := range e.vdims {
		if d.Matches(name) {
			if e.level == nil {
				return nil, nil
			}
			return []any{*e.level}, nil
		}
	}
	return nil, NewElementError(e.kind.Name, name, ErrDimensionNotFound)
}

func (e *PathElement) clone() (*PathElement, error) {
	c := &PathElement{kind: e.kind, group: e.group, label: e.label}
	if e.level != nil {
		l := *e.level
		c.level = &l
	}
	if err := deepcopy.Copy(&c.kdims, e.kdims); err != nil {
		return nil, err
	}
	if err := deepcopy.Copy(&c.vdims, e.vdims); err != nil {
		return nil, err
	}
	c.paths = copyPaths(e.paths)
	return c, nil
}

// RenameDimension returns a clone with the dimension matching oldName
// renamed to newName.
func (e *PathElement) RenameDimension(oldName, newName string) (*PathElement, error) {
	c, err := e.clone()
	if err != nil {
		return nil, err
	}
	for i, d := range c.kdims {
		if d.Name == oldName {
			r, err := d.Renamed(newName)
			if err != nil {
				return nil, NewElementError(e.kind.Name, oldName, err)
			}
			c.kdims[i] = r
			return c, nil
		}
	}
	for i, d := range c.vdims {
		if d.Name == oldName {
			r, err := d.Renamed(newName)
			if err != nil {
				return nil, NewElementError(e.kind.Name, oldName, err)
			}
			c.vdims[i] = r
			return c, nil
		}
	}
	return nil, NewElementError(e.kind.Name, oldName, ErrDimensionNotFound)
}

// Relabel returns a clone with new group and label tags.
func (e *PathElement) Relabel(group, label string) (*PathElement, error) {
	if err := (Config{Group: group, Label: label}).Validate(); err != nil {
		return nil, err
	}
	c, err := e.clone()
	if err != nil {
		return nil, err
	}
	c.group = group
	if c.group == "" {
		c.group = e.kind.Name
	}
	c.label = label
	return c, nil
}

// Collapse merges the path lists of several path elements into one,
// keeping the metadata of the first. Paths cannot be collapsed with an
// aggregation function since they are not uniformly sampled.
func Collapse(elements ...*PathElement) (*PathElement, error) {
	if len(elements) == 0 {
		return nil, errors.New("collapse requires at least one element")
	}
	c, err := elements[0].clone()
	if err != nil {
		return nil, err
	}
	for _, e := range elements[1:] {
		c.paths = append(c.paths, copyPaths(e.paths)...)
	}
	return c, nil
}
