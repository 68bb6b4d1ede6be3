package element

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPathXY(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := [][]float64{{0, 1, 4}, {0, 2, 8}}
	p, err := NewPathXY(xs, ys, Config{})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "Path", p.Group())

	paths := p.Paths()
	assert.Equal(t, Vertex{X: 2, Y: 8}, paths[1][2])
}

func TestNewPathXYLengthMismatch(t *testing.T) {
	_, err := NewPathXY([]float64{0, 1}, [][]float64{{0, 1, 2}}, Config{})
	assert.ErrorIs(t, err, ErrPathLengths)
}

func TestPathDimensionValues(t *testing.T) {
	p, err := NewPath([][]Vertex{
		{{X: 0, Y: 5}, {X: 1, Y: 6}},
		{{X: 2, Y: 7}},
	}, Config{})
	require.NoError(t, err)

	xs, err := p.DimensionValues("x")
	require.NoError(t, err)
	assert.Equal(t, []any{0.0, 1.0, 2.0}, xs)

	ys, err := p.DimensionValues("y")
	require.NoError(t, err)
	assert.Equal(t, []any{5.0, 6.0, 7.0}, ys)

	_, err = p.DimensionValues("z")
	assert.ErrorIs(t, err, ErrDimensionNotFound)
}

func TestContoursCarryLevel(t *testing.T) {
	c, err := NewContours([][]Vertex{{{X: 0, Y: 0}}}, 0.5, Config{})
	require.NoError(t, err)
	assert.Equal(t, "Contours", c.Group())

	level, ok := c.Level()
	assert.True(t, ok)
	assert.Equal(t, 0.5, level)

	vs, err := c.DimensionValues("Level")
	require.NoError(t, err)
	assert.Equal(t, []any{0.5}, vs)
}

func TestPolygonsDefaults(t *testing.T) {
	p, err := NewPolygons(nil, 3, Config{})
	require.NoError(t, err)
	assert.Equal(t, "Polygons", p.Group())
	assert.Equal(t, "Value", p.VDims()[0].Name)
}

func TestPathRenameAndRelabel(t *testing.T) {
	p, err := NewPath([][]Vertex{{{X: 1, Y: 2}}}, Config{})
	require.NoError(t, err)

	r, err := p.RenameDimension("x", "lon")
	require.NoError(t, err)
	assert.Equal(t, "lon", r.KDims()[0].Name)
	assert.Equal(t, "x", p.KDims()[0].Name)

	_, err = p.RenameDimension("q", "r")
	assert.ErrorIs(t, err, ErrDimensionNotFound)

	l, err := p.Relabel("Route", "Outbound")
	require.NoError(t, err)
	assert.Equal(t, "Route", l.Group())
	assert.Equal(t, "", p.Label())
}

func TestCollapse(t *testing.T) {
	a, err := NewPath([][]Vertex{{{X: 0, Y: 0}}}, Config{})
	require.NoError(t, err)
	b, err := NewPath([][]Vertex{{{X: 1, Y: 1}}, {{X: 2, Y: 2}}}, Config{})
	require.NoError(t, err)

	merged, err := Collapse(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, merged.Len())
	assert.Equal(t, 1, a.Len())

	_, err = Collapse()
	assert.Error(t, err)
}

func TestBox(t *testing.T) {
	b := NewBox(1, 2, 4, 2, 0)
	require.Equal(t, 1, b.Len())
	path := b.Paths()[0]
	require.Len(t, path, 5)
	assert.Equal(t, Vertex{X: -1, Y: 1}, path[0])
	assert.Equal(t, path[0], path[4])
	assert.Equal(t, "Box", b.Group())
}

func TestBoxRotation(t *testing.T) {
	b := NewBox(0, 0, 2, 2, math.Pi/2)
	path := b.Paths()[0]
	// (-1,-1) rotated 90° counterclockwise lands on (1,-1).
	assert.InDelta(t, 1, path[0].X, 1e-9)
	assert.InDelta(t, -1, path[0].Y, 1e-9)
}

func TestEllipse(t *testing.T) {
	e := NewEllipse(0, 0, 2, 4, 0, 5)
	path := e.Paths()[0]
	require.Len(t, path, 5)
	// Starts at the top of the ellipse and closes on itself.
	assert.InDelta(t, 0, path[0].X, 1e-9)
	assert.InDelta(t, 2, path[0].Y, 1e-9)
	assert.InDelta(t, path[0].X, path[4].X, 1e-9)
	assert.InDelta(t, path[0].Y, path[4].Y, 1e-9)
	assert.Equal(t, "Ellipse", e.Group())

	assert.Len(t, NewEllipse(0, 0, 1, 1, 0, 0).Paths()[0], defaultEllipseSamples)
}

func TestBounds(t *testing.T) {
	b := NewBounds(-0.5, -0.5, 0.5, 0.5)
	path := b.Paths()[0]
	assert.Equal(t, Vertex{X: -0.5, Y: -0.5}, path[0])
	assert.Equal(t, Vertex{X: 0.5, Y: 0.5}, path[2])
	assert.Equal(t, "Bounds", b.Group())

	r := NewBoundsRadius(2)
	assert.Equal(t, Vertex{X: -2, Y: -2}, r.Paths()[0][0])
}
