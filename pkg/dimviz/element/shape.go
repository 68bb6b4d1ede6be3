package element

import "math"

// Shapes are paths expressed by a few parameters instead of a full
// vertex list: a box by center and size, an ellipse by center, size and
// sample count, bounds by the (left, bottom, right, top) corners.

const defaultEllipseSamples = 100

// NewBox returns a Path tracing a centered rectangle of the given width
// and height, rotated counterclockwise by orientation radians.
func NewBox(x, y, width, height, orientation float64) *PathElement {
	halfW, halfH := width/2, height/2
	corners := []Vertex{
		{X: -halfW, Y: -halfH},
		{X: -halfW, Y: halfH},
		{X: halfW, Y: halfH},
		{X: halfW, Y: -halfH},
		{X: -halfW, Y: -halfH},
	}
	path := rotateTranslate(corners, orientation, x, y)
	e, _ := NewPath([][]Vertex{path}, Config{Group: "Box"})
	return e
}

// NewEllipse returns a Path tracing an ellipse of the given width and
// height around (x, y), rotated counterclockwise by orientation radians
// and sampled at the given number of positions. A non-positive sample
// count falls back to the default of 100.
func NewEllipse(x, y, width, height, orientation float64, samples int) *PathElement {
	if samples < 2 {
		samples = defaultEllipseSamples
	}
	halfW, halfH := width/2, height/2
	path := make([]Vertex, samples)
	for i := 0; i < samples; i++ {
		angle := 2 * math.Pi * float64(i) / float64(samples-1)
		path[i] = Vertex{X: halfW * math.Sin(angle), Y: halfH * math.Cos(angle)}
	}
	path = rotateTranslate(path, orientation, x, y)
	e, _ := NewPath([][]Vertex{path}, Config{Group: "Ellipse"})
	return e
}

// NewBounds returns a Path tracing the axis-aligned rectangle with the
// given (left, bottom, right, top) corner coordinates.
func NewBounds(left, bottom, right, top float64) *PathElement {
	path := []Vertex{
		{X: left, Y: bottom},
		{X: left, Y: top},
		{X: right, Y: top},
		{X: right, Y: bottom},
		{X: left, Y: bottom},
	}
	e, _ := NewPath([][]Vertex{path}, Config{Group: "Bounds"})
	return e
}

// NewBoundsRadius returns square bounds of the given radius centered on
// the origin.
func NewBoundsRadius(radius float64) *PathElement {
	return NewBounds(-radius, -radius, radius, radius)
}

func rotateTranslate(path []Vertex, orientation, dx, dy float64) []Vertex {
	sin, cos := math.Sin(orientation), math.Cos(orientation)
	out := make([]Vertex, len(path))
	for i, v := range path {
		out[i] = Vertex{
			X: cos*v.X - sin*v.Y + dx,
			Y: sin*v.X + cos*v.Y + dy,
		}
	}
	return out
}
