package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimviz/dimviz-go/pkg/dimviz/data"
	"github.com/dimviz/dimviz-go/pkg/dimviz/dims"
)

func walkTable(t *testing.T) *data.Table {
	t.Helper()
	tbl, err := data.NewTable(
		data.Column{Name: "distance", Values: []any{0.0, 1.0, 2.0, 3.0}},
		data.Column{Name: "height", Values: []any{10.0, 12.5, 11.0, 9.0}},
	)
	require.NoError(t, err)
	return tbl
}

func walkCurve(t *testing.T) *Element {
	t.Helper()
	e, err := NewCurve(walkTable(t), Config{
		KDims: []dims.Dimension{dims.MustNew("distance")},
		VDims: []dims.Dimension{dims.MustNew("height")},
	})
	require.NoError(t, err)
	return e
}

func TestCurveExposesDeclaredDimensions(t *testing.T) {
	e := walkCurve(t)

	kd, vd := e.KDims(), e.VDims()
	require.Len(t, kd, 1)
	require.Len(t, vd, 1)
	assert.Equal(t, "distance", kd[0].Name)
	assert.Equal(t, "height", vd[0].Name)
	assert.Equal(t, "Curve", e.Group())
	assert.Equal(t, "", e.Label())
	assert.Equal(t, 4, e.Len())
}

func TestNewDefaultsFromKind(t *testing.T) {
	tbl, err := data.NewTable(
		data.Column{Name: "x", Values: []any{1.0}},
		data.Column{Name: "y", Values: []any{2.0}},
	)
	require.NoError(t, err)
	e, err := NewCurve(tbl, Config{})
	require.NoError(t, err)
	assert.Equal(t, "x", e.KDims()[0].Name)
	assert.Equal(t, "y", e.VDims()[0].Name)
}

func TestNewValidation(t *testing.T) {
	tbl := walkTable(t)

	// Arity mismatch.
	_, err := NewCurve(tbl, Config{
		KDims: []dims.Dimension{dims.MustNew("distance"), dims.MustNew("height")},
		VDims: []dims.Dimension{dims.MustNew("height")},
	})
	assert.ErrorIs(t, err, ErrArityMismatch)

	// Dimension missing from the data.
	_, err = NewCurve(tbl, Config{
		KDims: []dims.Dimension{dims.MustNew("elevation")},
		VDims: []dims.Dimension{dims.MustNew("height")},
	})
	assert.ErrorIs(t, err, data.ErrColumnNotFound)

	// Duplicate dimension name.
	_, err = NewCurve(tbl, Config{
		KDims: []dims.Dimension{dims.MustNew("height")},
		VDims: []dims.Dimension{dims.MustNew("height")},
	})
	assert.ErrorIs(t, err, ErrDuplicateDimension)

	// Dotted group breaks option addressing.
	_, err = NewCurve(tbl, Config{Group: "a.b"})
	assert.Error(t, err)

	// Missing data.
	_, err = NewCurve(nil, Config{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestNewTableDerivesDimensionsFromColumns(t *testing.T) {
	e, err := NewTable(walkTable(t), Config{})
	require.NoError(t, err)
	require.Len(t, e.KDims(), 2)
	assert.Equal(t, "distance", e.KDims()[0].Name)
	assert.Equal(t, "height", e.KDims()[1].Name)
}

func TestDimensionLookup(t *testing.T) {
	e := walkCurve(t)

	d, err := e.Dimension("height")
	require.NoError(t, err)
	assert.Equal(t, "height", d.Name)

	_, err = e.Dimension("weight")
	assert.ErrorIs(t, err, ErrDimensionNotFound)
}

func TestDimensionValues(t *testing.T) {
	e := walkCurve(t)
	vs, err := e.FloatValues("height")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12.5, 11, 9}, vs)
}

func TestRenameDimension(t *testing.T) {
	e := walkCurve(t)

	r, err := e.RenameDimension("height", "altitude")
	require.NoError(t, err)
	assert.Equal(t, "altitude", r.VDims()[0].Name)

	// Original untouched, data shared by reference.
	assert.Equal(t, "height", e.VDims()[0].Name)
	assert.Same(t, e.Data(), r.Data())

	// The renamed dimension still reads the original column.
	vs, err := r.FloatValues("altitude")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12.5, 11, 9}, vs)

	_, err = e.RenameDimension("weight", "mass")
	assert.ErrorIs(t, err, ErrDimensionNotFound)

	// Renaming onto an existing dimension is rejected.
	_, err = e.RenameDimension("height", "distance")
	assert.ErrorIs(t, err, ErrDuplicateDimension)
}

func TestRenameRoundTripsToEqualElement(t *testing.T) {
	e := walkCurve(t)
	once, err := e.RenameDimension("height", "altitude")
	require.NoError(t, err)
	back, err := once.RenameDimension("altitude", "height")
	require.NoError(t, err)
	assert.True(t, back.Equal(e))
}

func TestNoOpUpdateYieldsEqualElement(t *testing.T) {
	e := walkCurve(t)
	same, err := e.UpdateDimension("height", func(d dims.Dimension) (dims.Dimension, error) {
		return d.WithLabel(d.Label), nil
	})
	require.NoError(t, err)
	assert.True(t, same.Equal(e))
	assert.NotSame(t, e, same)
}

func TestUpdateDimensionFields(t *testing.T) {
	e := walkCurve(t)

	u, err := e.RedimUnit("height", "m")
	require.NoError(t, err)
	assert.Equal(t, "m", u.VDims()[0].Unit)
	assert.Equal(t, "", e.VDims()[0].Unit)

	u, err = u.RedimRange("height", 0, 100)
	require.NoError(t, err)
	assert.Equal(t, &dims.Span{Min: 0, Max: 100}, u.VDims()[0].Range)

	u, err = u.RedimStep("distance", 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, u.KDims()[0].Step)

	u, err = u.RedimValues("distance", 0.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, []any{0.0, 1.0}, u.KDims()[0].Values)

	_, err = u.RedimRange("height", 5, 1)
	assert.ErrorIs(t, err, dims.ErrInvalidSpan)
}

func TestRelabel(t *testing.T) {
	e := walkCurve(t)
	r, err := e.Relabel("Walk", "Morning")
	require.NoError(t, err)
	assert.Equal(t, "Walk", r.Group())
	assert.Equal(t, "Morning", r.Label())
	assert.Equal(t, "Curve", e.Group())

	back, err := r.Relabel("", "")
	require.NoError(t, err)
	assert.Equal(t, "Curve", back.Group())
}

func TestSelect(t *testing.T) {
	e := walkCurve(t)

	s, err := e.Select(data.RangeOf("distance", 1, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 4, e.Len())

	hs, err := s.FloatValues("height")
	require.NoError(t, err)
	assert.Equal(t, []float64{12.5, 11}, hs)

	_, err = e.Select(data.Eq("weight", 1))
	assert.ErrorIs(t, err, ErrDimensionNotFound)
}

func TestSelectCombinesSelectors(t *testing.T) {
	e := walkCurve(t)
	s, err := e.Select(
		data.RangeOf("distance", 0, 2),
		data.RangeOf("height", 11, 13),
	)
	require.NoError(t, err)
	ds, err := s.FloatValues("distance")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, ds)
}

func TestElementErrorWrapping(t *testing.T) {
	e := walkCurve(t)
	_, err := e.RenameDimension("weight", "mass")
	var ee *ElementError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "Curve", ee.Element)
	assert.Equal(t, "weight", ee.Dimension)
}
