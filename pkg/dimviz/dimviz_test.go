package dimviz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimviz/dimviz-go/pkg/dimviz/data"
	"github.com/dimviz/dimviz-go/pkg/dimviz/dims"
	"github.com/dimviz/dimviz-go/pkg/dimviz/element"
	"github.com/dimviz/dimviz-go/pkg/dimviz/load"
)

func TestAnnotateCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.csv")
	require.NoError(t, os.WriteFile(path, []byte("distance,height\n0,10\n1,12.5\n"), 0644))

	el, err := Annotate(path, element.Curve, element.Config{}, load.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "distance", el.KDims()[0].Name)
	assert.Equal(t, "height", el.VDims()[0].Name)
	assert.Equal(t, 2, el.Len())
}

func TestFromTableRespectsExplicitDims(t *testing.T) {
	tbl, err := data.NewTable(
		data.Column{Name: "a", Values: []any{1.0}},
		data.Column{Name: "b", Values: []any{2.0}},
	)
	require.NoError(t, err)

	el, err := FromTable(tbl, element.Curve, element.Config{
		KDims: []dims.Dimension{dims.MustNew("b")},
		VDims: []dims.Dimension{dims.MustNew("a")},
	})
	require.NoError(t, err)
	assert.Equal(t, "b", el.KDims()[0].Name)
}

func TestFromTableDerivesHeatMapDims(t *testing.T) {
	tbl, err := data.NewTable(
		data.Column{Name: "row", Values: []any{1.0}},
		data.Column{Name: "col", Values: []any{2.0}},
		data.Column{Name: "value", Values: []any{3.0}},
	)
	require.NoError(t, err)

	el, err := FromTable(tbl, element.HeatMap, element.Config{})
	require.NoError(t, err)
	assert.Equal(t, "row", el.KDims()[0].Name)
	assert.Equal(t, "col", el.KDims()[1].Name)
	assert.Equal(t, "value", el.VDims()[0].Name)
}

func TestFromTableTableKind(t *testing.T) {
	tbl, err := data.NewTable(
		data.Column{Name: "a", Values: []any{1.0}},
		data.Column{Name: "b", Values: []any{2.0}},
	)
	require.NoError(t, err)

	el, err := FromTable(tbl, element.TableKind, element.Config{})
	require.NoError(t, err)
	assert.Len(t, el.KDims(), 2)
}

func TestFromTableTooFewColumns(t *testing.T) {
	tbl, err := data.NewTable(data.Column{Name: "only", Values: []any{1.0}})
	require.NoError(t, err)

	_, err = FromTable(tbl, element.Curve, element.Config{})
	assert.ErrorIs(t, err, element.ErrArityMismatch)
}
