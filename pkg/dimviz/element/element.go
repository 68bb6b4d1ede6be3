package element

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/tiendc/go-deepcopy"

	"github.com/dimviz/dimviz-go/pkg/dimviz/data"
	"github.com/dimviz/dimviz-go/pkg/dimviz/dims"
)

// Annotated is the read-only surface shared by all element types. It is
// what presentation layers and the options store consume.
type Annotated interface {
	// Kind returns the element kind descriptor.
	Kind() Kind
	// KDims returns the key dimensions in order.
	KDims() []dims.Dimension
	// VDims returns the value dimensions in order.
	VDims() []dims.Dimension
	// Group returns the organizational group tag.
	Group() string
	// Label returns the organizational label tag.
	Label() string
	// Len returns the number of data items.
	Len() int
}

// Config carries the optional metadata supplied at construction time.
type Config struct {
	// KDims overrides the kind's default key dimensions.
	KDims []dims.Dimension
	// VDims overrides the kind's default value dimensions.
	VDims []dims.Dimension
	// Group overrides the default group (the kind name).
	Group string
	// Label tags the element. Defaults to empty.
	Label string
}

// Validate rejects group and label values that would break the
// dot-separated Kind.Group.Label addressing used for option lookup.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Group, validation.By(validTag("group"))),
		validation.Field(&c.Label, validation.By(validTag("label"))),
	)
}

func validTag(field string) validation.RuleFunc {
	return func(value any) error {
		tag, _ := value.(string)
		if strings.Contains(tag, ".") {
			return validation.NewError("element."+field+"_dotted", field+" must not contain dots")
		}
		if strings.TrimSpace(tag) != tag {
			return validation.NewError("element."+field+"_padded", field+" must not have surrounding whitespace")
		}
		return nil
	}
}

// Element is an annotated tabular data element. The dimension sequence
// is owned by value; the backing table is shared by reference across
// metadata-only clones.
type Element struct {
	kind  Kind
	kdims []dims.Dimension
	vdims []dims.Dimension
	group string
	label string
	data  *data.Table
	// columns binds each dimension (kdims then vdims) to its backing
	// table column. Renames change dimension names only, so the binding
	// keeps pointing at the original column.
	columns []string
}

// New constructs an annotated element over a table. Dimensions default
// from the kind when the config omits them; every dimension must match
// a table column by name at construction time.
func New(kind Kind, tbl *data.Table, cfg Config) (*Element, error) {
	if tbl == nil {
		return nil, NewElementError(kind.Name, "", ErrNoData)
	}
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

	e := &Element{kind: kind, group: cfg.Group, label: cfg.Label, data: tbl}
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
		if !tbl.HasColumn(d.Name) {
			return nil, NewElementError(kind.Name, d.Name,
				fmt.Errorf("%w in data", data.ErrColumnNotFound))
		}
		e.columns = append(e.columns, d.Name)
	}
	return e, nil
}

// NewCurve builds a Curve element.
func NewCurve(tbl *data.Table, cfg Config) (*Element, error) { return New(Curve, tbl, cfg) }

// NewScatter builds a Scatter element.
func NewScatter(tbl *data.Table, cfg Config) (*Element, error) { return New(Scatter, tbl, cfg) }

// NewHistogram builds a Histogram element.
func NewHistogram(tbl *data.Table, cfg Config) (*Element, error) { return New(Histogram, tbl, cfg) }

// NewPoints builds a Points element.
func NewPoints(tbl *data.Table, cfg Config) (*Element, error) { return New(Points, tbl, cfg) }

// NewHeatMap builds a HeatMap element.
func NewHeatMap(tbl *data.Table, cfg Config) (*Element, error) { return New(HeatMap, tbl, cfg) }

// NewTable builds a Table element. When the config names no dimensions,
// every data column becomes a key dimension.
func NewTable(tbl *data.Table, cfg Config) (*Element, error) {
	if tbl != nil && cfg.KDims == nil && cfg.VDims == nil {
		for _, name := range tbl.Names() {
			d, err := dims.New(name)
			if err != nil {
				return nil, NewElementError(TableKind.Name, name, err)
			}
			cfg.KDims = append(cfg.KDims, d)
		}
	}
	return New(TableKind, tbl, cfg)
}

// Kind returns the element kind descriptor.
func (e *Element) Kind() Kind { return e.kind }

// Group returns the organizational group tag.
func (e *Element) Group() string { return e.group }

// Label returns the organizational label tag.
func (e *Element) Label() string { return e.label }

// Data returns the backing table shared by this element.
func (e *Element) Data() *data.Table { return e.data }

// Len returns the number of data rows.
func (e *Element) Len() int { return e.data.Len() }

// KDims returns a copy of the key dimensions in order.
func (e *Element) KDims() []dims.Dimension {
	return append([]dims.Dimension(nil), e.kdims...)
}

// VDims returns a copy of the value dimensions in order.
func (e *Element) VDims() []dims.Dimension {
	return append([]dims.Dimension(nil), e.vdims...)
}

// Dimensions returns key dimensions followed by value dimensions.
func (e *Element) Dimensions() []dims.Dimension {
	all := make([]dims.Dimension, 0, len(e.kdims)+len(e.vdims))
	all = append(all, e.kdims...)
	return append(all, e.vdims...)
}

// Dimension looks a dimension up by name or label.
func (e *Element) Dimension(name string) (dims.Dimension, error) {
	for _, d := range e.Dimensions() {
		if d.Matches(name) {
			return d, nil
		}
	}
	return dims.Dimension{}, NewElementError(e.kind.Name, name, ErrDimensionNotFound)
}

// dimensionIndex returns the position of the named dimension within
// Dimensions(), or -1.
func (e *Element) dimensionIndex(name string) int {
	for i, d := range e.Dimensions() {
		if d.Name == name {
			return i
		}
	}
	return -1
}

// DimensionValues returns the data values along the named dimension.
func (e *Element) DimensionValues(name string) ([]any, error) {
	i := e.dimensionIndex(name)
	if i < 0 {
		return nil, NewElementError(e.kind.Name, name, ErrDimensionNotFound)
	}
	return e.data.Column(e.columns[i])
}

// FloatValues returns the data values along the named dimension coerced
// to float64.
func (e *Element) FloatValues(name string) ([]float64, error) {
	i := e.dimensionIndex(name)
	if i < 0 {
		return nil, NewElementError(e.kind.Name, name, ErrDimensionNotFound)
	}
	return e.data.Floats(e.columns[i])
}

// clone copies the metadata set and shares the backing table.
func (e *Element) clone() (*Element, error) {
	c := &Element{kind: e.kind, group: e.group, label: e.label, data: e.data}
	if err := deepcopy.Copy(&c.kdims, e.kdims); err != nil {
		return nil, err
	}
	if err := deepcopy.Copy(&c.vdims, e.vdims); err != nil {
		return nil, err
	}
	c.columns = append([]string(nil), e.columns...)
	return c, nil
}

// UpdateDimension returns a clone whose named dimension was replaced by
// update's result. The backing data is shared, not copied.
func (e *Element) UpdateDimension(name string, update func(dims.Dimension) (dims.Dimension, error)) (*Element, error) {
	i := e.dimensionIndex(name)
	if i < 0 {
		return nil, NewElementError(e.kind.Name, name, ErrDimensionNotFound)
	}
	c, err := e.clone()
	if err != nil {
		return nil, err
	}
	target := &c.kdims
	if i >= len(c.kdims) {
		target = &c.vdims
		i -= len(c.kdims)
	}
	updated, err := update((*target)[i])
	if err != nil {
		return nil, NewElementError(e.kind.Name, name, err)
	}
	if err := updated.Validate(); err != nil {
		return nil, NewElementError(e.kind.Name, name, err)
	}
	if updated.Name != name && e.dimensionIndex(updated.Name) >= 0 {
		return nil, NewElementError(e.kind.Name, updated.Name, ErrDuplicateDimension)
	}
	(*target)[i] = updated
	return c, nil
}

// RenameDimension returns a clone with the dimension matching oldName
// renamed to newName, preserving its other fields and its data binding.
func (e *Element) RenameDimension(oldName, newName string) (*Element, error) {
	return e.UpdateDimension(oldName, func(d dims.Dimension) (dims.Dimension, error) {
		return d.Renamed(newName)
	})
}

// RelabelDimension returns a clone with the named dimension's label
// replaced.
func (e *Element) RelabelDimension(name, label string) (*Element, error) {
	return e.UpdateDimension(name, func(d dims.Dimension) (dims.Dimension, error) {
		return d.WithLabel(label), nil
	})
}

// RedimUnit returns a clone with the named dimension's unit replaced.
func (e *Element) RedimUnit(name, unit string) (*Element, error) {
	return e.UpdateDimension(name, func(d dims.Dimension) (dims.Dimension, error) {
		return d.WithUnit(unit), nil
	})
}

// RedimRange returns a clone with the named dimension constrained to
// [min, max].
func (e *Element) RedimRange(name string, min, max float64) (*Element, error) {
	return e.UpdateDimension(name, func(d dims.Dimension) (dims.Dimension, error) {
		return d.WithRange(min, max), nil
	})
}

// RedimStep returns a clone with the named dimension's step replaced.
func (e *Element) RedimStep(name string, step float64) (*Element, error) {
	return e.UpdateDimension(name, func(d dims.Dimension) (dims.Dimension, error) {
		return d.WithStep(step), nil
	})
}

// RedimValues returns a clone with the named dimension's allowed-value
// set replaced.
func (e *Element) RedimValues(name string, values ...any) (*Element, error) {
	return e.UpdateDimension(name, func(d dims.Dimension) (dims.Dimension, error) {
		return d.WithValues(values...), nil
	})
}

// Relabel returns a clone with new group and label tags. Empty group
// falls back to the kind name.
func (e *Element) Relabel(group, label string) (*Element, error) {
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

// Select returns a clone whose data keeps only the rows satisfying
// every selector. Selectors address dimensions by name.
func (e *Element) Select(sels ...data.Selector) (*Element, error) {
	if len(sels) == 0 {
		return e.clone()
	}
	type bound struct {
		col  []any
		keep func(any) bool
	}
	bounds := make([]bound, 0, len(sels))
	for _, s := range sels {
		i := e.dimensionIndex(s.Dimension())
		if i < 0 {
			return nil, NewElementError(e.kind.Name, s.Dimension(), ErrDimensionNotFound)
		}
		col, err := e.data.Column(e.columns[i])
		if err != nil {
			return nil, NewElementError(e.kind.Name, s.Dimension(), err)
		}
		bounds = append(bounds, bound{col: col, keep: s.Keep})
	}
	filtered := e.data.Filter(func(row int) bool {
		for _, b := range bounds {
			if !b.keep(b.col[row]) {
				return false
			}
		}
		return true
	})
	c, err := e.clone()
	if err != nil {
		return nil, err
	}
	c.data = filtered
	return c, nil
}

// Equal reports whether both elements carry the same kind, metadata and
// data. Dimensions compare on all fields; data compares by reference
// first, then by content.
func (e *Element) Equal(o *Element) bool {
	if e == o {
		return true
	}
	if e == nil || o == nil || e.kind.Name != o.kind.Name ||
		e.group != o.group || e.label != o.label {
		return false
	}
	if !dimsIdentical(e.kdims, o.kdims) || !dimsIdentical(e.vdims, o.vdims) {
		return false
	}
	return e.data == o.data || e.data.Equal(o.data)
}

func dimsIdentical(a, b []dims.Dimension) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Identical(b[i]) {
			return false
		}
	}
	return true
}
