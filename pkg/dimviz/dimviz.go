// Package dimviz ties ingestion and annotation together: it loads a
// tabular data file and wraps it in an annotated element whose
// dimension metadata either comes from the caller or is derived from
// the file's columns.
package dimviz

import (
	"fmt"

	"github.com/dimviz/dimviz-go/pkg/dimviz/data"
	"github.com/dimviz/dimviz-go/pkg/dimviz/dims"
	"github.com/dimviz/dimviz-go/pkg/dimviz/element"
	"github.com/dimviz/dimviz-go/pkg/dimviz/load"
)

// Annotate loads the file at path and builds an element of the given
// kind over it, using a silent loader.
func Annotate(path string, kind element.Kind, cfg element.Config, o load.Options) (*element.Element, error) {
	return AnnotateWith(load.NewLoader(), path, kind, cfg, o)
}

// AnnotateWith is Annotate with a caller-supplied loader.
func AnnotateWith(l *load.Loader, path string, kind element.Kind, cfg element.Config, o load.Options) (*element.Element, error) {
	tbl, err := l.Detect(path, o)
	if err != nil {
		return nil, err
	}
	return FromTable(tbl, kind, cfg)
}

// FromTable builds an element over an existing table. When the config
// names no dimensions, they are derived from the table columns in
// order: the kind's minimum key dimension count first, value
// dimensions from the remaining columns.
func FromTable(tbl *data.Table, kind element.Kind, cfg element.Config) (*element.Element, error) {
	if tbl != nil && cfg.KDims == nil && cfg.VDims == nil {
		if kind.Name == element.TableKind.Name {
			return element.NewTable(tbl, cfg)
		}
		kd, vd, err := bindColumns(kind, tbl)
		if err != nil {
			return nil, err
		}
		cfg.KDims, cfg.VDims = kd, vd
	}
	return element.New(kind, tbl, cfg)
}

// bindColumns derives dimension metadata from column names.
func bindColumns(kind element.Kind, tbl *data.Table) (kd, vd []dims.Dimension, err error) {
	names := tbl.Names()
	if want := kind.MinKDims + kind.MinVDims; len(names) < want {
		return nil, nil, element.NewElementError(kind.Name, "",
			fmt.Errorf("%w: %d columns for at least %d dimensions",
				element.ErrArityMismatch, len(names), want))
	}
	nk := kind.MinKDims
	nv := len(names) - nk
	if kind.MaxVDims >= 0 && nv > kind.MaxVDims {
		nv = kind.MaxVDims
	}
	for _, name := range names[:nk] {
		d, err := dims.New(name)
		if err != nil {
			return nil, nil, err
		}
		kd = append(kd, d)
	}
	for _, name := range names[nk : nk+nv] {
		d, err := dims.New(name)
		if err != nil {
			return nil, nil, err
		}
		vd = append(vd, d)
	}
	return kd, vd, nil
}
