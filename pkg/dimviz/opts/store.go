// Package opts resolves per-element display options. Options are keyed
// by dot-separated addressing paths (Kind, Kind.Group or
// Kind.Group.Label) and grouped into style, plot and norm sets; lookup
// merges from the least to the most specific path so specific settings
// win.
package opts

import (
	"fmt"
	"io"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/dimviz/dimviz-go/pkg/dimviz/element"
)

// Group names one option category.
type Group string

const (
	// GroupStyle holds backend styling options (color, linewidth, ...).
	GroupStyle Group = "style"
	// GroupPlot holds plot-level options (width, axes, ...).
	GroupPlot Group = "plot"
	// GroupNorm holds normalization options.
	GroupNorm Group = "norm"
)

var groups = map[Group]bool{GroupStyle: true, GroupPlot: true, GroupNorm: true}

// Options is one flat set of option keywords.
type Options map[string]any

// Store maps addressing paths to per-group option sets.
type Store struct {
	entries map[string]map[Group]Options
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]map[Group]Options)}
}

// Set merges the given options into the store under path and group.
func (s *Store) Set(path string, group Group, o Options) error {
	if err := validatePath(path); err != nil {
		return err
	}
	if !groups[group] {
		return fmt.Errorf("unknown option group %q", group)
	}
	byGroup, ok := s.entries[path]
	if !ok {
		byGroup = make(map[Group]Options)
		s.entries[path] = byGroup
	}
	merged, ok := byGroup[group]
	if !ok {
		merged = make(Options)
		byGroup[group] = merged
	}
	for k, v := range o {
		merged[k] = v
	}
	return nil
}

// Lookup resolves the options applying to an element for one group.
// Entries merge in specificity order: Kind, then Kind.Group, then
// Kind.Group.Label.
func (s *Store) Lookup(el element.Annotated, group Group) Options {
	kind := el.Kind().Name
	candidates := []string{kind, kind + "." + el.Group()}
	if el.Label() != "" {
		candidates = append(candidates, kind+"."+el.Group()+"."+el.Label())
	}
	out := make(Options)
	for _, path := range candidates {
		if o, ok := s.entries[path][group]; ok {
			for k, v := range o {
				out[k] = v
			}
		}
	}
	return out
}

// Paths returns the registered addressing paths, sorted.
func (s *Store) Paths() []string {
	paths := make([]string, 0, len(s.entries))
	for p := range s.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// FromYAML reads a store from a YAML document mapping addressing paths
// to group names to option sets:
//
//	Curve:
//	  style: {color: red}
//	Curve.Signal:
//	  plot: {width: 400}
func FromYAML(r io.Reader) (*Store, error) {
	var doc map[string]map[string]Options
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing options document: %w", err)
	}
	s := NewStore()
	for path, byGroup := range doc {
		for group, o := range byGroup {
			if err := s.Set(path, Group(group), o); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func validatePath(path string) error {
	return validation.Validate(path, validation.Required, validation.By(func(value any) error {
		p, _ := value.(string)
		parts := strings.Split(p, ".")
		if len(parts) > 3 {
			return validation.NewError("opts.path_depth", "path must have at most three segments")
		}
		for _, part := range parts {
			if strings.TrimSpace(part) == "" || strings.TrimSpace(part) != part {
				return validation.NewError("opts.path_segment", "path segments must be non-blank and unpadded")
			}
		}
		return nil
	}))
}
