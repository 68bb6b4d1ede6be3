// Package output serializes element metadata for presentation layers.
package output

import (
	"encoding/json"

	"github.com/dimviz/dimviz-go/pkg/dimviz/dims"
	"github.com/dimviz/dimviz-go/pkg/dimviz/element"
)

// ElementInfo is the JSON view of an element's metadata.
type ElementInfo struct {
	// Kind is the element kind name.
	Kind string `json:"kind"`
	// Group is the organizational group tag.
	Group string `json:"group"`
	// Label is the organizational label tag.
	Label string `json:"label,omitempty"`
	// KDims lists the key dimensions in order.
	KDims []dims.Dimension `json:"kdims"`
	// VDims lists the value dimensions in order.
	VDims []dims.Dimension `json:"vdims,omitempty"`
	// Length is the number of data items.
	Length int `json:"length"`
	// Options carries resolved display options per group when requested.
	Options map[string]map[string]any `json:"options,omitempty"`
}

// Describe summarizes an element's metadata.
func Describe(el element.Annotated) ElementInfo {
	return ElementInfo{
		Kind:   el.Kind().Name,
		Group:  el.Group(),
		Label:  el.Label(),
		KDims:  el.KDims(),
		VDims:  el.VDims(),
		Length: el.Len(),
	}
}

// ToJSON serializes v, optionally indented.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
