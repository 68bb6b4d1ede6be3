// Package load ingests tabular data files into data tables.
package load

// Options configures ingestion behavior.
type Options struct {
	// Sheet selects the worksheet to read. Empty means the first sheet.
	Sheet string
	// HeaderRow specifies whether the first row holds column names.
	// If nil, defaults to true.
	HeaderRow *bool
	// InferTypes specifies whether numeric-looking cell text is parsed
	// into int64/float64 values. If nil, defaults to true.
	InferTypes *bool
}

// DefaultOptions returns default ingestion options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldUseHeaderRow returns whether the first row names the columns.
func (o Options) ShouldUseHeaderRow() bool {
	if o.HeaderRow != nil {
		return *o.HeaderRow
	}
	return true
}

// ShouldInferTypes returns whether cell text is parsed into numbers.
func (o Options) ShouldInferTypes() bool {
	if o.InferTypes != nil {
		return *o.InferTypes
	}
	return true
}
