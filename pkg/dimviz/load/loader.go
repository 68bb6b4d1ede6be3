package load

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/dimviz/dimviz-go/pkg/dimviz/data"
)

// ErrNoSheets indicates a workbook without any worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrNoData indicates a file without any data rows.
var ErrNoData = errors.New("no data rows")

// ErrUnknownFormat indicates a file extension no loader handles.
var ErrUnknownFormat = errors.New("unknown data format")

// Loader reads tabular files into data tables.
type Loader struct {
	logger *zap.Logger
}

// NewLoader returns a loader that logs nowhere.
func NewLoader() *Loader {
	return &Loader{logger: zap.NewNop()}
}

// WithLogger returns a loader reporting through the given logger.
func (l *Loader) WithLogger(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// Detect loads a file by extension: .xlsx workbooks and .csv files.
func (l *Loader) Detect(path string, o Options) (*data.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return l.XLSX(path, o)
	case ".csv":
		return l.CSV(path, o)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
}

// XLSX reads one worksheet into a table.
func (l *Loader) XLSX(path string, o Options) (*data.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := o.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("read worksheet", zap.String("sheet", sheet), zap.Int("rows", len(rows)))
	return l.tableFromRows(rows, o)
}

// CSV reads a comma-separated file into a table. Short records are
// padded so ragged files still load.
func (l *Loader) CSV(path string, o Options) (*data.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	l.logger.Debug("read csv", zap.String("file", filepath.Base(path)), zap.Int("rows", len(rows)))
	return l.tableFromRows(rows, o)
}

// tableFromRows assembles a table from raw text rows. Column names come
// from the header row when enabled, otherwise they are synthesized as
// col1..colN over the widest row.
func (l *Loader) tableFromRows(rows [][]string, o Options) (*data.Table, error) {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, ErrNoData
	}

	var names []string
	if o.ShouldUseHeaderRow() {
		header := rows[0]
		rows = rows[1:]
		for i := 0; i < width; i++ {
			name := ""
			if i < len(header) {
				name = strings.TrimSpace(header[i])
			}
			if name == "" {
				name = fmt.Sprintf("col%d", i+1)
			}
			names = append(names, name)
		}
	} else {
		for i := 0; i < width; i++ {
			names = append(names, fmt.Sprintf("col%d", i+1))
		}
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	cols := make([]data.Column, width)
	for i, name := range names {
		cols[i] = data.Column{Name: name, Values: make([]any, len(rows))}
	}
	skipped := 0
	out := 0
	for _, row := range rows {
		empty := true
		for _, cell := range row {
			if cell != "" {
				empty = false
				break
			}
		}
		if empty {
			skipped++
			continue
		}
		for i := 0; i < width; i++ {
			var v any
			if i < len(row) && row[i] != "" {
				if o.ShouldInferTypes() {
					v = parseValue(row[i])
				} else {
					v = row[i]
				}
			}
			cols[i].Values[out] = v
		}
		out++
	}
	if skipped > 0 {
		l.logger.Debug("skipped empty rows", zap.Int("count", skipped))
	}
	if out == 0 {
		return nil, ErrNoData
	}
	for i := range cols {
		cols[i].Values = cols[i].Values[:out]
	}
	return data.NewTable(cols...)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
