// Package dataset wraps a gota DataFrame as an immutable match/odds table.
//
// Every operation returns a new Dataset; none modifies its receiver, so a
// Dataset can be shared between goroutines without locking.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/irfndi/oddsframe/internal/utils"
)

// MissingTokens are the raw cell values read as missing when loading data.
var MissingTokens = []string{"", "NA", "NaN", "nan", "None", "<nil>", "NaT"}

// Dataset is an ordered set of named columns over positionally aligned rows.
type Dataset struct {
	frame dataframe.DataFrame
	nrow  int

	indexOnce sync.Once
	odds      []OddsColumn
}

// New wraps frame. A frame carrying an error is rejected.
func New(frame dataframe.DataFrame) (*Dataset, error) {
	if frame.Err != nil {
		return nil, fmt.Errorf("invalid data frame: %w", frame.Err)
	}
	return &Dataset{frame: frame, nrow: frame.Nrow()}, nil
}

// ReadCSV loads a headed CSV stream, detecting column types.
func ReadCSV(r io.Reader) (*Dataset, error) {
	frame := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(MissingTokens),
	)
	return New(frame)
}

// ReadCSVWithTypes loads a headed CSV stream using the given column types.
// Columns absent from types are detected.
func ReadCSVWithTypes(r io.Reader, types map[string]series.Type) (*Dataset, error) {
	frame := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.WithTypes(types),
		dataframe.NaNValues(MissingTokens),
	)
	return New(frame)
}

// FromRecords builds a dataset from string records; the first record is the header.
func FromRecords(records [][]string) (*Dataset, error) {
	frame := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(MissingTokens),
	)
	return New(frame)
}

// Names returns the column names in order.
func (d *Dataset) Names() []string {
	if d.frame.Ncol() == 0 {
		return []string{}
	}
	return d.frame.Names()
}

// Nrow returns the number of rows.
func (d *Dataset) Nrow() int {
	return d.nrow
}

// Ncol returns the number of columns.
func (d *Dataset) Ncol() int {
	return d.frame.Ncol()
}

// Missing returns the names in cols that are not columns of d, in input order.
func (d *Dataset) Missing(cols ...string) []string {
	present := make(map[string]struct{}, d.Ncol())
	for _, n := range d.Names() {
		present[n] = struct{}{}
	}
	var missing []string
	for _, c := range cols {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

// Column returns the named column.
func (d *Dataset) Column(name string) (series.Series, error) {
	if missing := d.Missing(name); len(missing) > 0 {
		return series.Series{}, utils.NewColumnError("column lookup", missing...)
	}
	col := d.frame.Col(name)
	if col.Err != nil {
		return series.Series{}, fmt.Errorf("column %q: %w", name, col.Err)
	}
	return col, nil
}

// Select returns a dataset holding only cols, in the given order. Every row
// is kept. An empty cols yields a dataset with no columns and the same rows.
func (d *Dataset) Select(operation string, cols []string) (*Dataset, error) {
	if missing := d.Missing(cols...); len(missing) > 0 {
		return nil, utils.NewColumnError(operation, missing...)
	}
	if len(cols) == 0 {
		return &Dataset{nrow: d.nrow}, nil
	}
	out := d.frame.Select(cols)
	if out.Err != nil {
		return nil, fmt.Errorf("%s: %w", operation, out.Err)
	}
	return &Dataset{frame: out, nrow: out.Nrow()}, nil
}

// Rows returns a dataset holding the rows at the given positions, in that order.
func (d *Dataset) Rows(positions []int) (*Dataset, error) {
	if d.Ncol() == 0 {
		return &Dataset{nrow: len(positions)}, nil
	}
	if len(positions) == 0 {
		return d.empty()
	}
	out := d.frame.Subset(positions)
	if out.Err != nil {
		return nil, fmt.Errorf("row subset: %w", out.Err)
	}
	return &Dataset{frame: out, nrow: out.Nrow()}, nil
}

// Where returns the rows for which keep reports true, preserving order.
func (d *Dataset) Where(keep func(row int) bool) (*Dataset, error) {
	positions := make([]int, 0, d.nrow)
	for i := 0; i < d.nrow; i++ {
		if keep(i) {
			positions = append(positions, i)
		}
	}
	if len(positions) == d.nrow {
		return d, nil
	}
	return d.Rows(positions)
}

// empty keeps the column set and types but no rows.
func (d *Dataset) empty() (*Dataset, error) {
	cols := make([]series.Series, 0, d.Ncol())
	for _, name := range d.Names() {
		src := d.frame.Col(name)
		cols = append(cols, series.New([]string{}, src.Type(), name))
	}
	out := dataframe.New(cols...)
	if out.Err != nil {
		return nil, fmt.Errorf("empty dataset: %w", out.Err)
	}
	return &Dataset{frame: out}, nil
}

// Types maps each column name to its series type.
func (d *Dataset) Types() map[string]series.Type {
	out := make(map[string]series.Type, d.Ncol())
	for _, name := range d.Names() {
		out[name] = d.frame.Col(name).Type()
	}
	return out
}

// WriteCSV writes the dataset with a header row. Floats keep full precision
// and missing cells are empty.
func (d *Dataset) WriteCSV(w io.Writer) error {
	if d.Ncol() == 0 {
		return nil
	}
	names := d.Names()
	cols := make([]series.Series, len(names))
	for i, n := range names {
		cols[i] = d.frame.Col(n)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(names); err != nil {
		return err
	}
	row := make([]string, len(names))
	for r := 0; r < d.nrow; r++ {
		for c, col := range cols {
			row[c] = formatCell(col.Elem(r))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(el series.Element) string {
	if IsMissing(el) {
		return ""
	}
	if el.Type() == series.Float {
		return strconv.FormatFloat(el.Float(), 'g', -1, 64)
	}
	return el.String()
}

// Records returns one map per row keyed by column name. Missing cells are nil.
func (d *Dataset) Records() []map[string]interface{} {
	names := d.Names()
	cols := make([]series.Series, len(names))
	for i, n := range names {
		cols[i] = d.frame.Col(n)
	}
	out := make([]map[string]interface{}, d.nrow)
	for r := 0; r < d.nrow; r++ {
		rec := make(map[string]interface{}, len(names))
		for c, n := range names {
			el := cols[c].Elem(r)
			if IsMissing(el) {
				rec[n] = nil
				continue
			}
			rec[n] = el.Val()
		}
		out[r] = rec
	}
	return out
}
