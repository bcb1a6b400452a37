// Package frame holds the small column/row table the downloaders reshape before writing
// parquet and JSON files.
package frame

import (
	"fmt"
	"strings"
)

// Frame is a rectangular table. Cell values are nil, string, bool, int32, int64 or float64.
type Frame struct {
	Columns []string
	Rows    [][]any
}

// New builds a frame, padding or truncating rows to the column count.
func New(columns []string, rows [][]any) Frame {
	cols := append([]string(nil), columns...)
	out := make([][]any, 0, len(rows))
	for _, row := range rows {
		r := make([]any, len(cols))
		copy(r, row)
		out = append(out, r)
	}
	return Frame{Columns: cols, Rows: out}
}

// Len returns the number of rows.
func (f Frame) Len() int {
	return len(f.Rows)
}

// Index returns the position of column name, or -1.
func (f Frame) Index(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns the values of column name.
func (f Frame) Column(name string) ([]any, error) {
	idx := f.Index(name)
	if idx < 0 {
		return nil, fmt.Errorf("frame: unknown column %q", name)
	}
	out := make([]any, len(f.Rows))
	for i, row := range f.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Select returns a frame with only the named columns, in the given order.
func (f Frame) Select(names ...string) (Frame, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		idx[i] = f.Index(name)
		if idx[i] < 0 {
			return Frame{}, fmt.Errorf("frame: unknown column %q", name)
		}
	}
	rows := make([][]any, len(f.Rows))
	for r, row := range f.Rows {
		out := make([]any, len(idx))
		for i, j := range idx {
			out[i] = row[j]
		}
		rows[r] = out
	}
	return Frame{Columns: append([]string(nil), names...), Rows: rows}, nil
}

// WithColumn returns a copy of f with column name set to value on every row,
// appending the column when it does not exist yet.
func (f Frame) WithColumn(name string, value any) Frame {
	out := f.clone()
	idx := out.Index(name)
	if idx < 0 {
		out.Columns = append(out.Columns, name)
		for i := range out.Rows {
			out.Rows[i] = append(out.Rows[i], value)
		}
		return out
	}
	for i := range out.Rows {
		out.Rows[i][idx] = value
	}
	return out
}

// RenameColumns returns a copy of f with columns renamed by mapping; unknown names are ignored.
func (f Frame) RenameColumns(mapping map[string]string) Frame {
	out := f.clone()
	for i, c := range out.Columns {
		if renamed, ok := mapping[c]; ok {
			out.Columns[i] = renamed
		}
	}
	return out
}

// LowerColumns returns a copy of f with lower-cased column names.
func (f Frame) LowerColumns() Frame {
	out := f.clone()
	for i, c := range out.Columns {
		out.Columns[i] = strings.ToLower(c)
	}
	return out
}

// Records returns one map per row keyed by column name.
func (f Frame) Records() []map[string]any {
	out := make([]map[string]any, len(f.Rows))
	for i, row := range f.Rows {
		rec := make(map[string]any, len(f.Columns))
		for j, c := range f.Columns {
			rec[c] = row[j]
		}
		out[i] = rec
	}
	return out
}

func (f Frame) clone() Frame {
	rows := make([][]any, len(f.Rows))
	for i, row := range f.Rows {
		rows[i] = append([]any(nil), row...)
	}
	return Frame{Columns: append([]string(nil), f.Columns...), Rows: rows}
}
