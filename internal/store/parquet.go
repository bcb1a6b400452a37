package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
)

const (
	metaUpdated = "updated"
	// parquet sorts group fields by name; the frame order is kept here.
	metaColumns = "columns"
	readBatch   = 256
)

type columnKind int

const (
	colString columnKind = iota
	colBool
	colInt32
	colInt64
	colDouble
)

// WriteParquet writes f to target with an "updated" key/value entry set to the writer clock.
func (w *Writer) WriteParquet(target string, f frame.Frame) error {
	if w == nil {
		return errors.New("store writer not configured")
	}
	if len(f.Columns) == 0 {
		return fmt.Errorf("write %s: frame has no columns", target)
	}
	kinds := make([]columnKind, len(f.Columns))
	group := parquet.Group{}
	for j, name := range f.Columns {
		if _, dup := group[name]; dup {
			return fmt.Errorf("write %s: duplicate column %q", target, name)
		}
		kinds[j] = inferKind(f.Rows, j)
		group[name] = parquet.Optional(leafFor(kinds[j]))
	}
	schema := parquet.NewSchema("frame", group)

	// leaf index of every frame column in the sorted schema
	leaf := make(map[string]int, len(f.Columns))
	for i, field := range schema.Fields() {
		leaf[field.Name()] = i
	}

	order, err := json.Marshal(f.Columns)
	if err != nil {
		return err
	}

	rows := make([]parquet.Row, len(f.Rows))
	for r, cells := range f.Rows {
		row := make(parquet.Row, len(f.Columns))
		for j, name := range f.Columns {
			col := leaf[name]
			row[col] = valueFor(kinds[j], cells[j]).Level(0, definitionLevel(cells[j]), col)
		}
		rows[r] = row
	}

	return w.atomicWrite(target, kindParquet, func(out *os.File) error {
		pw := parquet.NewWriter(out, schema,
			parquet.Compression(&parquet.Snappy),
			parquet.KeyValueMetadata(metaUpdated, w.Now().Format(time.RFC3339)),
			parquet.KeyValueMetadata(metaColumns, string(order)),
		)
		if _, err := pw.WriteRows(rows); err != nil {
			_ = pw.Close()
			return err
		}
		return pw.Close()
	})
}

// ReadParquet loads a file written by WriteParquet back into a frame. Integer columns keep
// their width; strings, booleans and doubles map to string, bool and float64.
func ReadParquet(path string) (frame.Frame, error) {
	pf, closeFn, err := openParquet(path)
	if err != nil {
		return frame.Frame{}, err
	}
	defer closeFn()

	fields := pf.Schema().Fields()
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name()
	}

	var rows [][]any
	buf := make([]parquet.Row, readBatch)
	for _, rg := range pf.RowGroups() {
		reader := rg.Rows()
		for {
			n, err := reader.ReadRows(buf)
			for _, row := range buf[:n] {
				cells := make([]any, len(names))
				for _, v := range row {
					if c := v.Column(); c >= 0 && c < len(cells) {
						cells[c] = cellOf(v)
					}
				}
				rows = append(rows, cells)
			}
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				_ = reader.Close()
				return frame.Frame{}, fmt.Errorf("read %s: %w", path, err)
			}
		}
		if err := reader.Close(); err != nil {
			return frame.Frame{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	out := frame.New(names, rows)
	if raw, ok := pf.Lookup(metaColumns); ok {
		var order []string
		if json.Unmarshal([]byte(raw), &order) == nil && len(order) == len(names) {
			if sel, err := out.Select(order...); err == nil {
				out = sel
			}
		}
	}
	return out, nil
}

// ParquetUpdated returns the "updated" key/value entry of a parquet file.
func ParquetUpdated(path string) (string, error) {
	pf, closeFn, err := openParquet(path)
	if err != nil {
		return "", err
	}
	defer closeFn()
	updated, ok := pf.Lookup(metaUpdated)
	if !ok {
		return "", fmt.Errorf("%s: no %q metadata", path, metaUpdated)
	}
	return updated, nil
}

func openParquet(path string) (*parquet.File, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return pf, func() { _ = f.Close() }, nil
}

func inferKind(rows [][]any, j int) columnKind {
	kind, seen := colString, false
	for _, row := range rows {
		var k columnKind
		switch row[j].(type) {
		case nil:
			continue
		case bool:
			k = colBool
		case int32:
			k = colInt32
		case int64:
			k = colInt64
		case float64:
			k = colDouble
		default:
			return colString
		}
		if !seen {
			kind, seen = k, true
			continue
		}
		kind = widen(kind, k)
		if kind == colString {
			return colString
		}
	}
	return kind
}

// widen returns the narrowest kind able to hold both a and b.
func widen(a, b columnKind) columnKind {
	if a == b {
		return a
	}
	if a == colBool || b == colBool {
		return colString
	}
	if a == colDouble || b == colDouble {
		return colDouble
	}
	return colInt64
}

func leafFor(k columnKind) parquet.Node {
	switch k {
	case colBool:
		return parquet.Leaf(parquet.BooleanType)
	case colInt32:
		return parquet.Leaf(parquet.Int32Type)
	case colInt64:
		return parquet.Leaf(parquet.Int64Type)
	case colDouble:
		return parquet.Leaf(parquet.DoubleType)
	default:
		return parquet.String()
	}
}

func definitionLevel(v any) int {
	if v == nil {
		return 0
	}
	return 1
}

func valueFor(k columnKind, v any) parquet.Value {
	if v == nil {
		return parquet.NullValue()
	}
	switch k {
	case colBool:
		b, _ := v.(bool)
		return parquet.BooleanValue(b)
	case colInt32:
		i, _ := frame.Int(v)
		return parquet.Int32Value(int32(i))
	case colInt64:
		i, _ := frame.Int(v)
		return parquet.Int64Value(i)
	case colDouble:
		f, _ := frame.Float(v)
		return parquet.DoubleValue(f)
	default:
		return parquet.ByteArrayValue([]byte(frame.String(v)))
	}
}

func cellOf(v parquet.Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return v.Int32()
	case parquet.Int64:
		return v.Int64()
	case parquet.Float:
		return float64(v.Float())
	case parquet.Double:
		return v.Double()
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return v.String()
	}
}
