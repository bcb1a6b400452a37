package frame

import (
	"fmt"
	"math"
)

// Concat stacks frames vertically. Columns are the union in first-seen order; cells
// missing from a frame are nil.
func Concat(frames ...Frame) Frame {
	var columns []string
	seen := make(map[string]int)
	for _, f := range frames {
		for _, c := range f.Columns {
			if _, ok := seen[c]; !ok {
				seen[c] = len(columns)
				columns = append(columns, c)
			}
		}
	}
	var rows [][]any
	for _, f := range frames {
		for _, row := range f.Rows {
			out := make([]any, len(columns))
			for j, c := range f.Columns {
				out[seen[c]] = row[j]
			}
			rows = append(rows, out)
		}
	}
	return Frame{Columns: columns, Rows: rows}
}

// DropDuplicates removes rows sharing the same key cells, keeping the first occurrence or,
// with keepLast, the final one. Kept rows stay in their original positions.
func (f Frame) DropDuplicates(keys []string, keepLast bool) (Frame, error) {
	idx, err := keyIndexes(f, keys)
	if err != nil {
		return Frame{}, fmt.Errorf("frame: drop duplicates: %w", err)
	}
	keep := make(map[string]int, len(f.Rows))
	for i, row := range f.Rows {
		k := rowKey(row, idx)
		if _, ok := keep[k]; !ok || keepLast {
			keep[k] = i
		}
	}
	rows := make([][]any, 0, len(keep))
	for i, row := range f.Rows {
		if keep[rowKey(row, idx)] == i {
			rows = append(rows, append([]any(nil), row...))
		}
	}
	return Frame{Columns: append([]string(nil), f.Columns...), Rows: rows}, nil
}

// DowncastInts converts every integer column whose values all fit in int32 to int32,
// including columns that mix int32 and int64. JavaScript consumers otherwise see bigints.
func (f Frame) DowncastInts() Frame {
	out := f.clone()
	for j := range out.Columns {
		if !int64Column(out.Rows, j) {
			continue
		}
		for _, row := range out.Rows {
			if v, ok := row[j].(int64); ok {
				row[j] = int32(v)
			}
		}
	}
	return out
}

func int64Column(rows [][]any, j int) bool {
	found := false
	for _, row := range rows {
		switch v := row[j].(type) {
		case nil:
		case int64:
			if v < math.MinInt32 || v > math.MaxInt32 {
				return false
			}
			found = true
		case int32:
			found = true
		default:
			return false
		}
	}
	return found
}
