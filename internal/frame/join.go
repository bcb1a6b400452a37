package frame

import (
	"fmt"
	"strings"
)

// Join inner-joins frames left to right on the key columns. Non-key columns of a right
// frame that already exist on the left are dropped, keeping the left value.
func Join(frames []Frame, on ...string) (Frame, error) {
	if len(frames) == 0 {
		return Frame{}, nil
	}
	if len(on) == 0 {
		return Frame{}, fmt.Errorf("frame: join requires at least one key column")
	}
	out := frames[0].clone()
	for i, right := range frames[1:] {
		joined, err := join2(out, right, on)
		if err != nil {
			return Frame{}, fmt.Errorf("frame: join %d: %w", i+1, err)
		}
		out = joined
	}
	return out, nil
}

func join2(left, right Frame, on []string) (Frame, error) {
	leftKeys, err := keyIndexes(left, on)
	if err != nil {
		return Frame{}, fmt.Errorf("left: %w", err)
	}
	rightKeys, err := keyIndexes(right, on)
	if err != nil {
		return Frame{}, fmt.Errorf("right: %w", err)
	}

	var extra []int
	columns := append([]string(nil), left.Columns...)
	for j, c := range right.Columns {
		if left.Index(c) >= 0 {
			continue
		}
		extra = append(extra, j)
		columns = append(columns, c)
	}

	index := make(map[string][]int, len(right.Rows))
	for j, row := range right.Rows {
		k := rowKey(row, rightKeys)
		index[k] = append(index[k], j)
	}

	var rows [][]any
	for _, lrow := range left.Rows {
		for _, j := range index[rowKey(lrow, leftKeys)] {
			row := make([]any, 0, len(columns))
			row = append(row, lrow...)
			for _, e := range extra {
				row = append(row, right.Rows[j][e])
			}
			rows = append(rows, row)
		}
	}
	return Frame{Columns: columns, Rows: rows}, nil
}

func keyIndexes(f Frame, on []string) ([]int, error) {
	idx := make([]int, len(on))
	for i, k := range on {
		idx[i] = f.Index(k)
		if idx[i] < 0 {
			return nil, fmt.Errorf("missing key column %q", k)
		}
	}
	return idx, nil
}

// rowKey renders key cells so that int32(5), int64(5) and float64(5) compare equal.
func rowKey(row []any, idx []int) string {
	parts := make([]string, len(idx))
	for i, j := range idx {
		parts[i] = keyString(row[j])
	}
	return strings.Join(parts, "\x1f")
}

func keyString(v any) string {
	switch x := v.(type) {
	case nil:
		return "\x00"
	case string:
		return "s:" + x
	case int32:
		return fmt.Sprintf("n:%d", x)
	case int64:
		return fmt.Sprintf("n:%d", x)
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("n:%d", int64(x))
		}
		return fmt.Sprintf("n:%g", x)
	default:
		return fmt.Sprintf("%T:%v", v, v)
	}
}
