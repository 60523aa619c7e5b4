// Package cellgroup parses the compact cell-group DSL spec.md §6.3
// describes: semicolon-separated groups built from r<rows>c<cols>
// sub-expressions (rows/cols as comma-separated numbers or a-b ranges) and
// d<digits> numpad-direction extensions from the last added cell. This is
// a constraint-authoring convenience built on top of core's CellID, not
// used by the core solver itself - the teacher's closest analogue is the
// CellRef/row-col bookkeeping scattered through human/solver.go, collected
// here into one small, testable parser.
package cellgroup

import (
	"fmt"
	"strconv"
	"strings"

	"variantsudoku/internal/core"
)

// numpadDelta maps a numpad digit (1..9, 5 = no movement) to a (drow, dcol)
// offset, with 8 meaning "up" (decreasing row).
var numpadDelta = map[byte][2]int{
	'7': {-1, -1}, '8': {-1, 0}, '9': {-1, 1},
	'4': {0, -1}, '5': {0, 0}, '6': {0, 1},
	'1': {1, -1}, '2': {1, 0}, '3': {1, 1},
}

// Parse parses the DSL into a list of cell groups (one []CellID per
// semicolon-separated group) for a board of size n.
func Parse(n int, s string) ([][]core.CellID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("cell group expression is empty")
	}
	var groups [][]core.CellID
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty group in expression %q", s)
		}
		cells, err := parseGroup(n, part)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", part, err)
		}
		groups = append(groups, cells)
	}
	return groups, nil
}

// parseGroup parses one group: a concatenation of r<rows>c<cols> and
// d<digits> sub-expressions.
func parseGroup(n int, s string) ([]core.CellID, error) {
	var cells []core.CellID
	i := 0
	for i < len(s) {
		switch s[i] {
		case 'r':
			rows, next, err := parseNumberList(s, i+1)
			if err != nil {
				return nil, err
			}
			if next >= len(s) || s[next] != 'c' {
				return nil, fmt.Errorf("expected 'c' after row list at position %d", next)
			}
			cols, next2, err := parseNumberList(s, next+1)
			if err != nil {
				return nil, err
			}
			for _, r := range rows {
				for _, c := range cols {
					if r < 1 || r > n || c < 1 || c > n {
						return nil, fmt.Errorf("cell r%dc%d out of range for size %d", r, c, n)
					}
					cells = append(cells, core.CellAt(n, r-1, c-1))
				}
			}
			i = next2
		case 'd':
			if len(cells) == 0 {
				return nil, fmt.Errorf("'d' extension with no preceding cell")
			}
			j := i + 1
			for j < len(s) && s[j] >= '1' && s[j] <= '9' {
				j++
			}
			if j == i+1 {
				return nil, fmt.Errorf("'d' must be followed by at least one digit 1-9")
			}
			last := cells[len(cells)-1]
			row, col := last.Row(n), last.Col(n)
			for k := i + 1; k < j; k++ {
				delta, ok := numpadDelta[s[k]]
				if !ok {
					return nil, fmt.Errorf("invalid direction digit %q", s[k])
				}
				row, col = row+delta[0], col+delta[1]
				if row < 0 || row >= n || col < 0 || col >= n {
					return nil, fmt.Errorf("direction %q moves off the board", s[k])
				}
				cells = append(cells, core.CellAt(n, row, col))
			}
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", s[i], i)
		}
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("group produced no cells")
	}
	return cells, nil
}

// parseNumberList parses a comma-separated list of numbers or a-b ranges
// starting at position i, stopping at the first character that can't
// extend the list. Returns the expanded values and the position just past
// the list.
func parseNumberList(s string, i int) ([]int, int, error) {
	var values []int
	for {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return nil, 0, fmt.Errorf("expected a number at position %d", start)
		}
		lo, err := strconv.Atoi(s[start:i])
		if err != nil {
			return nil, 0, err
		}
		if i < len(s) && s[i] == '-' {
			i++
			start2 := i
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			if i == start2 {
				return nil, 0, fmt.Errorf("expected a number after '-' at position %d", start2)
			}
			hi, err := strconv.Atoi(s[start2:i])
			if err != nil {
				return nil, 0, err
			}
			if hi < lo {
				return nil, 0, fmt.Errorf("range %d-%d is descending", lo, hi)
			}
			for v := lo; v <= hi; v++ {
				values = append(values, v)
			}
		} else {
			values = append(values, lo)
		}
		if i < len(s) && s[i] == ',' {
			i++
			continue
		}
		break
	}
	return values, i, nil
}
