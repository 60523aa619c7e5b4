// Package givens decodes and encodes the compact givens string spec.md §6.2
// describes: a fixed-width, row-major encoding of a puzzle's starting
// position. This mirrors the teacher's puzzle string handling
// (internal/transport/http/routes.go's validatePuzzleString), generalized
// from a hardcoded 81-character, single-digit format to arbitrary N.
package givens

import (
	"fmt"
	"strconv"
)

// Width returns the fixed field width used to encode one cell's value for a
// board of size n: one digit for n<=9, enough base-10 digits to hold n for
// n>9.
func Width(n int) int {
	if n <= 9 {
		return 1
	}
	w := 0
	for d := n; d > 0; d /= 10 {
		w++
	}
	return w
}

// Decode parses a givens string into one value per cell (0 = empty).
// Characters decode as base-10 integers; a field of all zeros, or
// containing a non-digit, denotes an empty cell. Decode rejects malformed
// lengths.
func Decode(n int, s string) ([]int, error) {
	width := Width(n)
	total := n * n
	if len(s) != total*width {
		return nil, fmt.Errorf("givens string must have length %d for size %d, got %d", total*width, n, len(s))
	}

	out := make([]int, total)
	for i := 0; i < total; i++ {
		field := s[i*width : (i+1)*width]
		digits := true
		for j := 0; j < len(field); j++ {
			if field[j] < '0' || field[j] > '9' {
				digits = false
				break
			}
		}
		if !digits {
			out[i] = 0
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			out[i] = 0
			continue
		}
		if v < 0 || v > n {
			return nil, fmt.Errorf("cell %d has out-of-range value %d for size %d", i, v, n)
		}
		out[i] = v
	}
	return out, nil
}

// Encode renders values (0 = empty) back into the fixed-width row-major
// givens string for a board of size n.
func Encode(n int, values []int) (string, error) {
	total := n * n
	if len(values) != total {
		return "", fmt.Errorf("expected %d values for size %d, got %d", total, n, len(values))
	}
	width := Width(n)
	buf := make([]byte, 0, total*width)
	for _, v := range values {
		if v < 0 || v > n {
			return "", fmt.Errorf("value %d out of range [0,%d]", v, n)
		}
		field := strconv.Itoa(v)
		for len(field) < width {
			field = "0" + field
		}
		buf = append(buf, field...)
	}
	return string(buf), nil
}
