package core

// ============================================================================
// ValueMask - Per-Cell Candidate Set
// ============================================================================
//
// ValueMask is a compact set of the values {1..N} a cell may still hold,
// plus a "solved" flag marking that the cell has been committed and all
// consequences of the commitment have been applied.
//
// For N <= 31 everything fits in a single machine word: bits 1..31 hold
// the value set (bit v set means value v is a candidate) and bit 0 is
// reserved as the solved flag. This mirrors the teacher's Candidates
// bitmask (human/candidates.go) generalized from a fixed 9-value board
// to N <= 31.
//
// ============================================================================

// ValueMask is a bitset of candidate values plus a solved flag.
// Bit 0 is the solved flag; bits 1..31 correspond to values 1..31.
type ValueMask uint32

const solvedFlag ValueMask = 1

// maxMaskSize is the largest N a single-word ValueMask can represent.
const maxMaskSize = 31

// EmptyMask is the zero value: no candidates, not solved.
const EmptyMask ValueMask = 0

// NewValueMask builds a mask with exactly the given values set.
func NewValueMask(values ...int) ValueMask {
	var m ValueMask
	for _, v := range values {
		m = m.Set(v)
	}
	return m
}

// FullMask returns a mask with every value in {1..n} set.
func FullMask(n int) ValueMask {
	var m ValueMask
	for v := 1; v <= n; v++ {
		m = m.Set(v)
	}
	return m
}

// bit returns the bit position for value v (1-indexed, offset by the solved flag).
func bit(v int) ValueMask {
	return 1 << uint(v)
}

// Set returns a mask with value v added.
func (m ValueMask) Set(v int) ValueMask {
	if v < 1 || v > maxMaskSize {
		return m
	}
	return m | bit(v)
}

// Clear returns a mask with value v removed.
func (m ValueMask) Clear(v int) ValueMask {
	if v < 1 || v > maxMaskSize {
		return m
	}
	return m &^ bit(v)
}

// Has reports whether v is a candidate in m.
func (m ValueMask) Has(v int) bool {
	if v < 1 || v > maxMaskSize {
		return false
	}
	return m&bit(v) != 0
}

// Intersect returns the candidates present in both masks. The solved flag
// is not part of the value set and is dropped by set operations.
func (m ValueMask) Intersect(other ValueMask) ValueMask {
	return m.values() & other.values()
}

// Union returns the candidates present in either mask.
func (m ValueMask) Union(other ValueMask) ValueMask {
	return m.values() | other.values()
}

// Complement returns the candidates in {1..n} not present in m.
func (m ValueMask) Complement(n int) ValueMask {
	return FullMask(n) &^ m.values()
}

// Subtract returns the candidates in m that are not in other.
func (m ValueMask) Subtract(other ValueMask) ValueMask {
	return m.values() &^ other.values()
}

func (m ValueMask) values() ValueMask {
	return m &^ solvedFlag
}

// Count returns the number of candidate values set.
func (m ValueMask) Count() int {
	v := uint32(m.values())
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}

// IsEmpty reports whether no candidate values are set (solved flag ignored).
func (m ValueMask) IsEmpty() bool {
	return m.values() == 0
}

// IsSingleton reports whether exactly one candidate value is set.
func (m ValueMask) IsSingleton() bool {
	v := m.values()
	return v != 0 && v&(v-1) == 0
}

// Min returns the smallest candidate value and true, or (0, false) if empty.
func (m ValueMask) Min() (int, bool) {
	v := m.values()
	if v == 0 {
		return 0, false
	}
	for i := 1; i <= maxMaskSize; i++ {
		if v&bit(i) != 0 {
			return i, true
		}
	}
	return 0, false
}

// Max returns the largest candidate value and true, or (0, false) if empty.
func (m ValueMask) Max() (int, bool) {
	v := m.values()
	if v == 0 {
		return 0, false
	}
	for i := maxMaskSize; i >= 1; i-- {
		if v&bit(i) != 0 {
			return i, true
		}
	}
	return 0, false
}

// Only returns the single candidate value and true iff m is a singleton.
func (m ValueMask) Only() (int, bool) {
	if !m.IsSingleton() {
		return 0, false
	}
	return m.Min()
}

// Pick returns an arbitrary candidate value, using r to choose among the
// set bits uniformly. Used by the random-solution search.
func (m ValueMask) Pick(r Rand) (int, bool) {
	vals := m.Values()
	if len(vals) == 0 {
		return 0, false
	}
	return vals[r.Intn(len(vals))], true
}

// Values returns the candidate values in ascending order.
func (m ValueMask) Values() []int {
	var out []int
	v := m.values()
	for i := 1; i <= maxMaskSize && v != 0; i++ {
		if v&bit(i) != 0 {
			out = append(out, i)
			v &^= bit(i)
		}
	}
	return out
}

// Solved reports whether the solved flag is set.
func (m ValueMask) Solved() bool {
	return m&solvedFlag != 0
}

// MarkSolved returns m with the solved flag set.
func (m ValueMask) MarkSolved() ValueMask {
	return m | solvedFlag
}

// ClearSolved returns m with the solved flag cleared.
func (m ValueMask) ClearSolved() ValueMask {
	return m &^ solvedFlag
}

// String renders the candidate values as a comma-separated ascending list,
// e.g. "{1,4,9}".
func (m ValueMask) String() string {
	vals := m.Values()
	if len(vals) == 0 {
		return "{}"
	}
	out := make([]byte, 0, len(vals)*3+2)
	out = append(out, '{')
	for i, v := range vals {
		if i > 0 {
			out = append(out, ',')
		}
		out = appendInt(out, v)
	}
	out = append(out, '}')
	return string(out)
}

func appendInt(buf []byte, n int) []byte {
	if n == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for n > 0 {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
