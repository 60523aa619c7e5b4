package core

import "math/bits"

// ============================================================================
// LinkSet - bitset over candidates
// ============================================================================
//
// LinkSet is a bitset keyed by CandidateID, used both as one row of the
// weak-link table (the set of candidates B such that A=true forces B=false)
// and as scratch space while intersecting several such rows (simple cell
// forcing, §4.6). Space and operations have to stay tight since a classic
// 9x9 board already has 729 candidates and N=31 pushes that to 29791 -
// the same tightness concern the teacher's Candidates uint16 bitmask has
// at a much smaller scale (human/candidates.go).
//
// ============================================================================

const wordBits = 64

// LinkSet is a fixed-size bitset over candidate indices [0, size).
type LinkSet struct {
	words []uint64
	size  int
}

// NewLinkSet allocates an empty bitset large enough for `size` candidates.
func NewLinkSet(size int) LinkSet {
	return LinkSet{words: make([]uint64, (size+wordBits-1)/wordBits), size: size}
}

// Size returns the number of candidate slots the set was built for.
func (s LinkSet) Size() int {
	return s.size
}

// Set adds candidate id to the set.
func (s LinkSet) Set(id CandidateID) {
	w, b := int(id)/wordBits, uint(int(id)%wordBits)
	s.words[w] |= 1 << b
}

// Clear removes candidate id from the set.
func (s LinkSet) Clear(id CandidateID) {
	w, b := int(id)/wordBits, uint(int(id)%wordBits)
	s.words[w] &^= 1 << b
}

// Test reports whether candidate id is in the set.
func (s LinkSet) Test(id CandidateID) bool {
	w, b := int(id)/wordBits, uint(int(id)%wordBits)
	return s.words[w]&(1<<b) != 0
}

// IsEmpty reports whether the set has no bits set.
func (s LinkSet) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set bits.
func (s LinkSet) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// UnionWith ORs other into s in place. Both sets must share the same size.
func (s LinkSet) UnionWith(other LinkSet) {
	for i := range s.words {
		s.words[i] |= other.words[i]
	}
}

// IntersectWith ANDs other into s in place. Both sets must share the same size.
func (s LinkSet) IntersectWith(other LinkSet) {
	for i := range s.words {
		s.words[i] &= other.words[i]
	}
}

// Clone returns an independent copy of s.
func (s LinkSet) Clone() LinkSet {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return LinkSet{words: words, size: s.size}
}

// ForEach calls fn for every set candidate id in ascending order.
func (s LinkSet) ForEach(fn func(CandidateID)) {
	for w, word := range s.words {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			fn(CandidateID(w*wordBits + b))
			word &= word - 1
		}
	}
}
