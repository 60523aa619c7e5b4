package variant

import "variantsudoku/internal/core"

// NoConsecutiveRatio forbids orthogonally adjacent cells from holding
// consecutive values (differing by 1) or values in a 1:2 ratio (one double
// the other) - the combined rule spec.md §8 scenario 7 names. Unlike
// AntiKing/AntiKnight the forbidden relation is between two different
// values, so the weak link connects (A,v) to (B,w) for every v,w pair that
// violates the rule, not just same-value pairs.
type NoConsecutiveRatio struct {
	core.BaseConstraint
}

func (NoConsecutiveRatio) Name() string         { return "no-consecutive-ratio" }
func (NoConsecutiveRatio) SpecificName() string { return "no-consecutive-ratio" }

func (NoConsecutiveRatio) WeakLinks(n int) [][2]core.CandidateID {
	var links [][2]core.CandidateID
	for _, pair := range neighborPairs(n, orthogonalOffsets) {
		for v := 1; v <= n; v++ {
			for w := 1; w <= n; w++ {
				if !violatesConsecutiveOrRatio(v, w) {
					continue
				}
				links = append(links, [2]core.CandidateID{
					core.NewCandidateID(n, pair[0], v),
					core.NewCandidateID(n, pair[1], w),
				})
			}
		}
	}
	return links
}

func violatesConsecutiveOrRatio(v, w int) bool {
	diff := v - w
	if diff == 1 || diff == -1 {
		return true
	}
	return w == 2*v || v == 2*w
}
