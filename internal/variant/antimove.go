package variant

import "variantsudoku/internal/core"

// AntiKing forbids any two cells a chess king's move apart from holding the
// same value - a purely structural rule, so its entire contribution is a
// static same-value weak link between every king-adjacent cell pair.
type AntiKing struct {
	core.BaseConstraint
}

func (AntiKing) Name() string         { return "anti-king" }
func (AntiKing) SpecificName() string { return "anti-king" }

func (AntiKing) WeakLinks(n int) [][2]core.CandidateID {
	var links [][2]core.CandidateID
	for _, pair := range neighborPairs(n, kingOffsets) {
		for v := 1; v <= n; v++ {
			links = append(links, [2]core.CandidateID{
				core.NewCandidateID(n, pair[0], v),
				core.NewCandidateID(n, pair[1], v),
			})
		}
	}
	return links
}

// AntiKnight forbids any two cells a chess knight's move apart from holding
// the same value.
type AntiKnight struct {
	core.BaseConstraint
}

func (AntiKnight) Name() string         { return "anti-knight" }
func (AntiKnight) SpecificName() string { return "anti-knight" }

func (AntiKnight) WeakLinks(n int) [][2]core.CandidateID {
	var links [][2]core.CandidateID
	for _, pair := range neighborPairs(n, knightOffsets) {
		for v := 1; v <= n; v++ {
			links = append(links, [2]core.CandidateID{
				core.NewCandidateID(n, pair[0], v),
				core.NewCandidateID(n, pair[1], v),
			})
		}
	}
	return links
}
