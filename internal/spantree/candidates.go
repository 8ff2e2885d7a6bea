package spantree

import "github.com/vk/cubeplan/internal/config"

// directParentCandidates returns the minimal super-views of target under
// the oracle's order: exactly the transitive-reduction edge set from target
// to the views that can derive it. An empty result means target is maximal.
//
// ordered must be the catalog in ascending (dimension count, id) order;
// that fixed order makes the result deterministic and is what lets the
// pruning rule below work with a single pass: by the time a more general
// ancestor is visited, every more direct candidate it subsumes has already
// been accepted.
func directParentCandidates(target *config.View, ordered []*config.View, oracle DerivationOracle) []*config.View {
	var candidates []*config.View
	for _, c := range ordered {
		if c.ID == target.ID {
			continue
		}
		if !oracle.Derives(c, target) {
			continue
		}

		// c is redundant if it also derives an accepted candidate: that
		// candidate is strictly more direct. ABC and ABD both stand for
		// AB, while ABCD is skipped once ABC is in.
		redundant := false
		for _, accepted := range candidates {
			if oracle.Derives(c, accepted) {
				redundant = true
				break
			}
		}
		if !redundant {
			candidates = append(candidates, c)
		}
	}
	return candidates
}
