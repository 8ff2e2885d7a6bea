// Package rollup provides the default derivation oracle: one view can be
// computed from another by aggregation when the candidate's dimension and
// measure sets both cover the target's.
package rollup

import "github.com/vk/cubeplan/internal/config"

// Oracle implements spantree.DerivationOracle over plain dimension and
// measure name sets. The relation it induces is a strict partial order:
// irreflexive because equal views share an ID, antisymmetric and transitive
// because set inclusion is.
type Oracle struct{}

// New creates the default oracle.
func New() *Oracle {
	return &Oracle{}
}

// Derives reports whether candidate's data is sufficient to compute target
// by rolling up: candidate must carry every dimension and every measure of
// target. A view never derives itself.
func (o *Oracle) Derives(candidate, target *config.View) bool {
	if candidate.ID == target.ID {
		return false
	}
	return covers(candidate.Dimensions, target.Dimensions) &&
		covers(candidate.Measures, target.Measures)
}

// covers reports whether every element of want appears in have.
func covers(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[h] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
