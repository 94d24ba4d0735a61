package earley

import (
	"github.com/npillmayer/earleybird"
)

// symset tracks the symbols already predicted within one earleme.
// Prediction adds no new information once the rules of a non-terminal are
// in the set, so deduplicating on the symbol level is enough, and it is
// what guarantees termination of the predictor.
type symset map[earleybird.Symbol]struct{}

var exists = struct{}{}

func (set symset) add(sym earleybird.Symbol) symset {
	if set == nil {
		set = symset{}
	}
	set[sym] = exists
	return set
}

func (set symset) contains(sym earleybird.Symbol) bool {
	if set == nil {
		return false
	}
	_, ok := set[sym]
	return ok
}

func (set symset) copy() symset {
	if set == nil {
		return nil
	}
	c := symset{}
	for sym := range set {
		c[sym] = exists
	}
	return c
}
