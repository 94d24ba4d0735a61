package cfg

import (
	"github.com/npillmayer/earleybird"
	"github.com/npillmayer/earleybird/cfg/sparse"
)

// leoMatrix is the Leo-eligibility table of a preprocessed grammar. Rows
// are rule numbers, columns are dot positions; a cell holds the Leo
// transition symbol of an eligible (rule, dot) pair. Most cells stay
// empty, hence the sparse backing.
type leoMatrix struct {
	m *sparse.IntMatrix
}

func newLeoMatrix(rules, positions int) *leoMatrix {
	return &leoMatrix{
		m: sparse.NewIntMatrix(rules, positions, sparse.DefaultNullValue),
	}
}

func (lm *leoMatrix) set(rule, dot int, transition earleybird.Symbol) {
	lm.m.Set(rule, dot, int32(transition))
}

// at returns the transition symbol at (rule, dot), or NoSymbol for an
// ineligible position.
func (lm *leoMatrix) at(rule, dot int) earleybird.Symbol {
	v := lm.m.Value(rule, dot)
	if v == lm.m.NullValue() {
		return earleybird.NoSymbol
	}
	return earleybird.Symbol(v)
}
