package earley

import (
	"github.com/npillmayer/earleybird"
	"github.com/npillmayer/earleybird/cfg"
	"github.com/npillmayer/earleybird/cfg/iteratable"
)

// earleySet holds all items valid at one input position: ordinary Earley
// items plus at most one Leo item per postdot symbol. The item set only
// ever grows within an earleme; items are deduplicated by their
// (rule, dot, origin) triple, with no meaning attached to their order.
type earleySet struct {
	items     *iteratable.Set                    // items in discovery order, worklist for the closure
	index     map[cfg.Item]struct{}              // dedup guard for items
	postdot   map[earleybird.Symbol][]cfg.Item   // symbol ⇒ items expecting it next
	leo       map[earleybird.Symbol]leoItem      // symbol ⇒ memoized completion chain
	predicted symset                             // non-terminals already expanded here
}

// leoItem memoizes the transitive completion of a right-recursive chain:
// whenever its symbol is completed with this earleme as origin, only the
// topmost item of the chain is materialized, instead of the whole chain.
type leoItem struct {
	Symbol earleybird.Symbol // the postdot symbol this item stands in for
	Top    cfg.Item          // topmost item of the summarized chain
}

func newEarleySet() *earleySet {
	return &earleySet{
		items:   iteratable.NewSet(0),
		index:   make(map[cfg.Item]struct{}),
		postdot: make(map[earleybird.Symbol][]cfg.Item),
		leo:     make(map[earleybird.Symbol]leoItem),
	}
}

// add puts an item into the set, if its triple is not already present.
// Items with a nullable postdot symbol are advanced over it eagerly
// (Aycock/Horspool style); this stands in for the empty-span completions
// which the completer does not perform.
func (s *earleySet) add(pg *cfg.PreprocessedGrammar, item cfg.Item) bool {
	if item.IsNull() {
		return false
	}
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = exists
	s.items.Add(item)
	if sym := item.PeekSymbol(); sym != earleybird.NoSymbol {
		s.postdot[sym] = append(s.postdot[sym], item)
		if pg.IsNullable(sym) {
			s.add(pg, item.Advance())
		}
	}
	return true
}

// empty is true if the set holds neither items nor Leo items.
func (s *earleySet) empty() bool {
	return s.items.Empty() && len(s.leo) == 0
}

func (s *earleySet) copy() *earleySet {
	c := &earleySet{
		items:     s.items.Copy(),
		index:     make(map[cfg.Item]struct{}, len(s.index)),
		postdot:   make(map[earleybird.Symbol][]cfg.Item, len(s.postdot)),
		leo:       make(map[earleybird.Symbol]leoItem, len(s.leo)),
		predicted: s.predicted.copy(),
	}
	for item := range s.index {
		c.index[item] = exists
	}
	for sym, waiting := range s.postdot {
		c.postdot[sym] = append([]cfg.Item(nil), waiting...)
	}
	for sym, lim := range s.leo {
		c.leo[sym] = lim
	}
	return c
}
