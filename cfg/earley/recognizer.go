package earley

import (
	"fmt"

	"github.com/npillmayer/earleybird"
	"github.com/npillmayer/earleybird/cfg"
)

// Recognizer is the stateful recognition engine: it owns a chart of
// Earley sets, one per earleme, and advances through the
// predict/scan/complete cycle as symbols are discovered and earlemes are
// closed.
//
// A recognizer is bound to one preprocessed grammar, whose read-only
// tables it shares with any number of sibling recognizers. The chart is
// exclusively owned: a single recognizer must not be driven from more
// than one ordering context at once.
type Recognizer struct {
	pg          *cfg.PreprocessedGrammar
	chart       []*earleySet // closed sets, chart[k] belongs to earleme k
	pending     *earleySet   // collects scans until the next FinishEarleme
	current     earleybird.Earleme
	initialized bool
}

// NewRecognizer creates a recognizer for a preprocessed grammar. It has
// to be initialized before any discovery.
func NewRecognizer(pg *cfg.PreprocessedGrammar) *Recognizer {
	if pg == nil {
		return nil
	}
	return &Recognizer{pg: pg}
}

// Initialize seeds earleme 0: every rule of the grammar's start symbol is
// predicted with the dot at position 0 and origin 0, and the
// predictor/completer closure is run until it stabilizes. Initialize may
// be called again to restart recognition from scratch.
func (r *Recognizer) Initialize() {
	r.chart = []*earleySet{newEarleySet()}
	r.pending = newEarleySet()
	r.current = 0
	r.initialized = true
	S := r.chart[0]
	start := r.pg.StartSymbol()
	r.predict(S, 0, start)
	r.closure(S, 0)
	r.leoPass(S, 0)
	tracer().Debugf("initialized recognizer, %d items at earleme 0", S.items.Size())
}

// Discover scans a symbol at an input position: every item of the current
// earleme expecting the symbol next is advanced into the upcoming
// earleme. Discover may be called more than once per earleme, to admit
// ambiguous tokenizations; all resulting items coexist.
//
// position guards against misordered calls: it must equal the
// recognizer's current earleme, otherwise Discover reports a sequencing
// error and the chart is unchanged.
func (r *Recognizer) Discover(sym earleybird.Symbol, position earleybird.Earleme) error {
	if !r.initialized {
		return fmt.Errorf("recognizer not initialized")
	}
	if position != r.current {
		return fmt.Errorf("discovery at position %d, but recognizer is at earleme %d",
			position, r.current)
	}
	S := r.chart[r.current]
	if len(r.pg.Postdot(sym)) == 0 {
		tracer().Debugf("symbol %v does not occur in any rule", sym)
		return nil
	}
	for _, item := range S.postdot[sym] {
		r.pending.add(r.pg, item.Advance())
	}
	return nil
}

// FinishEarleme closes the earleme currently being built, i.e. the one
// populated by prior Discover calls, running predictor and completer over
// it to a fixed point and memoizing right-recursive completion chains as
// Leo items. Afterwards the recognizer's earleme counter has advanced and
// a fresh earleme accepts further discoveries.
//
// The return value signals whether the closed earleme is still alive: a
// dead earleme holds neither items nor Leo memos, meaning no
// continuation of the input can ever be recognized. Callers should stop
// supplying symbols and report failure at the current position.
//
// FinishEarleme panics when called on an uninitialized recognizer; that
// is a contract violation of the caller, not a recognition failure.
func (r *Recognizer) FinishEarleme() bool {
	if !r.initialized {
		panic("earley: FinishEarleme on uninitialized recognizer")
	}
	S := r.pending
	r.pending = newEarleySet()
	r.current++
	r.chart = append(r.chart, S)
	r.closure(S, r.current)
	r.leoPass(S, r.current)
	dumpSet(S, r.current)
	return !S.empty()
}

// HasCompleteParse is true iff the current earleme contains a fully
// matched rule of the grammar's start symbol with origin 0, i.e. the
// symbols discovered so far form a complete sentence of the grammar.
// It is a pure read and may be queried at any closed earleme.
func (r *Recognizer) HasCompleteParse() bool {
	if !r.initialized {
		return false
	}
	start := r.pg.StartSymbol()
	S := r.chart[r.current]
	for _, v := range S.items.Values() {
		item := v.(cfg.Item)
		if item.Completed() && item.Origin == 0 && item.Rule().LHS == start {
			return true
		}
	}
	return false
}

// Grammar returns the preprocessed grammar this recognizer is bound to.
func (r *Recognizer) Grammar() *cfg.PreprocessedGrammar {
	return r.pg
}

// Copy duplicates the recognizer: the chart is deep-copied, the
// preprocessed grammar is shared. Original and duplicate advance
// independently afterwards.
func (r *Recognizer) Copy() *Recognizer {
	c := &Recognizer{
		pg:          r.pg,
		current:     r.current,
		initialized: r.initialized,
	}
	if r.chart != nil {
		c.chart = make([]*earleySet, len(r.chart))
		for i, S := range r.chart {
			c.chart[i] = S.copy()
		}
	}
	if r.pending != nil {
		c.pending = r.pending.copy()
	}
	return c
}

// --- Predictor and completer ------------------------------------------

// closure runs predictor and completer over a set until no new item is
// added. The item set tolerates appends during iteration; every item,
// including appended ones, is visited exactly once, which makes the
// single pass a fixed point.
func (r *Recognizer) closure(S *earleySet, k earleybird.Earleme) {
	S.items.IterateOnce()
	for S.items.Next() {
		item := S.items.Item().(cfg.Item)
		if item.Completed() {
			r.complete(S, k, item)
			continue
		}
		if sym := item.PeekSymbol(); r.pg.IsNonTerminal(sym) {
			r.predict(S, k, sym)
		}
	}
}

// predict expands a non-terminal into fresh zero-progress items for all
// of its rules, with the current earleme as origin.
func (r *Recognizer) predict(S *earleySet, k earleybird.Earleme, sym earleybird.Symbol) {
	if S.predicted.contains(sym) {
		return
	}
	S.predicted = S.predicted.add(sym)
	for _, item := range r.pg.PredictionsFor(sym) {
		item.Origin = k
		S.add(r.pg, item)
	}
}

// complete advances the items of the origin earleme which expect the
// completed rule's LHS next. If the origin earleme memoized a Leo item
// for that symbol, only the topmost item of the completion chain is
// materialized.
//
// Completions spanning zero earlemes (origin == current) are skipped:
// their LHS is nullable, and every item expecting a nullable symbol was
// already advanced over it when it entered the set.
func (r *Recognizer) complete(S *earleySet, k earleybird.Earleme, item cfg.Item) {
	if item.Origin == k {
		return
	}
	lhs := item.Rule().LHS
	origin := r.chart[item.Origin]
	if lim, ok := origin.leo[lhs]; ok {
		S.add(r.pg, lim.Top)
		return
	}
	for _, waiting := range origin.postdot[lhs] {
		S.add(r.pg, waiting.Advance())
	}
}

// leoPass memoizes right-recursive completion chains for a freshly closed
// earleme. A Leo item for a postdot symbol is recorded iff exactly one
// item expects that symbol here and the symbol is the item's Leo
// transition symbol, i.e. everything behind it in the rule is nulling.
// The topmost item is inherited from the origin earleme's Leo item where
// one exists, collapsing the whole chain into a single record.
func (r *Recognizer) leoPass(S *earleySet, k earleybird.Earleme) {
	for sym, waiting := range S.postdot {
		if len(waiting) != 1 || !r.pg.IsNonTerminal(sym) {
			continue
		}
		item := waiting[0]
		if r.pg.LeoTransition(item) != sym {
			continue
		}
		top := item.Advance()
		if item.Origin < k {
			if lim, ok := r.chart[item.Origin].leo[item.Rule().LHS]; ok {
				top = lim.Top
			}
		}
		S.leo[sym] = leoItem{Symbol: sym, Top: top}
		tracer().Debugf("leo item at earleme %d: %v ⇒ %v", k, sym, top)
	}
}
