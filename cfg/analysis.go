package cfg

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/earleybird"
)

// PreprocessedGrammar is an immutable bundle of a grammar snapshot plus
// tables derived from it:
//
// ▪ the closures of nullable and of nulling symbols,
//
// ▪ a prediction index from non-terminals to the dotted start positions
// of their rules,
//
// ▪ a postdot index from symbols to the dotted positions expecting them,
//
// ▪ per (rule, dot position) the Leo transition symbol, if the rule
// suffix at that position is right-recursion reducible.
//
// A preprocessed grammar is computed exactly once per grammar snapshot
// and never mutated afterwards. It is safe to share between any number of
// recognizers, each advancing independently, possibly from concurrent
// goroutines.
type PreprocessedGrammar struct {
	g           *Grammar
	nullable    *treeset.Set                  // non-terminals which may derive ε
	nulling     *treeset.Set                  // non-terminals which derive only ε
	predictions map[earleybird.Symbol][]Item  // LHS symbol ⇒ dot-0 items of its rules
	postdot     map[earleybird.Symbol][]Item  // symbol ⇒ dotted positions expecting it
	leo         *leoMatrix
	fingerprint string
}

// We need this for gods containers holding symbols. It sorts symbols by id.
func symbolComparator(a, b interface{}) int {
	s1 := a.(earleybird.Symbol)
	s2 := b.(earleybird.Symbol)
	return utils.Int16Comparator(int16(s1), int16(s2))
}

// Preprocess freezes a snapshot of a grammar and derives the recognizer
// tables from it. The input grammar is not consumed: it may continue to
// grow, without effect on the returned preprocessed grammar.
//
// Preprocessing is total over structurally valid grammars: cyclic,
// ambiguous, (mutually) left- or right-recursive productions and symbols
// which never appear on any RHS are all handled, never rejected. The only
// hard error is a grammar without a legal start symbol.
func Preprocess(g *Grammar) (*PreprocessedGrammar, error) {
	if g == nil {
		return nil, fmt.Errorf("no grammar to preprocess")
	}
	if !g.StartSymbol().IsValid() {
		return nil, fmt.Errorf("grammar has no legal start symbol")
	}
	snapshot := g.Copy()
	pg := &PreprocessedGrammar{
		g:           snapshot,
		nullable:    nullableClosure(snapshot),
		predictions: make(map[earleybird.Symbol][]Item),
		postdot:     make(map[earleybird.Symbol][]Item),
	}
	for _, r := range snapshot.rules {
		pg.predictions[r.LHS] = append(pg.predictions[r.LHS], StartItem(r, 0))
		item := StartItem(r, 0)
		for sym := item.PeekSymbol(); sym != earleybird.NoSymbol; sym = item.PeekSymbol() {
			pg.postdot[sym] = append(pg.postdot[sym], item)
			item = item.Advance()
		}
	}
	pg.nulling = nullingClosure(snapshot, pg.nullable)
	pg.leo = leoEligibility(snapshot, pg.nulling)
	pg.fingerprint = fingerprint(snapshot)
	tracer().Debugf("preprocessed grammar of %d rules, %d nullable symbols",
		snapshot.Size(), pg.nullable.Size())
	return pg, nil
}

// nullableClosure computes the least fixed point of "a non-terminal is
// nullable if some rule with that LHS has an RHS in which every symbol is
// nullable". Epsilon rules are the base case. A work list holds the rules
// not yet known to be epsilon-derivable; every pass over it can only grow
// the nullable set, so the iteration terminates after at most |rules|
// passes.
func nullableClosure(g *Grammar) *treeset.Set {
	nullable := treeset.NewWith(symbolComparator)
	pending := arraylist.New()
	for _, r := range g.rules {
		pending.Add(r)
	}
	for changed := true; changed; {
		changed = false
		next := arraylist.New()
		it := pending.Iterator()
		for it.Next() {
			r := it.Value().(*Rule)
			if nullable.Contains(r.LHS) {
				continue // a sibling rule already proved the LHS nullable
			}
			if allNullable(r.rhs, nullable) {
				nullable.Add(r.LHS)
				changed = true
			} else {
				next.Add(r)
			}
		}
		pending = next
	}
	return nullable
}

func allNullable(syms []earleybird.Symbol, nullable *treeset.Set) bool {
	for _, sym := range syms {
		if !nullable.Contains(sym) {
			return false
		}
	}
	return true
}

// nullingClosure narrows the nullable set down to the symbols which derive
// nothing but the empty string. Starting from the terminals, the fixed
// point collects every symbol able to produce a non-empty string: a
// non-terminal produces one as soon as any of its rules contains a symbol
// which does. A nullable symbol outside that collection is nulling.
func nullingClosure(g *Grammar, nullable *treeset.Set) *treeset.Set {
	lhs := treeset.NewWith(symbolComparator)
	for _, r := range g.rules {
		lhs.Add(r.LHS)
	}
	nonEmpty := treeset.NewWith(symbolComparator) // symbols deriving a non-empty string
	for _, r := range g.rules {
		for _, sym := range r.rhs {
			if !lhs.Contains(sym) { // terminals derive themselves
				nonEmpty.Add(sym)
			}
		}
	}
	for changed := true; changed; {
		changed = false
		for _, r := range g.rules {
			if nonEmpty.Contains(r.LHS) {
				continue
			}
			for _, sym := range r.rhs {
				if nonEmpty.Contains(sym) {
					nonEmpty.Add(r.LHS)
					changed = true
					break
				}
			}
		}
	}
	nulling := treeset.NewWith(symbolComparator)
	it := nullable.Iterator()
	for it.Next() {
		sym := it.Value().(earleybird.Symbol)
		if !nonEmpty.Contains(sym) {
			nulling.Add(sym)
		}
	}
	return nulling
}

// leoEligibility determines, per (rule, dot position), whether the rule
// suffix starting at the dot is right-recursion reducible: the postdot
// symbol is effectively the last of the rule, i.e. every symbol after it
// is nulling. Advancing such an item over its postdot symbol completes
// the rule, which is what makes it a link of a completion chain. The
// table stores the postdot symbol (the Leo transition symbol) for
// eligible positions; the recognizer consults it per completion to decide
// whether a Leo item may stand in for a chain.
//
// Merely nullable tail symbols do not qualify: they may also derive
// non-empty input, for which the chain's intermediate items must stay
// around as prediction sources.
func leoEligibility(g *Grammar, nulling *treeset.Set) *leoMatrix {
	cols := g.maxRHSLen()
	if cols == 0 {
		cols = 1
	}
	m := newLeoMatrix(g.Size(), cols)
	for _, r := range g.rules {
		tailNulling := true // is rhs[d+1:] nulling throughout?
		for d := r.Len() - 1; d >= 0; d-- {
			if tailNulling {
				m.set(r.Serial, d, r.rhs[d])
			}
			tailNulling = tailNulling && nulling.Contains(r.rhs[d])
		}
	}
	return m
}

// fingerprint hashes the rules of a grammar snapshot. Two preprocessed
// grammars with the same fingerprint behave identically.
func fingerprint(g *Grammar) string {
	view := struct {
		Start earleybird.Symbol
		LHS   []earleybird.Symbol
		RHS   [][]earleybird.Symbol
	}{Start: g.start}
	for _, r := range g.rules {
		view.LHS = append(view.LHS, r.LHS)
		view.RHS = append(view.RHS, r.rhs)
	}
	return fmt.Sprintf("%x", structhash.Sha1(view, 1))
}

// --- Read access ------------------------------------------------------

// Grammar returns a copy of the grammar snapshot underlying the
// preprocessed grammar.
func (pg *PreprocessedGrammar) Grammar() *Grammar {
	return pg.g.Copy()
}

// StartSymbol returns the start symbol of the underlying grammar.
func (pg *PreprocessedGrammar) StartSymbol() earleybird.Symbol {
	return pg.g.StartSymbol()
}

// Size returns the number of rules of the underlying grammar.
func (pg *PreprocessedGrammar) Size() int {
	return pg.g.Size()
}

// Rule returns rule number no of the underlying grammar snapshot.
func (pg *PreprocessedGrammar) Rule(no int) *Rule {
	return pg.g.Rule(no)
}

// IsNullable is true if sym can derive the empty symbol sequence through
// zero or more productions.
func (pg *PreprocessedGrammar) IsNullable(sym earleybird.Symbol) bool {
	return pg.nullable.Contains(sym)
}

// IsNulling is true if sym derives the empty symbol sequence and nothing
// else.
func (pg *PreprocessedGrammar) IsNulling(sym earleybird.Symbol) bool {
	return pg.nulling.Contains(sym)
}

// IsNonTerminal is true if sym appears as the LHS of at least one rule.
func (pg *PreprocessedGrammar) IsNonTerminal(sym earleybird.Symbol) bool {
	return len(pg.predictions[sym]) > 0
}

// PredictionsFor returns, for a non-terminal, the dot-0 items of all rules
// with that LHS. For terminals the result is empty. Callers must not alter
// the returned slice.
func (pg *PreprocessedGrammar) PredictionsFor(sym earleybird.Symbol) []Item {
	return pg.predictions[sym]
}

// Postdot returns the dotted rule positions at which sym is expected next.
// Callers must not alter the returned slice.
func (pg *PreprocessedGrammar) Postdot(sym earleybird.Symbol) []Item {
	return pg.postdot[sym]
}

// LeoTransition returns the Leo transition symbol for an item, or NoSymbol
// if the item's rule suffix is not right-recursion reducible.
func (pg *PreprocessedGrammar) LeoTransition(i Item) earleybird.Symbol {
	if i.IsNull() {
		return earleybird.NoSymbol
	}
	return pg.leo.at(i.rule.Serial, i.dot)
}

// Fingerprint identifies the grammar snapshot underlying this
// preprocessed grammar. Preprocessing equal grammars yields equal
// fingerprints.
func (pg *PreprocessedGrammar) Fingerprint() string {
	return pg.fingerprint
}

// Copy duplicates the preprocessed grammar. Since preprocessed grammars
// are immutable, the duplicate shares the derived tables; copying is
// cheap.
func (pg *PreprocessedGrammar) Copy() *PreprocessedGrammar {
	c := *pg
	return &c
}
