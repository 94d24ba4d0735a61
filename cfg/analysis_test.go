package cfg

import (
	"testing"

	"github.com/npillmayer/earleybird"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// referenceNullable is a brute-force fixed point over a plain map,
// independent of the treeset-based closure under test.
func referenceNullable(g *Grammar) map[earleybird.Symbol]bool {
	nullable := make(map[earleybird.Symbol]bool)
	for {
		changed := false
		for _, r := range g.rules {
			if nullable[r.LHS] {
				continue
			}
			derivesEmpty := true
			for _, sym := range r.rhs {
				if !nullable[sym] {
					derivesEmpty = false
					break
				}
			}
			if derivesEmpty {
				nullable[r.LHS] = true
				changed = true
			}
		}
		if !changed {
			return nullable
		}
	}
}

func TestNullableClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	// S ::= A B a | A ::= B B | B ::= ε | B ::= b.  S is not nullable,
	// A and B are; a chain A ⇒ B B ⇒ ε needs two closure passes.
	var B earleybird.Symbol = 4
	g := NewGrammar(S, 4)
	g.AddRule(S, A, B, a)
	g.AddRule(A, B, B)
	g.AddRule(B)
	g.AddRule(B, b)
	pg, err := Preprocess(g)
	if err != nil {
		t.Error(err)
	}
	want := referenceNullable(g)
	for _, sym := range []earleybird.Symbol{S, A, B, a, b} {
		if pg.IsNullable(sym) != want[sym] {
			t.Errorf("Expected nullable(%v) = %v, got %v", sym, want[sym], pg.IsNullable(sym))
		}
	}
	if pg.IsNullable(S) || !pg.IsNullable(A) || !pg.IsNullable(B) {
		t.Errorf("Expected exactly {A, B} to be nullable")
	}
}

func TestPredictionIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	g := NewGrammar(S, 3)
	g.AddRule(S, A, a)
	g.AddRule(A, A, b)
	g.AddRule(A)
	pg, err := Preprocess(g)
	if err != nil {
		t.Error(err)
	}
	if !pg.IsNonTerminal(A) || pg.IsNonTerminal(a) {
		t.Errorf("Expected A to be a non-terminal and 'a' a terminal")
	}
	preds := pg.PredictionsFor(A)
	if len(preds) != 2 {
		t.Errorf("Expected 2 predictions for A, got %d", len(preds))
	}
	for _, item := range preds {
		if item.Dot() != 0 || item.Rule().LHS != A {
			t.Errorf("Expected prediction to be a dot-0 item of A, got %v", item)
		}
	}
	// A is expected right after the dot at (rule 0, dot 0) and (rule 1, dot 0)
	occ := pg.Postdot(A)
	if len(occ) != 2 {
		t.Errorf("Expected 2 postdot occurrences of A, got %d", len(occ))
	}
}

func TestLeoEligibility(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	// S ::= a S | a ;  B ::= A A ;  A ::= ε.  Dot 1 of rule 0 is
	// eligible (nothing follows the postdot S), dot 0 is not (the
	// non-nulling S follows 'a'); rule 2 is eligible everywhere, since A
	// is nulling.
	var B earleybird.Symbol = 4
	g := NewGrammar(S, 4)
	g.AddRule(S, a, S)
	g.AddRule(S, a)
	g.AddRule(B, A, A)
	g.AddRule(A)
	pg, err := Preprocess(g)
	if err != nil {
		t.Error(err)
	}
	r0 := pg.Rule(0)
	if sym := pg.LeoTransition(StartItem(r0, 0)); sym != earleybird.NoSymbol {
		t.Errorf("Expected (rule 0, dot 0) to be Leo-ineligible, transition is %v", sym)
	}
	if sym := pg.LeoTransition(StartItem(r0, 0).Advance()); sym != S {
		t.Errorf("Expected Leo transition S at (rule 0, dot 1), got %v", sym)
	}
	r2 := pg.Rule(2)
	if sym := pg.LeoTransition(StartItem(r2, 0)); sym != A {
		t.Errorf("Expected Leo transition A at (rule 2, dot 0), got %v", sym)
	}
	if sym := pg.LeoTransition(StartItem(r2, 0).Advance().Advance()); sym != earleybird.NoSymbol {
		t.Errorf("Expected no Leo transition at a completed item, got %v", sym)
	}
}

func TestLeoTransitionThroughNullingTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	// S ::= b S A A with A nulling: every position past the leading b is
	// eligible, since the tail behind the postdot symbol derives only ε.
	g := NewGrammar(S, 3)
	g.AddRule(S, b, S, A, A)
	g.AddRule(S, a)
	g.AddRule(A)
	pg, err := Preprocess(g)
	if err != nil {
		t.Error(err)
	}
	item := StartItem(pg.Rule(0), 0).Advance()
	if sym := pg.LeoTransition(item); sym != S {
		t.Errorf("Expected Leo transition S through nulling tail, got %v", sym)
	}
	if sym := pg.LeoTransition(item.Advance()); sym != A {
		t.Errorf("Expected Leo transition A at dot 2, got %v", sym)
	}
	if sym := pg.LeoTransition(StartItem(pg.Rule(0), 0)); sym != earleybird.NoSymbol {
		t.Errorf("Expected no Leo transition at dot 0, got %v", sym)
	}
}

func TestLeoIneligibleProductiveNullableTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	// S ::= a S C | b ;  C ::= c | ε.  C is nullable but not nulling: it
	// may derive 'c'. Dot 1 of rule 0 must stay ineligible, otherwise a
	// Leo item would suppress the very items predicting the inner C.
	var C, c earleybird.Symbol = 4, 5
	g := NewGrammar(S, 4)
	g.AddRule(S, a, S, C)
	g.AddRule(S, b)
	g.AddRule(C, c)
	g.AddRule(C)
	pg, err := Preprocess(g)
	if err != nil {
		t.Error(err)
	}
	if !pg.IsNullable(C) {
		t.Errorf("Expected C to be nullable")
	}
	if pg.IsNulling(C) {
		t.Errorf("Expected C not to be nulling, it derives 'c'")
	}
	item := StartItem(pg.Rule(0), 0).Advance()
	if sym := pg.LeoTransition(item); sym != earleybird.NoSymbol {
		t.Errorf("Expected dot 1 to be Leo-ineligible, transition is %v", sym)
	}
	if sym := pg.LeoTransition(item.Advance()); sym != C {
		t.Errorf("Expected Leo transition C at dot 2, got %v", sym)
	}
}

func TestPreprocessedIsSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	g := NewGrammar(S, 0)
	g.AddRule(S, a)
	pg, err := Preprocess(g)
	if err != nil {
		t.Error(err)
	}
	g.AddRule(S, b) // the grammar may continue to grow…
	if pg.Size() != 1 {
		t.Errorf("Expected preprocessed snapshot to stay at 1 rule, has %d", pg.Size())
	}
	pg2, _ := Preprocess(g)
	if pg.Fingerprint() == pg2.Fingerprint() {
		t.Errorf("Expected differing grammars to have differing fingerprints")
	}
}

func TestFingerprintStability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	build := func() *Grammar {
		g := NewGrammar(S, 2)
		g.AddRule(S, A, a)
		g.AddRule(A)
		return g
	}
	pg1, err1 := Preprocess(build())
	pg2, err2 := Preprocess(build())
	if err1 != nil || err2 != nil {
		t.Errorf("Expected preprocessing to succeed, got %v / %v", err1, err2)
	}
	if pg1.Fingerprint() != pg2.Fingerprint() {
		t.Errorf("Expected equal grammars to have equal fingerprints")
	}
	if pg1.Copy().Fingerprint() != pg1.Fingerprint() {
		t.Errorf("Expected copy to share the fingerprint of the original")
	}
}

func TestPreprocessNoStartSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	g := NewGrammar(earleybird.NoSymbol, 0)
	if _, err := Preprocess(g); err == nil {
		t.Errorf("Expected preprocessing without start symbol to fail, didn't")
	}
}
