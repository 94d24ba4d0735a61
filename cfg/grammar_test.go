package cfg

import (
	"testing"

	"github.com/npillmayer/earleybird"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Symbols for a small test grammar:
//
//     S ::= A 'a'
//     A ::= A 'b'
//     A ::=            (epsilon)
//
const (
	S earleybird.Symbol = iota
	A
	a
	b
)

func TestGrammarAddRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	g := NewGrammar(S, 3)
	no, err := g.AddRule(S, A, a)
	if err != nil {
		t.Error(err)
	}
	if no != 0 {
		t.Errorf("Expected first rule to get number 0, got %d", no)
	}
	no, _ = g.AddRule(A, A, b)
	if no != 1 {
		t.Errorf("Expected second rule to get number 1, got %d", no)
	}
	no, _ = g.AddRule(A)
	if no != 2 || g.Size() != 3 {
		t.Errorf("Expected grammar of size 3 with dense rule numbers, got %d/%d", no, g.Size())
	}
	if !g.Rule(2).IsEpsilon() {
		t.Errorf("Expected rule 2 to be an epsilon rule, isn't")
	}
	if g.Rule(3) != nil {
		t.Errorf("Expected out-of-range rule number to yield nil, didn't")
	}
}

func TestGrammarStructuralError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	g := NewGrammar(S, 0)
	if _, err := g.AddRule(earleybird.NoSymbol, a); err == nil {
		t.Errorf("Expected illegal LHS symbol to be rejected, wasn't")
	}
	if _, err := g.AddRule(S, earleybird.Symbol(-7)); err == nil {
		t.Errorf("Expected illegal RHS symbol to be rejected, wasn't")
	}
	// the grammar has to stay usable after a structural error
	no, err := g.AddRule(S, a)
	if err != nil || no != 0 {
		t.Errorf("Expected grammar to stay usable after structural error, rule no = %d, err = %v",
			no, err)
	}
}

func TestGrammarCopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	g := NewGrammar(S, 0)
	g.AddRule(S, A, a)
	c := g.Copy()
	g.AddRule(A, b) // mutate the original
	if c.Size() != 1 {
		t.Errorf("Expected copy to be unaffected by mutation of original, has %d rules", c.Size())
	}
	c.AddRule(A) // mutate the copy
	if g.Size() != 2 {
		t.Errorf("Expected original to be unaffected by mutation of copy, has %d rules", g.Size())
	}
}

func TestItemDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	g := NewGrammar(S, 0)
	g.AddRule(S, A, a)
	i := StartItem(g.Rule(0), 0)
	if i.PeekSymbol() != A {
		t.Errorf("Expected start item to expect %v, expects %v", A, i.PeekSymbol())
	}
	i = i.Advance()
	if i.PeekSymbol() != a || i.Dot() != 1 {
		t.Errorf("Expected advanced item to expect %v at dot 1, got %v at %d",
			a, i.PeekSymbol(), i.Dot())
	}
	i = i.Advance()
	if !i.Completed() || i.PeekSymbol() != earleybird.NoSymbol {
		t.Errorf("Expected item %v to be fully matched, isn't", i)
	}
	if !i.Advance().IsNull() {
		t.Errorf("Expected advancing a completed item to yield the null item, didn't")
	}
}
