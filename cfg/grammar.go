package cfg

import (
	"bytes"
	"fmt"
	"math"

	"github.com/npillmayer/earleybird"
)

// Rule is a grammar production, mapping a left-hand side symbol to a
// sequence of right-hand side symbols. Rules are created by
// Grammar.AddRule and are immutable afterwards.
type Rule struct {
	Serial int                // rule number, dense, assigned in creation order
	LHS    earleybird.Symbol  // left-hand side symbol
	rhs    []earleybird.Symbol
}

// RHS returns the right-hand side of a rule. Clients must not alter the
// returned slice.
func (r *Rule) RHS() []earleybird.Symbol {
	return r.rhs
}

// Len returns the length of the right-hand side of a rule. Epsilon rules
// have length 0.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEpsilon is true for rules with an empty right-hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	return r.StringWith(earleybird.Symbol.String)
}

// StringWith formats a rule like String, but with symbol names supplied
// by the client.
func (r *Rule) StringWith(names earleybird.SymbolStringer) string {
	var b bytes.Buffer
	b.WriteString(names(r.LHS))
	b.WriteString(" ::=")
	for _, sym := range r.rhs {
		b.WriteString(" ")
		b.WriteString(names(sym))
	}
	return b.String()
}

// eqRHS compares the right-hand side to a symbol sequence.
func (r *Rule) eqRHS(rhs []earleybird.Symbol) bool {
	if len(r.rhs) != len(rhs) {
		return false
	}
	for i, sym := range r.rhs {
		if sym != rhs[i] {
			return false
		}
	}
	return true
}

// --- Grammar ----------------------------------------------------------

// Grammar is an append-only collection of productions. A grammar is owned
// by its builder until handed to Preprocess, which freezes a snapshot of
// it; the grammar itself stays mutable and may continue to grow.
//
// No semantic validation happens here: unreachable symbols, cyclic and
// (mutually) recursive productions are all legal and are dealt with during
// preprocessing.
type Grammar struct {
	start earleybird.Symbol
	rules []*Rule
}

// NewGrammar creates an empty grammar which is to recognize the given
// start symbol. capacity is a hint for the expected number of rules.
func NewGrammar(start earleybird.Symbol, capacity int) *Grammar {
	if !start.IsValid() {
		tracer().Errorf("illegal start symbol %v for grammar", start)
		start = earleybird.NoSymbol
	}
	if capacity < 0 {
		capacity = 0
	}
	return &Grammar{
		start: start,
		rules: make([]*Rule, 0, capacity),
	}
}

// StartSymbol returns the symbol this grammar is to recognize.
func (g *Grammar) StartSymbol() earleybird.Symbol {
	return g.start
}

// Size returns the number of rules of the grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule number no, or nil for an out-of-range number.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// AddRule appends a production lhs ::= rhs to the grammar and returns its
// newly assigned rule number. Rule numbers start at 0 and are assigned in
// strict creation order.
//
// The only validation performed here is structural: every symbol has to be
// a legal (non-negative) symbol id, and the right-hand side must fit the
// dot-position width. On a structural error the grammar is unchanged and
// stays usable for subsequent calls.
func (g *Grammar) AddRule(lhs earleybird.Symbol, rhs ...earleybird.Symbol) (int, error) {
	if !lhs.IsValid() {
		return -1, fmt.Errorf("illegal LHS symbol %v", lhs)
	}
	for i, sym := range rhs {
		if !sym.IsValid() {
			return -1, fmt.Errorf("illegal RHS symbol %v at position %d", sym, i)
		}
	}
	if len(rhs) > math.MaxUint16 {
		return -1, fmt.Errorf("right-hand side too long: %d symbols", len(rhs))
	}
	r := &Rule{
		Serial: len(g.rules),
		LHS:    lhs,
		rhs:    append([]earleybird.Symbol(nil), rhs...),
	}
	g.rules = append(g.rules, r)
	tracer().Debugf("added rule %d: %v", r.Serial, r)
	return r.Serial, nil
}

// Copy produces an independent logical duplicate of a grammar. Mutating
// the copy does not affect the original, and vice versa.
func (g *Grammar) Copy() *Grammar {
	c := &Grammar{
		start: g.start,
		rules: make([]*Rule, len(g.rules)),
	}
	for i, r := range g.rules {
		c.rules[i] = &Rule{
			Serial: r.Serial,
			LHS:    r.LHS,
			rhs:    append([]earleybird.Symbol(nil), r.rhs...),
		}
	}
	return c
}

// maxRHSLen returns the length of the longest right-hand side.
func (g *Grammar) maxRHSLen() int {
	max := 0
	for _, r := range g.rules {
		if r.Len() > max {
			max = r.Len()
		}
	}
	return max
}

// Dump is a debugging helper, listing all rules of the grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar (start %v) --------------", g.start)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %v", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------")
}
