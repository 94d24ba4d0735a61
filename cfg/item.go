package cfg

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/earleybird"
)

// Item is a partially or fully matched rule instance: a rule, a dot
// position within its right-hand side, and the earleme at which the match
// began. Items are small value types; they are compared (and deduplicated)
// by this triple.
type Item struct {
	rule   *Rule
	dot    int
	Origin earleybird.Earleme // earleme where the match of this rule began
}

// NullItem is the invalid item.
var NullItem = Item{}

// StartItem returns an item for a rule with the dot at the leftmost
// position.
func StartItem(r *Rule, origin earleybird.Earleme) Item {
	return Item{rule: r, Origin: origin}
}

// IsNull is true for the invalid item.
func (i Item) IsNull() bool {
	return i.rule == nil
}

// Rule returns the rule this item is an instance of.
func (i Item) Rule() *Rule {
	return i.rule
}

// Dot returns the dot position within the rule's right-hand side.
func (i Item) Dot() int {
	return i.dot
}

// PeekSymbol returns the symbol right after the dot, or NoSymbol if the
// item is fully matched.
func (i Item) PeekSymbol() earleybird.Symbol {
	if i.rule == nil || i.dot >= len(i.rule.rhs) {
		return earleybird.NoSymbol
	}
	return i.rule.rhs[i.dot]
}

// Completed is true if the dot has reached the end of the rule.
func (i Item) Completed() bool {
	return i.rule != nil && i.dot == len(i.rule.rhs)
}

// Advance returns the item with the dot moved one position to the right,
// or NullItem if the item is already fully matched.
func (i Item) Advance() Item {
	if i.rule == nil || i.dot >= len(i.rule.rhs) {
		return NullItem
	}
	return Item{rule: i.rule, dot: i.dot + 1, Origin: i.Origin}
}

func (i Item) String() string {
	if i.rule == nil {
		return "<null item>"
	}
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("%v ::=", i.rule.LHS))
	for at, sym := range i.rule.rhs {
		if at == i.dot {
			b.WriteString(" •")
		}
		b.WriteString(" ")
		b.WriteString(sym.String())
	}
	if i.dot == len(i.rule.rhs) {
		b.WriteString(" •")
	}
	b.WriteString(fmt.Sprintf(" [%d]", i.Origin))
	return b.String()
}
