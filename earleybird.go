package earleybird

import "fmt"

// --- Symbols ----------------------------------------------------------

// Symbol is an identifier for a terminal or non-terminal of a grammar.
// Symbols are plain numbers: it is up to applications to attach names or
// token categories to them. Grammar rules accept non-negative symbol ids
// only; the negative range is reserved.
type Symbol int16

// NoSymbol is a reserved id denoting the absence of a symbol, e.g. the
// symbol after the dot of a fully matched rule.
const NoSymbol Symbol = -1

// MaxSymbol is the largest legal symbol id.
const MaxSymbol Symbol = 1<<15 - 1

// IsValid is true for symbols which may appear in grammar rules.
func (s Symbol) IsValid() bool {
	return s >= 0
}

func (s Symbol) String() string {
	if s == NoSymbol {
		return "#none"
	}
	return fmt.Sprintf("#%d", int16(s))
}

// SymbolStringer is a type to be provided by embedders to print out
// symbols by name instead of by number.
type SymbolStringer func(Symbol) string

// --- Input positions --------------------------------------------------

// An earleme is an input position in the recognizer's chart, one per input
// symbol boundary. We simply count them.
type Earleme uint64
