/*
Package cfg implements grammars for context-free recognition.

It is the static half of EarleyBird: grammars are accumulated rule by
rule, then frozen into a preprocessed form, which the recognizer of
package cfg/earley consumes.

Building a Grammar

Grammars are specified as flat lists of productions over numeric symbols.
Symbol ids carry no meaning for this package; terminals and non-terminals
are distinguished solely by whether a symbol appears as the left-hand side
of a rule. Rules may have empty right-hand sides (epsilon productions).

Example:

    const S, A, a, b earleybird.Symbol = 0, 1, 2, 3
    g := cfg.NewGrammar(S, 4)
    g.AddRule(S, A, a)    // [0]: S ::= A a
    g.AddRule(A, A, b)    // [1]: A ::= A b
    g.AddRule(A)          // [2]: A ::=  (epsilon)

Rule numbers are dense and assigned in creation order. Grammars stay
mutable (append-only) until preprocessed; Copy produces an independent
duplicate.

Preprocessing

After the grammar is complete, it has to be preprocessed. Preprocessing
computes the closure of nullable symbols, a prediction index from symbols
to dotted rule positions, and the Leo-eligibility of every rule suffix
(whether it is right-recursion reducible). The preprocessed grammar is a
distinct, immutable type: it exposes no mutation operations at all and may
be shared by any number of recognizers, concurrently.

    pg, err := cfg.Preprocess(g)
    pg.IsNullable(A)               // ⇒ true
    pg.PredictionsFor(A)           // ⇒ [A ::= •A b, A ::= •]

Although the derived tables are mainly intended for internal use of the
recognizer, their accessors are public.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'earleybird.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("earleybird.cfg")
}
