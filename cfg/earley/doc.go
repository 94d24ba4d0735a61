/*
Package earley implements an incremental chart recognizer for
context-free grammars.

The recognizer is driven one earleme (input position) at a time: clients
discover zero or more symbols for the current position, then close the
position, and may ask at any closed position whether the input so far is
a complete sentence of the grammar. There is no backtracking and no
internal event loop; the caller owns the driving loop.

    pg, _ := cfg.Preprocess(g)
    reco := earley.NewRecognizer(pg)
    reco.Initialize()
    for _, sym := range input {
        reco.Discover(sym, pos)
        if !reco.FinishEarleme() {
            break // no continuation of the input can be recognized
        }
        pos++
    }
    accept := reco.HasCompleteParse()

Completion chains of right-recursive derivations are collapsed into Leo
items (after Joop Leo, 1991), which keeps the per-earleme work constant
for the common case of right-recursive grammars, instead of growing
linearly with the input position.

A recognizer must be driven from one ordering context at a time. The
preprocessed grammar it is created from may be shared freely; parsing
several inputs against the same grammar in parallel means one recognizer
per input.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'earleybird.earley'.
func tracer() tracing.Trace {
	return tracing.Select("earleybird.earley")
}
