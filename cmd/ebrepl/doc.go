/*
Package ebrepl/main provides an interactive command line tool (EB.REPL)
for experimenting with context-free grammars and Earley recognition.
Users enter grammar rules over named symbols, then feed token sequences
to a recognizer and watch which earlemes stay alive. EB.REPL serves as a
sandbox during the early stages of grammar development, when one wants
to probe a grammar's language before committing to a full parser.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'earleybird.earley'
func tracer() tracing.Trace {
	return tracing.Select("earleybird.earley")
}
