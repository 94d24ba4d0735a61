/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing
algorithms around grammars, scanners, parsers, etc. These kinds of
algorithms are often more straightforward to describe as set constructions
and operations. A Set may be iterated over while it is appended to, which
makes it a natural work-list for fixed-point computations: the iteration
ends only when no un-visited element remains.

Unusually, all set operations are destructive!

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'earleybird.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("earleybird.cfg")
}
