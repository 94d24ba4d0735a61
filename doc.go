/*
Package earleybird is a toolbox for incremental context-free recognition.

EarleyBird answers, one input position at a time and without backtracking,
whether a stream of symbols is a member of the language of a context-free
grammar. The recognizer is based on Earley's algorithm, extended with
Joop Leo's memoization of right-recursive completions. Package structure
is as follows:

■ cfg: Package cfg holds grammars and their preprocessed form, i.e. the
derived tables (nullability, prediction index, Leo eligibility) which the
recognizer consumes.

■ cfg/earley: Package earley implements the chart recognizer itself.

■ cfg/iteratable and cfg/sparse: supporting container types.

The base package contains scalar types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package earleybird
