package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/earleybird"
	"github.com/npillmayer/earleybird/cfg"
	"github.com/npillmayer/earleybird/cfg/earley"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("EB.REPL"), where users may enter
// grammar rules and feed token sequences to an Earley recognizer.
// Rules are written over named symbols:
//
//    ebrepl> rule Expr -> Expr + Term
//    ebrepl> rule Expr -> Term
//    ...
//    ebrepl> run num + num * num
//
// 'run' preprocesses the grammar (if necessary) and drives a fresh
// recognizer over the sequence, reporting per-earleme aliveness and the
// final verdict. A small arithmetic expression grammar is pre-loaded as
// a default playground.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to EB.REPL")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	repl, err := readline.New("ebrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := newIntp(repl)
	intp.loadExprGrammar() // default playground grammar
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object. It holds the grammar under construction
// together with the symbol table mapping names to symbol values. The
// preprocessed grammar is cached and invalidated whenever a rule is added.
type Intp struct {
	repl    *readline.Instance
	grammar *cfg.Grammar
	pg      *cfg.PreprocessedGrammar
	symbols map[string]earleybird.Symbol
	names   []string
	start   string
}

func newIntp(repl *readline.Instance) *Intp {
	return &Intp{
		repl:    repl,
		symbols: make(map[string]earleybird.Symbol),
	}
}

// symbol interns a symbol name, assigning the next free symbol value.
func (intp *Intp) symbol(name string) earleybird.Symbol {
	if sym, ok := intp.symbols[name]; ok {
		return sym
	}
	sym := earleybird.Symbol(len(intp.names))
	intp.symbols[name] = sym
	intp.names = append(intp.names, name)
	return sym
}

func (intp *Intp) symbolName(sym earleybird.Symbol) string {
	if int(sym) < 0 || int(sym) >= len(intp.names) {
		return sym.String()
	}
	return intp.names[sym]
}

// The default playground grammar:
//
//    Expr   ➞ Expr + Term  |  Term
//    Term   ➞ Term * Factor  |  Factor
//    Factor ➞ num  |  ( Expr )
//
func (intp *Intp) loadExprGrammar() {
	intp.startGrammar("Expr")
	for _, r := range []string{
		"Expr -> Expr + Term",
		"Expr -> Term",
		"Term -> Term * Factor",
		"Term -> Factor",
		"Factor -> num",
		"Factor -> ( Expr )",
	} {
		if err := intp.addRule(strings.Fields(r)); err != nil {
			panic(fmt.Errorf("error creating default grammar: %v", err))
		}
	}
}

func (intp *Intp) startGrammar(startName string) {
	intp.symbols = make(map[string]earleybird.Symbol)
	intp.names = nil
	intp.start = startName
	intp.grammar = cfg.NewGrammar(intp.symbol(startName), 0)
	intp.pg = nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		args := strings.Fields(line)
		quit, err := intp.Execute(args[0], args[1:])
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute dispatches a single REPL command.
func (intp *Intp) Execute(cmd string, args []string) (bool, error) {
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		intp.printHelp()
	case "grammar":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: grammar <start symbol>")
		}
		intp.startGrammar(args[0])
		pterm.Info.Printf("New grammar with start symbol %s\n", args[0])
	case "rule":
		if err := intp.addRule(args); err != nil {
			return false, err
		}
	case "rules":
		intp.printRules()
	case "symbols":
		for _, name := range intp.names {
			pterm.Info.Printf("%4d  %s\n", intp.symbols[name], name)
		}
	case "run":
		return false, intp.run(args)
	default:
		return false, fmt.Errorf("unknown command '%s'; try 'help'", cmd)
	}
	return false, nil
}

func (intp *Intp) printHelp() {
	pterm.Info.Println("grammar <S>          start a new grammar with start symbol S")
	pterm.Info.Println("rule <L> -> <R> ...  add a rule; empty right hand side for epsilon")
	pterm.Info.Println("rules                list the rules entered so far")
	pterm.Info.Println("symbols              list the symbols seen so far")
	pterm.Info.Println("run <t> <t> ...      recognize a token sequence")
	pterm.Info.Println("quit                 leave EB.REPL")
}

// addRule parses "L -> R1 R2 …" and adds it to the grammar under
// construction. An empty right hand side denotes an epsilon rule.
func (intp *Intp) addRule(args []string) error {
	if len(args) < 2 || (args[1] != "->" && args[1] != "::=") {
		return fmt.Errorf("usage: rule <LHS> -> <RHS symbols>")
	}
	lhs := intp.symbol(args[0])
	var rhs []earleybird.Symbol
	for _, name := range args[2:] {
		rhs = append(rhs, intp.symbol(name))
	}
	if _, err := intp.grammar.AddRule(lhs, rhs...); err != nil {
		return err
	}
	intp.pg = nil // grammar changed, invalidate the preprocessed form
	return nil
}

func (intp *Intp) printRules() {
	for i := 0; i < intp.grammar.Size(); i++ {
		r := intp.grammar.Rule(i)
		line := r.StringWith(intp.symbolName)
		if r.IsEpsilon() {
			line += " <epsilon>"
		}
		pterm.Info.Printf("%3d: %s\n", i, line)
	}
}

// run drives a fresh recognizer over a token sequence and reports which
// earlemes stayed alive, plus the final verdict.
func (intp *Intp) run(args []string) error {
	if intp.pg == nil {
		pg, err := cfg.Preprocess(intp.grammar)
		if err != nil {
			return err
		}
		intp.pg = pg
		tracer().Infof("Grammar preprocessed, fingerprint %s", pg.Fingerprint())
	}
	reco := earley.NewRecognizer(intp.pg)
	reco.Initialize()
	for pos, name := range args {
		sym, ok := intp.symbols[name]
		if !ok {
			return fmt.Errorf("token '%s' does not occur in the grammar", name)
		}
		if err := reco.Discover(sym, earleybird.Earleme(pos)); err != nil {
			return err
		}
		if !reco.FinishEarleme() {
			pterm.Error.Printf("Dead after token %d ('%s'), input rejected\n", pos+1, name)
			return nil
		}
		tracer().Debugf("earleme %d alive after '%s'", pos+1, name)
	}
	if reco.HasCompleteParse() {
		pterm.Info.Printf("Recognized, %s derives the input\n", intp.start)
	} else {
		pterm.Error.Println("All earlemes alive, but no complete parse; input is a proper prefix at best")
	}
	return nil
}
