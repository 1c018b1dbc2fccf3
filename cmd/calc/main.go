package main

import (
	"flag"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dev-danilosilva/integer-arithmetic-expression-evaluator/lib"
)

func main() {
	dumpAST := flag.Bool("ast", false, "print the parsed tree before each result")
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts := lib.ReplOptions{DumpAST: *dumpAST}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		opts.Prompt = "calc > "
	}

	if err := lib.ReadEvalPrint(os.Stdin, os.Stdout, opts); err != nil {
		log.Fatal(err)
	}
}
