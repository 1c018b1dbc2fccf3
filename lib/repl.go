package lib

import (
	"bufio"
	"fmt"
	"io"

	"github.com/alecthomas/repr"
)

// QuitSentinel ends an interactive session when entered on its own line.
const QuitSentinel = ":q"

const invalidInputMessage = "Invalid Input"

// EvaluateExpression runs one line of source text through the whole pipeline
// and returns its integer value. Every call gets a fresh lexer, buffer and
// parser, so concurrent callers never share state.
func EvaluateExpression(line string) (int64, error) {
	node, err := Parse(line)
	if err != nil {
		return 0, err
	}
	return Evaluate(node)
}

type ReplOptions struct {
	// Prompt is written before each read when non-empty.
	Prompt string
	// DumpAST prints the parsed tree before each result.
	DumpAST bool
}

// ReadEvalPrint reads lines from r until the quit sentinel or end of input,
// writing either the integer value of each line or "Invalid Input" to w.
// Failures are session-local: a bad line never ends the loop.
func ReadEvalPrint(r io.Reader, w io.Writer, opts ReplOptions) error {
	scanner := bufio.NewScanner(r)
	for {
		if opts.Prompt != "" {
			fmt.Fprint(w, opts.Prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()

		if line == QuitSentinel {
			return nil
		}

		node, err := Parse(line)
		if err != nil {
			fmt.Fprintln(w, invalidInputMessage)
			continue
		}

		if opts.DumpAST {
			fmt.Fprintln(w, repr.String(node, repr.Indent("  ")))
		}

		value, err := Evaluate(node)
		if err != nil {
			fmt.Fprintln(w, invalidInputMessage)
			continue
		}
		fmt.Fprintln(w, value)
	}
}
