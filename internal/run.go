package internal

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// RunSource runs the whole pipeline on one complete source text:
// scan, parse, render the canonical parenthesized form to out.
// Diagnostics go to errOut as they occur. The returned bool reports
// whether any diagnostic was emitted; the error is the typed failure
// that aborted the run, nil when a rendering was produced.
func RunSource(source string, out, errOut io.Writer) (bool, error) {
	state := newRunState(source, errOut)

	start := time.Now()
	state.tokens = newLexer(source, state).scan()
	log.WithFields(log.Fields{
		"tokens":  len(state.tokens),
		"elapsed": time.Since(start),
	}).Debug("scan complete")

	tree, err := newParser(state).parse()
	if err != nil {
		return state.hadError, err
	}
	log.Debug("parse complete")

	printer := &astPrinter{}
	rendered, err := printer.print(tree)
	if err != nil {
		return state.hadError, err
	}

	fmt.Fprintln(out, rendered)
	return state.hadError, nil
}

// RunFile reads path fully and runs the pipeline on its contents.
// A read failure comes back as a wrapped I/O error.
func RunFile(path string, out, errOut io.Writer) (bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return false, ioError(err)
	}
	return RunSource(string(b), out, errOut)
}

// ScanSource tokenizes source and writes one token per line to out,
// a debugging aid for inspecting the scanner on its own. Returns
// false when a lexical fault was reported.
func ScanSource(source string, out, errOut io.Writer) bool {
	state := newRunState(source, errOut)
	for _, tok := range newLexer(source, state).scan() {
		fmt.Fprintln(out, tok)
	}
	return !state.hadError
}
