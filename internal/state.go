package internal

import (
	"fmt"
	"io"
)

// runState stores everything produced while running one source input.
// A state instance serves exactly one scan/parse pass and is then
// discarded.
type runState struct {
	source   string
	tokens   []token
	errOut   io.Writer
	hadError bool
}

func newRunState(source string, errOut io.Writer) *runState {
	return &runState{source: source, errOut: errOut}
}

// scanError reports a lexical fault. Scanning continues afterwards.
func (s *runState) scanError(line int, message string) {
	s.report(line, "", message)
}

// parseError reports a syntactic fault tagged with the offending token.
func (s *runState) parseError(tok *token, message string) {
	if tok.token == tkEOF {
		s.report(tok.line, " at end", message)
	} else {
		s.report(tok.line, fmt.Sprintf(" at '%s'", tok.lexeme), message)
	}
}

func (s *runState) report(line int, where, message string) {
	fmt.Fprintf(s.errOut, "[line %d] Error%s: %s\n", line, where, message)
	s.hadError = true
}
