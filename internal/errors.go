package internal

import "errors"

// errKind separates the failure channels crossing the package boundary.
// errRuntime is reserved for the evaluator and unused until one exists.
type errKind int

const (
	errIO errKind = iota
	errParse
	errRuntime
)

// langError is the single reportable shape for all boundary failures
type langError struct {
	kind    errKind
	token   *token
	message string
	cause   error
}

func (e *langError) Error() string {
	switch e.kind {
	case errIO:
		return "IoError " + e.cause.Error()
	case errRuntime:
		return "RuntimeError " + e.message
	default:
		return "ParseError"
	}
}

func (e *langError) Unwrap() error {
	return e.cause
}

func ioError(err error) *langError {
	return &langError{kind: errIO, cause: err}
}

func parseErrorAt(tok *token, message string) *langError {
	return &langError{kind: errParse, token: tok, message: message}
}

func runtimeErrorAt(tok *token, message string) *langError {
	return &langError{kind: errRuntime, token: tok, message: message}
}

// IsIOError reports whether err is a wrapped I/O failure, so callers can
// tell a bad file apart from a bad program.
func IsIOError(err error) bool {
	var le *langError
	if errors.As(err, &le) {
		return le.kind == errIO
	}
	return false
}

// errUnsupportedConstruct marks tree shapes the printer has no rendering
// for, reachable only through hand-built trees.
var errUnsupportedConstruct = errors.New("unsupported construct")
