package internal

import (
	"strconv"
)

// lexer walks the source once, front to back, emitting tokens as it
// goes. Lexical faults are reported on the state and scanning resumes
// at the next character.
type lexer struct {
	source  string
	start   int
	current int
	line    int

	// line of the character at start; differs from line only while
	// scanning a string literal that spans newlines
	startLine int

	tokens []token

	state *runState
}

func newLexer(source string, state *runState) *lexer {
	return &lexer{
		source: source,
		line:   1,
		state:  state,
	}
}

func (l *lexer) scan() []token {
	for !l.isAtEnd() {
		l.start = l.current
		l.startLine = l.line
		l.scanToken()
	}
	l.tokens = append(l.tokens, token{token: tkEOF, lexeme: "", line: l.line})
	return l.tokens
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tkLeftParen, nil)
	case ')':
		l.emit(tkRightParen, nil)
	case '{':
		l.emit(tkLeftBrace, nil)
	case '}':
		l.emit(tkRightBrace, nil)
	case ',':
		l.emit(tkComma, nil)
	case '.':
		l.emit(tkDot, nil)
	case '-':
		l.emit(tkMinus, nil)
	case '+':
		l.emit(tkPlus, nil)
	case ';':
		l.emit(tkSemicolon, nil)
	case '*':
		l.emit(tkStar, nil)
	case '!':
		if l.match('=') {
			l.emit(tkBangEqual, nil)
		} else {
			l.emit(tkBang, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tkEqualEqual, nil)
		} else {
			l.emit(tkEqual, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tkLessEqual, nil)
		} else {
			l.emit(tkLess, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tkGreaterEqual, nil)
		} else {
			l.emit(tkGreater, nil)
		}
	case '/':
		if l.match('/') {
			// A comment goes until the end of the line
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.emit(tkSlash, nil)
		}

	// Ignore whitespace
	case ' ', '\r', '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.state.scanError(l.line, "Unexpected character.")
		}
	}
}

func (l *lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	// Unterminated string: no token for this span
	if l.isAtEnd() {
		l.state.scanError(l.line, "Unterminated string.")
		return
	}

	// The closing "
	l.advance()

	// The payload is the verbatim text between the quotes
	l.emit(tkString, l.source[l.start+1:l.current-1])
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	// A fractional part needs a digit after the dot, otherwise the dot
	// is left for the next lexical unit
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	n, err := strconv.ParseFloat(l.source[l.start:l.current], 64)
	if err != nil {
		// unreachable: the matched text is always a valid float
		panic("scanned number could not be parsed: " + l.source[l.start:l.current])
	}

	l.emit(tkNumber, n)
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	text := l.source[l.start:l.current]

	if keyword, ok := keywords[text]; ok {
		l.emit(keyword, nil)
		return
	}
	l.emit(tkIdentifier, text)
}

func (l *lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

func (l *lexer) match(expected byte) bool {
	if l.isAtEnd() || l.source[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *lexer) emit(tk tokenType, literal interface{}) {
	l.tokens = append(l.tokens, token{
		token:   tk,
		lexeme:  l.source[l.start:l.current],
		literal: literal,
		line:    l.startLine,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
