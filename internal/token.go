package internal

import "fmt"

// tokenType classifies a lexical unit
type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	// (, ), {, }, ',', ., -, +, ;, /, *
	tkLeftParen
	tkRightParen
	tkLeftBrace
	tkRightBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSemicolon
	tkSlash
	tkStar

	// One or two character tokens.
	// !, !=, =, ==, >, >=, <, <=
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	// *variable*, string, number
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	// and, class, else, false, fn, for, if, nil, or,
	// print, return, super, this, true, var, while
	tkAnd
	tkClass
	tkElse
	tkFalse
	tkFn
	tkFor
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkSuper
	tkThis
	tkTrue
	tkVar
	tkWhile
)

var tokenNames = [...]string{
	"EOF",
	"LeftParen",
	"RightParen",
	"LeftBrace",
	"RightBrace",
	"Comma",
	"Dot",
	"Minus",
	"Plus",
	"Semicolon",
	"Slash",
	"Star",
	"Bang",
	"BangEqual",
	"Equal",
	"EqualEqual",
	"Greater",
	"GreaterEqual",
	"Less",
	"LessEqual",
	"Identifier",
	"String",
	"Number",
	"And",
	"Class",
	"Else",
	"False",
	"Fn",
	"For",
	"If",
	"Nil",
	"Or",
	"Print",
	"Return",
	"Super",
	"This",
	"True",
	"Var",
	"While",
}

func (t tokenType) String() string {
	return tokenNames[t+1]
}

// keywords is immutable after initialization and shared by every lexer
var keywords = map[string]tokenType{
	"and":    tkAnd,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"fn":     tkFn,
	"for":    tkFor,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"super":  tkSuper,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

// token is one lexical unit. The literal field carries the decoded
// payload for identifier, string and number tokens, nil otherwise.
// Tokens are created by the lexer and never mutated afterwards.
type token struct {
	token   tokenType
	lexeme  string
	literal interface{}
	line    int
}

func (t token) String() string {
	switch t.token {
	case tkIdentifier, tkString, tkNumber:
		return fmt.Sprintf("%v %q %v", t.token, t.lexeme, t.literal)
	default:
		return fmt.Sprintf("%v %q", t.token, t.lexeme)
	}
}
