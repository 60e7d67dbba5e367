package internal

// parser consumes the scanned tokens with one-token lookahead and
// builds a single expression tree. The first syntactic fault is
// reported on the state and aborts the whole parse.
//
// Grammar, highest rule first:
//
//	expression → equality
//	equality   → comparison ( ("!=" | "==") comparison )*
//	comparison → term ( (">" | ">=" | "<" | "<=") term )*
//	term       → factor ( ("-" | "+") factor )*
//	factor     → unary ( ("/" | "*") unary )*
//	unary      → ("!" | "-") unary | primary
//	primary    → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
type parser struct {
	current int

	state *runState
}

func newParser(state *runState) *parser {
	return &parser{state: state}
}

func (p *parser) parse() (expr, error) {
	return p.expression()
}

func (p *parser) expression() (expr, error) {
	return p.equality()
}

func (p *parser) equality() (expr, error) {
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(tkBangEqual, tkEqualEqual) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		left = &binaryExpr{
			left:     left,
			operator: operator,
			right:    right,
		}
	}
	return left, nil
}

func (p *parser) comparison() (expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &binaryExpr{
			left:     left,
			operator: operator,
			right:    right,
		}
	}
	return left, nil
}

func (p *parser) term() (expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(tkMinus, tkPlus) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &binaryExpr{
			left:     left,
			operator: operator,
			right:    right,
		}
	}
	return left, nil
}

func (p *parser) factor() (expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &binaryExpr{
			left:     left,
			operator: operator,
			right:    right,
		}
	}
	return left, nil
}

func (p *parser) unary() (expr, error) {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &unaryExpr{
			operator: operator,
			right:    right,
		}, nil
	}
	return p.primary()
}

func (p *parser) primary() (expr, error) {
	if p.match(tkFalse) {
		return &literalExpr{value: false}, nil
	}
	if p.match(tkTrue) {
		return &literalExpr{value: true}, nil
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}, nil
	}
	if p.match(tkNumber, tkString) {
		return &literalExpr{value: p.previous().literal}, nil
	}
	if p.match(tkLeftParen) {
		// The '(' must be consumed before recursing, otherwise a bare
		// '(' would reenter primary on the same token forever
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tkRightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &groupingExpr{expression: inner}, nil
	}

	return nil, p.errorAt(p.peek(), "Expect expression.")
}

func (p *parser) consume(tk tokenType, message string) (*token, error) {
	if p.check(tk) {
		return p.advance(), nil
	}
	return nil, p.errorAt(p.peek(), message)
}

func (p *parser) errorAt(tok *token, message string) error {
	p.state.parseError(tok, message)
	return parseErrorAt(tok, message)
}

// synchronize skips to the next statement boundary. Error recovery
// across statements needs a statement grammar first, so nothing calls
// this yet.
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().token == tkSemicolon {
			return
		}
		switch p.peek().token {
		case tkClass, tkFn, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		}
		p.advance()
	}
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, tk := range tokens {
		if p.check(tk) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().token == tk
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) peek() *token {
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}
