package internal

import (
	"fmt"
	"strings"
)

// astPrinter renders an expression tree as its fully parenthesized
// prefix form, e.g. "1 + 3 == 4" becomes "(== (+ 1 3) 4)". It is the
// reference visitor and the golden-output mechanism for parser tests.
type astPrinter struct{}

func (v *astPrinter) print(e expr) (string, error) {
	r, err := e.accept(v)
	if err != nil {
		return "", err
	}
	return r.(string), nil
}

func (v *astPrinter) parenthesize(name string, exprs ...expr) (R, error) {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		r, err := e.accept(v)
		if err != nil {
			return nil, err
		}
		sb.WriteByte(' ')
		sb.WriteString(r.(string))
	}
	sb.WriteByte(')')
	return sb.String(), nil
}

func (v *astPrinter) visitAssignExpr(expr *assignExpr) (R, error) {
	return v.parenthesize(expr.name.lexeme, expr.value)
}

func (v *astPrinter) visitBinaryExpr(expr *binaryExpr) (R, error) {
	return v.parenthesize(expr.operator.lexeme, expr.left, expr.right)
}

// No grammar path builds call nodes yet, so a call reaching the
// printer is a hand-built tree.
func (v *astPrinter) visitCallExpr(expr *callExpr) (R, error) {
	return nil, errUnsupportedConstruct
}

func (v *astPrinter) visitGetExpr(expr *getExpr) (R, error) {
	return v.parenthesize(expr.name.lexeme, expr.object)
}

func (v *astPrinter) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return v.parenthesize("group", expr.expression)
}

func (v *astPrinter) visitLiteralExpr(expr *literalExpr) (R, error) {
	if expr.value == nil {
		return "nil", nil
	}
	return fmt.Sprintf("%v", expr.value), nil
}

func (v *astPrinter) visitLogicalExpr(expr *logicalExpr) (R, error) {
	return v.parenthesize(expr.operator.lexeme, expr.left, expr.right)
}

func (v *astPrinter) visitSetExpr(expr *setExpr) (R, error) {
	return v.parenthesize(expr.name.lexeme, expr.object, expr.value)
}

func (v *astPrinter) visitSuperExpr(expr *superExpr) (R, error) {
	return "super", nil
}

func (v *astPrinter) visitThisExpr(expr *thisExpr) (R, error) {
	return "this", nil
}

func (v *astPrinter) visitUnaryExpr(expr *unaryExpr) (R, error) {
	return v.parenthesize(expr.operator.lexeme, expr.right)
}

func (v *astPrinter) visitVariableExpr(expr *variableExpr) (R, error) {
	return expr.name.lexeme, nil
}
