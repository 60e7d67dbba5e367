package internal

import (
	"errors"
	"testing"
)

func TestPrinterHandBuiltTree(t *testing.T) {
	tree := &binaryExpr{
		left: &unaryExpr{
			operator: &token{token: tkMinus, lexeme: "-", line: 1},
			right:    &literalExpr{value: 123.0},
		},
		operator: &token{token: tkStar, lexeme: "*", line: 1},
		right: &groupingExpr{
			expression: &literalExpr{value: 45.67},
		},
	}

	printer := &astPrinter{}
	got, err := printer.print(tree)
	if err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if got != "(* (- 123) (group 45.67))" {
		t.Errorf("unexpected rendering %q", got)
	}
}

func TestPrinterLiterals(t *testing.T) {
	cases := []struct {
		value interface{}
		want  string
	}{
		{123.0, "123"},
		{45.67, "45.67"},
		{"raw text", "raw text"},
		{true, "true"},
		{false, "false"},
		{nil, "nil"},
	}
	printer := &astPrinter{}
	for _, c := range cases {
		got, err := printer.print(&literalExpr{value: c.value})
		if err != nil {
			t.Fatalf("%v: print failed: %v", c.value, err)
		}
		if got != c.want {
			t.Errorf("%v: expected %q, got %q", c.value, c.want, got)
		}
	}
}

func TestPrinterReservedShapes(t *testing.T) {
	name := &token{token: tkIdentifier, lexeme: "field", literal: "field", line: 1}
	obj := &variableExpr{name: &token{token: tkIdentifier, lexeme: "obj", literal: "obj", line: 1}}

	printer := &astPrinter{}
	cases := []struct {
		tree expr
		want string
	}{
		{obj, "obj"},
		{&getExpr{object: obj, name: name}, "(field obj)"},
		{&setExpr{object: obj, name: name, value: &literalExpr{value: 1.0}}, "(field obj 1)"},
		{&assignExpr{name: name, value: &literalExpr{value: 2.0}}, "(field 2)"},
		{&logicalExpr{
			left:     &literalExpr{value: true},
			operator: &token{token: tkOr, lexeme: "or", line: 1},
			right:    &literalExpr{value: false},
		}, "(or true false)"},
		{&thisExpr{keyword: &token{token: tkThis, lexeme: "this", line: 1}}, "this"},
		{&superExpr{
			keyword: &token{token: tkSuper, lexeme: "super", line: 1},
			method:  name,
		}, "super"},
	}
	for _, c := range cases {
		got, err := printer.print(c.tree)
		if err != nil {
			t.Fatalf("print failed: %v", err)
		}
		if got != c.want {
			t.Errorf("expected %q, got %q", c.want, got)
		}
	}
}

func TestPrinterRejectsCall(t *testing.T) {
	call := &callExpr{
		callee: &variableExpr{name: &token{token: tkIdentifier, lexeme: "f", literal: "f", line: 1}},
		paren:  &token{token: tkRightParen, lexeme: ")", line: 1},
	}
	printer := &astPrinter{}
	if _, err := printer.print(call); !errors.Is(err, errUnsupportedConstruct) {
		t.Errorf("expected unsupported construct error, got %v", err)
	}
}

func TestCallErrorPropagatesThroughTree(t *testing.T) {
	tree := &binaryExpr{
		left:     &literalExpr{value: 1.0},
		operator: &token{token: tkPlus, lexeme: "+", line: 1},
		right: &callExpr{
			callee: &variableExpr{name: &token{token: tkIdentifier, lexeme: "f", literal: "f", line: 1}},
			paren:  &token{token: tkRightParen, lexeme: ")", line: 1},
		},
	}
	printer := &astPrinter{}
	if _, err := printer.print(tree); !errors.Is(err, errUnsupportedConstruct) {
		t.Errorf("expected the failure to propagate, got %v", err)
	}
}
