package internal

// R is the result type produced by tree visitors
type R interface{}

// expr is the closed set of expression nodes. accept performs the
// double dispatch into a visitor, propagating the visitor's failure.
type expr interface {
	accept(exprVisitor) (R, error)
}

// exprVisitor has one method per node variant. Adding a variant means
// updating every implementation; adding an algorithm means only adding
// an implementation.
type exprVisitor interface {
	visitAssignExpr(expr *assignExpr) (R, error)
	visitBinaryExpr(expr *binaryExpr) (R, error)
	visitCallExpr(expr *callExpr) (R, error)
	visitGetExpr(expr *getExpr) (R, error)
	visitGroupingExpr(expr *groupingExpr) (R, error)
	visitLiteralExpr(expr *literalExpr) (R, error)
	visitLogicalExpr(expr *logicalExpr) (R, error)
	visitSetExpr(expr *setExpr) (R, error)
	visitSuperExpr(expr *superExpr) (R, error)
	visitThisExpr(expr *thisExpr) (R, error)
	visitUnaryExpr(expr *unaryExpr) (R, error)
	visitVariableExpr(expr *variableExpr) (R, error)
}

type assignExpr struct {
	name  *token
	value expr
}

func (s *assignExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitAssignExpr(s)
}

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

func (s *binaryExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitBinaryExpr(s)
}

type callExpr struct {
	callee    expr
	paren     *token
	arguments []expr
}

func (s *callExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitCallExpr(s)
}

type getExpr struct {
	object expr
	name   *token
}

func (s *getExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitGetExpr(s)
}

type groupingExpr struct {
	expression expr
}

func (s *groupingExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitGroupingExpr(s)
}

// literalExpr carries a float64, string, bool or nil
type literalExpr struct {
	value interface{}
}

func (s *literalExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitLiteralExpr(s)
}

type logicalExpr struct {
	left     expr
	operator *token
	right    expr
}

func (s *logicalExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitLogicalExpr(s)
}

type setExpr struct {
	object expr
	name   *token
	value  expr
}

func (s *setExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitSetExpr(s)
}

type superExpr struct {
	keyword *token
	method  *token
}

func (s *superExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitSuperExpr(s)
}

type thisExpr struct {
	keyword *token
}

func (s *thisExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitThisExpr(s)
}

type unaryExpr struct {
	operator *token
	right    expr
}

func (s *unaryExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitUnaryExpr(s)
}

type variableExpr struct {
	name *token
}

func (s *variableExpr) accept(visitor exprVisitor) (R, error) {
	return visitor.visitVariableExpr(s)
}
