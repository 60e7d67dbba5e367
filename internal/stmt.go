package internal

// stmt is the statement layer's node shape. The current grammar never
// produces statements; these exist as the target for a future
// statement parser and nothing in this package constructs them.
type stmt interface {
	accept(stmtVisitor) (R, error)
}

type stmtVisitor interface {
	visitBlockStmt(stmt *blockStmt) (R, error)
	visitClassStmt(stmt *classStmt) (R, error)
	visitExpressionStmt(stmt *expressionStmt) (R, error)
	visitFunctionStmt(stmt *functionStmt) (R, error)
	visitIfStmt(stmt *ifStmt) (R, error)
	visitPrintStmt(stmt *printStmt) (R, error)
	visitReturnStmt(stmt *returnStmt) (R, error)
	visitVarStmt(stmt *varStmt) (R, error)
	visitWhileStmt(stmt *whileStmt) (R, error)
}

type blockStmt struct {
	stmts []stmt
}

func (s *blockStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitBlockStmt(s)
}

type classStmt struct {
	name       *token
	superclass expr
	methods    []stmt
}

func (s *classStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitClassStmt(s)
}

type expressionStmt struct {
	expression expr
}

func (s *expressionStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitExpressionStmt(s)
}

type functionStmt struct {
	name   *token
	params []*token
	body   []stmt
}

func (s *functionStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitFunctionStmt(s)
}

type ifStmt struct {
	condition  expr
	thenBranch stmt
	elseBranch stmt
}

func (s *ifStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitIfStmt(s)
}

type printStmt struct {
	expression expr
}

func (s *printStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitPrintStmt(s)
}

type returnStmt struct {
	keyword *token
	value   expr
}

func (s *returnStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitReturnStmt(s)
}

type varStmt struct {
	name        *token
	initializer expr
}

func (s *varStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitVarStmt(s)
}

type whileStmt struct {
	condition expr
	body      stmt
}

func (s *whileStmt) accept(visitor stmtVisitor) (R, error) {
	return visitor.visitWhileStmt(s)
}
