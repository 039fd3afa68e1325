package frontend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) []Stmt {
	t.Helper()
	tokens, err := NewLexer(src).Tokenize()
	require.NoError(t, err)
	stmts, err := NewParser(tokens).ParseProgram()
	require.NoError(t, err)
	return stmts
}

func TestParserAssignment(t *testing.T) {
	stmts := parse(t, "x = 1.0")
	require.Len(t, stmts, 1)
	assign, ok := stmts[0].(*AssignStmt)
	require.True(t, ok)
	ident, ok := assign.Target.(*IdentExpr)
	require.True(t, ok)
	require.Equal(t, "x", ident.Name)
}

func TestParserBinaryPrecedence(t *testing.T) {
	stmts := parse(t, "x = 1.0 + 2.0 * 3.0")
	assign := stmts[0].(*AssignStmt)
	bin := assign.Value.(*BinaryExpr)
	require.Equal(t, "+", bin.Op)
	rhs := bin.Right.(*BinaryExpr)
	require.Equal(t, "*", rhs.Op)
}

func TestParserIfElsif(t *testing.T) {
	stmts := parse(t, "if x > 0 then y = 1.0 elsif x < 0 then y = -1.0 else y = 0.0 end")
	ifStmt := stmts[0].(*IfStmt)
	require.Len(t, ifStmt.Elsif, 1)
	require.True(t, ifStmt.HasElse)
}

func TestParserUnless(t *testing.T) {
	stmts := parse(t, "unless x > 0 then y = 1.0 end")
	ifStmt := stmts[0].(*IfStmt)
	require.True(t, ifStmt.IsUnless)
}

func TestParserForLoop(t *testing.T) {
	stmts := parse(t, "for i in 0..10 do x = i end")
	forStmt := stmts[0].(*ForStmt)
	require.Equal(t, "i", forStmt.Index)
}

func TestParserMultipleAssignment(t *testing.T) {
	stmts := parse(t, "a, b = split(v)")
	multi := stmts[0].(*MultiAssignStmt)
	require.Equal(t, []string{"a", "b"}, multi.Targets)
}

func TestParserMethodCallAndSwizzle(t *testing.T) {
	stmts := parse(t, "w = v.xyz")
	assign := stmts[0].(*AssignStmt)
	call := assign.Value.(*MethodCallExpr)
	require.Equal(t, "xyz", call.Name)
	require.False(t, call.HasParens)
}

func TestParserTimesBlock(t *testing.T) {
	stmts := parse(t, "5.times do |i| x = i end")
	exprStmt := stmts[0].(*ExprStmt)
	call := exprStmt.Value.(*MethodCallExpr)
	require.Equal(t, "times", call.Name)
	require.NotNil(t, call.Block)
	require.Equal(t, []string{"i"}, call.Block.Params)
}

func TestParserArrayLiteralAndIndex(t *testing.T) {
	stmts := parse(t, "a = [1.0, 2.0, 3.0]\nb = a[0]")
	require.Len(t, stmts, 2)
	idx := stmts[1].(*AssignStmt).Value.(*IndexExpr)
	_, ok := idx.Index.(*IntLitExpr)
	require.True(t, ok)
}

func TestParserFunctionDefinition(t *testing.T) {
	stmts := parse(t, "def brighten(c, amount) return c * amount end")
	def := stmts[0].(*DefStmt)
	require.Equal(t, "brighten", def.Name)
	require.Equal(t, []string{"c", "amount"}, def.Params)
	require.Len(t, def.Body, 1)
}
