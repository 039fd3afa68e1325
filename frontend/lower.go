package frontend

import (
	"unicode"

	"github.com/rubyshade/rubyshade/builtins"
	"github.com/rubyshade/rubyshade/internal/diag"
	"github.com/rubyshade/rubyshade/ir"
)

// Lowerer walks the parser's syntax tree and produces an IR Block,
// tracking which names are parameters (immutable within the lowering)
// and which have been locally declared (grown as VarDecls are
// emitted), per the name-is-declaration-or-assignment rule.
type Lowerer struct {
	params   map[string]bool
	declared map[string]bool
}

// NewLowerer creates a Lowerer seeded with the given parameter names.
func NewLowerer(params []string) *Lowerer {
	lw := &Lowerer{
		params:   make(map[string]bool, len(params)),
		declared: make(map[string]bool),
	}
	for _, p := range params {
		lw.params[p] = true
	}
	return lw
}

// LowerProgram lowers a full top-level statement sequence into an IR
// Block.
func (lw *Lowerer) LowerProgram(stmts []Stmt) *ir.Block {
	diag.Logger().Debugf("lowering %d top-level statements", len(stmts))
	return lw.lowerBlock(stmts)
}

func (lw *Lowerer) lowerBlock(stmts []Stmt) *ir.Block {
	out := make([]ir.Node, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, lw.lowerStmt(s))
	}
	return &ir.Block{Stmts: out}
}

// scoped snapshots the declared-variable set, runs fn, then restores
// it — so a name introduced only inside a branch doesn't leak into a
// sibling branch.
func (lw *Lowerer) scoped(fn func() *ir.Block) *ir.Block {
	snapshot := cloneSet(lw.declared)
	block := fn()
	lw.declared = snapshot
	return block
}

func cloneSet(s map[string]bool) map[string]bool {
	out := make(map[string]bool, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func isUpper(name string) bool {
	if name == "" {
		return false
	}
	r := []rune(name)[0]
	return unicode.IsUpper(r)
}

func (lw *Lowerer) lowerStmt(s Stmt) ir.Node {
	switch n := s.(type) {
	case *AssignStmt:
		return lw.lowerAssign(n)
	case *MultiAssignStmt:
		return lw.lowerMultiAssign(n)
	case *IfStmt:
		return lw.lowerIf(n)
	case *WhileStmt:
		return &ir.WhileLoop{
			Cond: lw.lowerExpr(n.Cond),
			Body: lw.scoped(func() *ir.Block { return lw.lowerBlock(n.Body) }),
		}
	case *ForStmt:
		return lw.lowerFor(n.Index, lw.lowerIntContext(n.Start), lw.lowerIntContext(n.End), n.Body)
	case *BreakStmt:
		return &ir.Break{}
	case *ReturnStmt:
		ret := &ir.Return{}
		if n.Value != nil {
			ret.Value = lw.lowerExpr(n.Value)
		}
		return ret
	case *DefStmt:
		return lw.lowerDef(n)
	case *ExprStmt:
		return lw.lowerExpr(n.Value)
	default:
		// Unknown statement shape: fall through to an empty block
		// rather than panic, matching the registry's "unknown node
		// recurses into children" default.
		return &ir.Block{}
	}
}

func (lw *Lowerer) lowerFor(index string, start, end ir.Node, body []Stmt) *ir.ForLoop {
	return &ir.ForLoop{
		Index: index,
		Start: start,
		End:   end,
		Body: lw.scoped(func() *ir.Block {
			return lw.lowerBlock(body)
		}),
	}
}

func (lw *Lowerer) lowerDef(n *DefStmt) *ir.FunctionDefinition {
	savedParams, savedDeclared := lw.params, lw.declared
	lw.params = make(map[string]bool, len(n.Params))
	lw.declared = make(map[string]bool)
	for _, p := range n.Params {
		lw.params[p] = true
	}

	body := lw.lowerBlock(n.Body)

	lw.params, lw.declared = savedParams, savedDeclared

	return &ir.FunctionDefinition{
		Name:   n.Name,
		Params: n.Params,
		Body:   body,
	}
}

func (lw *Lowerer) lowerAssign(n *AssignStmt) ir.Node {
	if idx, ok := n.Target.(*IndexExpr); ok {
		return &ir.Assignment{
			Target: &ir.ArrayIndex{Array: lw.lowerExpr(idx.Receiver), Index: lw.lowerIntContext(idx.Index)},
			Value:  lw.lowerExpr(n.Value),
		}
	}

	ident, ok := n.Target.(*IdentExpr)
	if !ok {
		return &ir.Assignment{Target: lw.lowerExpr(n.Target), Value: lw.lowerExpr(n.Value)}
	}

	if ident.Global {
		return &ir.GlobalDecl{Name: ident.Name, Init: lw.lowerExpr(n.Value), IsStatic: true}
	}
	if isUpper(ident.Name) {
		return &ir.GlobalDecl{Name: ident.Name, Init: lw.lowerExpr(n.Value), IsConst: true, IsStatic: true}
	}

	value := lw.lowerExpr(n.Value)
	if lw.declared[ident.Name] || lw.params[ident.Name] {
		return &ir.Assignment{Target: &ir.VarRef{Name: ident.Name}, Value: value}
	}
	lw.declared[ident.Name] = true
	return &ir.VarDecl{Name: ident.Name, Init: value}
}

func (lw *Lowerer) lowerMultiAssign(n *MultiAssignStmt) ir.Node {
	targets := make([]ir.Node, len(n.Targets))
	for i, name := range n.Targets {
		targets[i] = &ir.VarRef{Name: name}
		lw.declared[name] = true
	}
	return &ir.MultipleAssignment{Targets: targets, Source: lw.lowerExpr(n.Value)}
}

// lowerIf folds the Elsif chain into nested IfStatements, innermost
// first, so an else-branch is either nil, a Block, or another
// IfStatement — exactly the elsif representation the IR requires.
func (lw *Lowerer) lowerIf(n *IfStmt) *ir.IfStatement {
	var elseNode ir.Node
	if n.HasElse {
		elseNode = lw.scoped(func() *ir.Block { return lw.lowerBlock(n.Else) })
	}

	for i := len(n.Elsif) - 1; i >= 0; i-- {
		clause := n.Elsif[i]
		then := lw.scoped(func() *ir.Block { return lw.lowerBlock(clause.Body) })
		elseNode = &ir.IfStatement{
			Cond: lw.lowerExpr(clause.Cond),
			Then: then,
			Else: elseNode,
		}
	}

	cond := lw.lowerExpr(n.Cond)
	if n.IsUnless {
		cond = &ir.UnaryOp{Op: "!", Operand: cond}
	}

	then := lw.scoped(func() *ir.Block { return lw.lowerBlock(n.Then) })
	return &ir.IfStatement{Cond: cond, Then: then, Else: elseNode}
}

// lowerExpr lowers a general-position expression. Integer literals are
// promoted to float here; lowerIntContext is used instead wherever the
// int/float distinction matters to an emitter.
func (lw *Lowerer) lowerExpr(e Expr) ir.Node {
	switch n := e.(type) {
	case *IntLitExpr:
		return &ir.Literal{Value: float64(n.Value), IntSyntax: false}
	case *FloatLitExpr:
		return &ir.Literal{Value: n.Value, IntSyntax: false}
	case *BoolLitExpr:
		return &ir.BoolLiteral{Value: n.Value}
	case *IdentExpr:
		return lw.lowerIdent(n)
	case *BinaryExpr:
		return &ir.BinaryOp{Op: n.Op, Left: lw.lowerExpr(n.Left), Right: lw.lowerExpr(n.Right)}
	case *UnaryExpr:
		return &ir.UnaryOp{Op: n.Op, Operand: lw.lowerExpr(n.Operand)}
	case *ParenExpr:
		return &ir.Parenthesized{Inner: lw.lowerExpr(n.Inner)}
	case *ArrayLitExpr:
		elems := make([]ir.Node, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = lw.lowerExpr(el)
		}
		return &ir.ArrayLiteral{Elements: elems}
	case *IndexExpr:
		return &ir.ArrayIndex{Array: lw.lowerExpr(n.Receiver), Index: lw.lowerIntContext(n.Index)}
	case *CallExpr:
		args := make([]ir.Node, len(n.Args))
		for i, a := range n.Args {
			args[i] = lw.lowerExpr(a)
		}
		return &ir.FuncCall{Name: n.Name, Args: args}
	case *MethodCallExpr:
		return lw.lowerMethodCall(n)
	default:
		return &ir.Literal{Value: 0, IntSyntax: false}
	}
}

// lowerIntContext preserves integer syntax where emitters need it:
// array indices and loop bounds. Integer literals assigned to
// variables are not kept as integers; they go through lowerExpr.
func (lw *Lowerer) lowerIntContext(e Expr) ir.Node {
	if lit, ok := e.(*IntLitExpr); ok {
		return &ir.Literal{Value: float64(lit.Value), IntSyntax: true}
	}
	return lw.lowerExpr(e)
}

func (lw *Lowerer) lowerIdent(n *IdentExpr) ir.Node {
	if n.Global {
		return &ir.VarRef{Name: n.Name}
	}
	if n.Name == "PI" || n.Name == "TAU" {
		return &ir.Constant{Name: n.Name}
	}
	return &ir.VarRef{Name: n.Name}
}

// lowerMethodCall resolves the five-way ambiguity in postfix method
// syntax, in the order the registry's dispatch rules require:
// operator call, unary negate/not, single-letter field access,
// multi-letter swizzle, generic call. `times` is handled first since
// it lowers to a different node shape entirely (a ForLoop).
func (lw *Lowerer) lowerMethodCall(n *MethodCallExpr) ir.Node {
	if n.Name == "times" && n.Block != nil && len(n.Args) == 0 {
		index := "_"
		if len(n.Block.Params) > 0 {
			index = n.Block.Params[0]
		}
		return lw.lowerFor(index, &ir.Literal{Value: 0, IntSyntax: true}, lw.lowerExpr(n.Receiver), n.Block.Body)
	}

	if len(n.Args) == 1 {
		if _, ok := builtins.BinaryOperators[n.Name]; ok {
			return &ir.BinaryOp{Op: n.Name, Left: lw.lowerExpr(n.Receiver), Right: lw.lowerExpr(n.Args[0])}
		}
	}

	if len(n.Args) == 0 && !n.HasParens && (n.Name == "-@" || n.Name == "!") {
		op := "-"
		if n.Name == "!" {
			op = "!"
		}
		return &ir.UnaryOp{Op: op, Operand: lw.lowerExpr(n.Receiver)}
	}

	if len(n.Args) == 0 && !n.HasParens && len(n.Name) == 1 && builtins.IsSwizzleLetter(n.Name[0]) {
		return &ir.FieldAccess{Receiver: lw.lowerExpr(n.Receiver), Field: n.Name}
	}

	if len(n.Args) == 0 && !n.HasParens && len(n.Name) >= 2 && len(n.Name) <= 4 && builtins.IsSwizzleName(n.Name) {
		return &ir.Swizzle{Receiver: lw.lowerExpr(n.Receiver), Components: n.Name}
	}

	args := make([]ir.Node, len(n.Args))
	for i, a := range n.Args {
		args[i] = lw.lowerExpr(a)
	}
	return &ir.FuncCall{Name: n.Name, Receiver: lw.lowerExpr(n.Receiver), Args: args}
}
