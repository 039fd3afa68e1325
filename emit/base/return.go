package base

import "github.com/rubyshade/rubyshade/ir"

// LiftTailReturn rewrites block so its last statement is an explicit
// ir.Return wherever the surface language left a value in tail
// position (the final statement of a function body, or of a branch
// that is itself in tail position). Declarations, assignments, loops,
// and existing Returns are left untouched; an IfStatement's branches
// are lifted recursively so every path out of the function ends in a
// Return.
//
// WriteFunction applies it to every function body, and each target's
// Compile applies it to the top-level block when NeedsReturn is set.
func LiftTailReturn(block *ir.Block) *ir.Block {
	if block == nil || len(block.Stmts) == 0 {
		return block
	}
	out := make([]ir.Node, len(block.Stmts))
	copy(out, block.Stmts)
	out[len(out)-1] = liftTail(out[len(out)-1])
	return &ir.Block{Stmts: out, Type: block.Type}
}

func liftTail(n ir.Node) ir.Node {
	switch v := n.(type) {
	case *ir.Return, *ir.FunctionDefinition, *ir.GlobalDecl, *ir.MultipleAssignment,
		*ir.ForLoop, *ir.WhileLoop, *ir.Break, *ir.VarDecl, *ir.Assignment:
		return n
	case *ir.Block:
		return LiftTailReturn(v)
	case *ir.IfStatement:
		then := LiftTailReturn(v.Then)
		var elseNode ir.Node
		if v.Else != nil {
			elseNode = liftTail(v.Else)
		}
		return &ir.IfStatement{Cond: v.Cond, Then: then, Else: elseNode, Type: v.Type}
	default:
		// A bare expression sitting in tail position is the block's
		// value: make the return explicit.
		return &ir.Return{Value: n, Type: typeTagOf(n)}
	}
}

func typeTagOf(n ir.Node) ir.TypeTag {
	if tn, ok := n.(ir.TypedNode); ok {
		return tn.TypeTag()
	}
	return ir.TypeTag{}
}
