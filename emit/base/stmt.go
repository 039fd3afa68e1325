package base

import "github.com/rubyshade/rubyshade/ir"

// WriteStmt renders a single IR statement node, recursing into nested
// blocks. Every dialect-specific spelling (declaration syntax, loop
// header syntax, return syntax) goes through hooks; the structural
// walk itself — which statements need braces, how an elsif chain
// nests, how a multi-assignment distributes — is identical across
// targets.
func WriteStmt(w *Writer, hooks Hooks, node ir.Node) {
	switch n := node.(type) {
	case *ir.VarDecl:
		value := WriteExpr(hooks, n.Init, "")
		w.WriteLine("%s", hooks.VarDeclLine(n.Name, hooks.TypeName(n.Type), value))

	case *ir.Assignment:
		target := WriteExpr(hooks, n.Target, "")
		value := WriteExpr(hooks, n.Value, "")
		w.WriteLine("%s = %s;", target, value)

	case *ir.MultipleAssignment:
		writeMultipleAssignment(w, hooks, n)

	case *ir.IfStatement:
		writeIf(w, hooks, n)

	case *ir.ForLoop:
		start := WriteExpr(hooks, n.Start, "")
		end := WriteExpr(hooks, n.End, "")
		w.WriteLine("%s", hooks.ForHeaderLine(n.Index, start, end))
		w.PushIndent()
		WriteBlock(w, hooks, n.Body)
		w.PopIndent()
		w.WriteLine("}")

	case *ir.WhileLoop:
		cond := WriteExpr(hooks, n.Cond, "")
		w.WriteLine("while (%s) {", cond)
		w.PushIndent()
		WriteBlock(w, hooks, n.Body)
		w.PopIndent()
		w.WriteLine("}")

	case *ir.Break:
		w.WriteLine("break;")

	case *ir.Return:
		if arr, ok := n.Value.(*ir.ArrayLiteral); ok && w.tupleStruct != "" {
			elems := make([]string, len(arr.Elements))
			for i, e := range arr.Elements {
				elems[i] = WriteExpr(hooks, e, "")
			}
			w.WriteLine("%s", hooks.TupleReturnLine(w.tupleStruct, elems))
			return
		}
		value := ""
		if n.Value != nil {
			value = WriteExpr(hooks, n.Value, "")
		}
		w.WriteLine("%s", hooks.ReturnLine(value))

	case *ir.GlobalDecl:
		writeGlobalDecl(w, hooks, n)

	case *ir.FunctionDefinition:
		WriteFunction(w, hooks, n)

	case *ir.Block:
		WriteBlock(w, hooks, n)

	default:
		// A bare expression used as a statement (no surface return
		// lifting requested): emit it for side effect.
		w.WriteLine("%s;", WriteExpr(hooks, node, ""))
	}
}

// WriteBlock renders every statement in block in order.
func WriteBlock(w *Writer, hooks Hooks, block *ir.Block) {
	if block == nil {
		return
	}
	for _, stmt := range block.Stmts {
		WriteStmt(w, hooks, stmt)
	}
}

// writeIf walks the Else chain iteratively rather than recursing, so
// an arbitrarily long elsif chain renders as "if / else if / ... /
// else" instead of nested braces.
func writeIf(w *Writer, hooks Hooks, stmt *ir.IfStatement) {
	cond := WriteExpr(hooks, stmt.Cond, "")
	w.WriteLine("if (%s) {", cond)
	w.PushIndent()
	WriteBlock(w, hooks, stmt.Then)
	w.PopIndent()

	current := stmt.Else
	for current != nil {
		switch branch := current.(type) {
		case *ir.IfStatement:
			cond := WriteExpr(hooks, branch.Cond, "")
			w.WriteLine("} else if (%s) {", cond)
			w.PushIndent()
			WriteBlock(w, hooks, branch.Then)
			w.PopIndent()
			current = branch.Else
		case *ir.Block:
			w.WriteLine("} else {")
			w.PushIndent()
			WriteBlock(w, hooks, branch)
			w.PopIndent()
			current = nil
		default:
			current = nil
		}
	}
	w.WriteLine("}")
}

func writeGlobalDecl(w *Writer, hooks Hooks, decl *ir.GlobalDecl) {
	typeName := hooks.TypeName(decl.Type)
	value := ""
	if decl.Init != nil {
		value = WriteExpr(hooks, decl.Init, "")
	}
	w.WriteLine("%s", hooks.GlobalDeclLine(decl.Name, typeName, value, decl.IsConst))
}

// writeMultipleAssignment binds the source to a temporary, then
// assigns each target from the temporary via PlanMultiAssign's
// accessor expressions.
func writeMultipleAssignment(w *Writer, hooks Hooks, n *ir.MultipleAssignment) {
	tempVar := "_multi"
	sourceVal := WriteExpr(hooks, n.Source, "")
	plan := PlanMultiAssign(n, tempVar)

	tempType := hooks.TypeName(plan.TempType)
	if plan.TempType.Kind == ir.TypeTuple {
		if call, ok := n.Source.(*ir.FuncCall); ok {
			tempType = TupleStructName(call.Name)
		}
	}
	w.WriteLine("%s", hooks.VarDeclLine(tempVar, tempType, sourceVal))
	for i, name := range plan.Names {
		accessor := WriteExpr(hooks, plan.Accessors[i], "")
		w.WriteLine("%s = %s;", name, accessor)
	}
}

// WriteFunction renders a function definition: signature line, body,
// closing brace.
func WriteFunction(w *Writer, hooks Hooks, def *ir.FunctionDefinition) {
	params := make([]Param, len(def.Params))
	for i, p := range def.Params {
		t := ir.Float()
		if def.ParamTypes != nil {
			if pt, ok := def.ParamTypes[p]; ok {
				t = pt
			}
		}
		params[i] = Param{Name: p, TypeName: hooks.TypeName(t)}
	}
	returnType := "void"
	savedTupleStruct := w.tupleStruct
	w.tupleStruct = ""
	if def.ReturnType != nil {
		if def.ReturnType.Kind == ir.TypeTuple {
			structName := TupleStructName(def.Name)
			WriteTupleStruct(w, hooks, structName, def.ReturnType.Tuple)
			returnType = structName
			w.tupleStruct = structName
		} else {
			returnType = hooks.TypeName(*def.ReturnType)
		}
	}

	w.WriteLine("%s", hooks.FunctionHeaderLine(def.Name, returnType, params))
	w.PushIndent()
	WriteBlock(w, hooks, LiftTailReturn(def.Body))
	w.PopIndent()
	w.WriteLine("}")
	w.tupleStruct = savedTupleStruct
}
