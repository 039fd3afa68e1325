package infer

import (
	"github.com/rubyshade/rubyshade/builtins"
	"github.com/rubyshade/rubyshade/internal/diag"
	"github.com/rubyshade/rubyshade/ir"
)

// Inferrer carries the flat symbol table and custom-function map used
// across one pass over an IR tree.
type Inferrer struct {
	symbols         map[string]ir.TypeTag
	customFunctions map[string]CustomFunction
	arrayElemTypes  map[string]ir.TypeTag
}

// New creates an Inferrer, seeding the symbol table with the given
// uniforms plus the two well-known vector parameter names the
// transpiler façade always provides.
func New(uniforms map[string]ir.TypeTag, customFunctions map[string]CustomFunction) *Inferrer {
	symbols := make(map[string]ir.TypeTag, len(uniforms)+2)
	for name, t := range uniforms {
		symbols[name] = t
	}
	symbols["frag_coord"] = ir.Vec(2)
	symbols["resolution"] = ir.Vec(2)

	return &Inferrer{
		symbols:         symbols,
		customFunctions: customFunctions,
		arrayElemTypes:  make(map[string]ir.TypeTag),
	}
}

// Infer runs the pass over block, mutating every node's Type slot in
// place.
func (inf *Inferrer) Infer(block *ir.Block) {
	diag.Logger().Debug("running type inference pass")
	inf.inferBlock(block)
}

func (inf *Inferrer) inferBlock(block *ir.Block) ir.TypeTag {
	var last ir.TypeTag
	for _, stmt := range block.Stmts {
		last = inf.inferNode(stmt)
	}
	block.Type = last
	return last
}

// inferNode infers node and every descendant, mutating Type fields in
// place, and returns the node's own resulting type.
func (inf *Inferrer) inferNode(node ir.Node) ir.TypeTag {
	switch n := node.(type) {
	case *ir.Literal:
		return inf.set(n, inf.literalType(n))
	case *ir.BoolLiteral:
		return inf.set(n, ir.Bool())
	case *ir.VarRef:
		return inf.set(n, inf.lookup(n.Name))
	case *ir.Constant:
		return inf.set(n, ir.Float())
	case *ir.BinaryOp:
		left := inf.inferNode(n.Left)
		right := inf.inferNode(n.Right)
		return inf.set(n, builtins.ResolveBinaryResultType(n.Op, left, right))
	case *ir.UnaryOp:
		operand := inf.inferNode(n.Operand)
		if n.Op == "!" {
			return inf.set(n, ir.Bool())
		}
		return inf.set(n, operand)
	case *ir.FuncCall:
		return inf.set(n, inf.funcCallType(n))
	case *ir.FieldAccess:
		return inf.set(n, inf.fieldAccessType(n))
	case *ir.Swizzle:
		inf.inferNode(n.Receiver)
		return inf.set(n, builtins.SwizzleResultType(len(n.Components)))
	case *ir.Parenthesized:
		return inf.set(n, inf.inferNode(n.Inner))
	case *ir.ArrayLiteral:
		return inf.set(n, inf.arrayLiteralType(n))
	case *ir.ArrayIndex:
		return inf.set(n, inf.arrayIndexType(n))

	case *ir.Block:
		return inf.inferBlock(n)
	case *ir.VarDecl:
		t := inf.inferNode(n.Init)
		inf.symbols[n.Name] = t
		n.Type = t
		return t
	case *ir.Assignment:
		t := inf.inferNode(n.Value)
		if ref, ok := n.Target.(*ir.VarRef); ok {
			inf.symbols[ref.Name] = t
			ref.Type = t
		} else {
			inf.inferNode(n.Target)
		}
		n.Type = t
		return t
	case *ir.MultipleAssignment:
		return inf.multipleAssignmentType(n)
	case *ir.IfStatement:
		inf.inferNode(n.Cond)
		thenType := inf.inferNode(n.Then)
		if n.Else != nil {
			inf.inferNode(n.Else)
		}
		n.Type = thenType
		return thenType
	case *ir.ForLoop:
		inf.inferNode(n.Start)
		inf.inferNode(n.End)
		saved, had := inf.symbols[n.Index]
		inf.symbols[n.Index] = ir.Int()
		inf.inferNode(n.Body)
		if had {
			inf.symbols[n.Index] = saved
		} else {
			delete(inf.symbols, n.Index)
		}
		return ir.TypeTag{}
	case *ir.WhileLoop:
		inf.inferNode(n.Cond)
		inf.inferNode(n.Body)
		return ir.TypeTag{}
	case *ir.Break:
		return ir.TypeTag{}
	case *ir.Return:
		if n.Value != nil {
			t := inf.inferNode(n.Value)
			n.Type = t
			return t
		}
		return ir.TypeTag{}
	case *ir.GlobalDecl:
		return inf.globalDeclType(n)
	case *ir.FunctionDefinition:
		return inf.functionDefinitionType(n)
	default:
		return ir.TypeTag{}
	}
}

func (inf *Inferrer) set(node ir.TypedNode, t ir.TypeTag) ir.TypeTag {
	node.SetTypeTag(t)
	return t
}

func (inf *Inferrer) literalType(lit *ir.Literal) ir.TypeTag {
	if lit.IntSyntax {
		return ir.Int()
	}
	return ir.Float()
}

func (inf *Inferrer) lookup(name string) ir.TypeTag {
	if t, ok := inf.symbols[name]; ok {
		return t
	}
	return ir.Float()
}

func (inf *Inferrer) funcCallType(call *ir.FuncCall) ir.TypeTag {
	var argTypes []ir.TypeTag
	var receiverType ir.TypeTag
	hasReceiver := call.Receiver != nil
	if hasReceiver {
		receiverType = inf.inferNode(call.Receiver)
		argTypes = append(argTypes, receiverType)
	}
	for _, a := range call.Args {
		argTypes = append(argTypes, inf.inferNode(a))
	}

	if sig, ok := builtins.Functions[call.Name]; ok {
		return sig.Return.Resolve(argTypes)
	}
	if custom, ok := inf.customFunctions[call.Name]; ok {
		return custom.Returns
	}
	if hasReceiver {
		return receiverType
	}
	return ir.Float()
}

func (inf *Inferrer) fieldAccessType(fa *ir.FieldAccess) ir.TypeTag {
	inf.inferNode(fa.Receiver)
	if len(fa.Field) == 1 {
		return ir.Float()
	}
	if t, ok := inf.symbols[fa.Field]; ok {
		return t
	}
	return ir.Float()
}

func (inf *Inferrer) arrayLiteralType(lit *ir.ArrayLiteral) ir.TypeTag {
	elem := ir.Float()
	for i, e := range lit.Elements {
		t := inf.inferNode(e)
		if i == 0 {
			elem = t
		}
	}
	return ir.Array(elem)
}

func (inf *Inferrer) arrayIndexType(idx *ir.ArrayIndex) ir.TypeTag {
	arrType := inf.inferNode(idx.Array)
	inf.inferNode(idx.Index)

	if arrType.Kind == ir.TypeArray && arrType.Elem != nil {
		return *arrType.Elem
	}
	if ref, ok := idx.Array.(*ir.VarRef); ok {
		if elem, ok := inf.arrayElemTypes[ref.Name]; ok {
			return elem
		}
	}
	return ir.Float()
}

func (inf *Inferrer) globalDeclType(decl *ir.GlobalDecl) ir.TypeTag {
	var t ir.TypeTag
	if decl.Init != nil {
		t = inf.inferNode(decl.Init)
	}

	if lit, ok := decl.Init.(*ir.ArrayLiteral); ok {
		if decl.ElemType == nil {
			elem := ir.Float()
			if t.Elem != nil {
				elem = *t.Elem
			}
			decl.ElemType = &elem
		}
		if decl.ArraySize == nil {
			size := len(lit.Elements)
			decl.ArraySize = &size
		}
		inf.arrayElemTypes[decl.Name] = *decl.ElemType
		t = ir.Array(*decl.ElemType)
	}

	decl.Type = t
	inf.symbols[decl.Name] = t
	return t
}

func (inf *Inferrer) functionDefinitionType(def *ir.FunctionDefinition) ir.TypeTag {
	savedSymbols := inf.symbols
	inf.symbols = cloneSymbols(savedSymbols)

	if def.ParamTypes == nil {
		def.ParamTypes = make(map[string]ir.TypeTag, len(def.Params))
	}
	for _, p := range def.Params {
		t, ok := def.ParamTypes[p]
		if !ok {
			t = ir.Float()
			def.ParamTypes[p] = t
		}
		inf.symbols[p] = t
	}

	bodyType := inf.inferNode(def.Body)

	inf.symbols = savedSymbols

	if def.ReturnType == nil {
		rt := bodyType
		def.ReturnType = &rt
	}
	return ir.TypeTag{}
}

func cloneSymbols(s map[string]ir.TypeTag) map[string]ir.TypeTag {
	out := make(map[string]ir.TypeTag, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func (inf *Inferrer) multipleAssignmentType(ma *ir.MultipleAssignment) ir.TypeTag {
	sourceType := inf.inferNode(ma.Source)

	switch sourceType.Kind {
	case ir.TypeTuple:
		for i, target := range ma.Targets {
			t := ir.Float()
			if i < len(sourceType.Tuple) {
				t = sourceType.Tuple[i]
			}
			inf.assignTarget(target, t)
		}
	case ir.TypeArray:
		elem := ir.Float()
		if sourceType.Elem != nil {
			elem = *sourceType.Elem
		}
		for _, target := range ma.Targets {
			inf.assignTarget(target, elem)
		}
	default:
		for _, target := range ma.Targets {
			inf.assignTarget(target, ir.Float())
		}
	}

	ma.Type = sourceType
	return sourceType
}

func (inf *Inferrer) assignTarget(target ir.Node, t ir.TypeTag) {
	if ref, ok := target.(*ir.VarRef); ok {
		ref.Type = t
		inf.symbols[ref.Name] = t
	}
}
