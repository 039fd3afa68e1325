package base

import (
	"testing"

	"github.com/rubyshade/rubyshade/ir"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "1.0", FormatNumber(1, false, ""))
	require.Equal(t, "1.0f", FormatNumber(1, false, "f"))
	require.Equal(t, "3", FormatNumber(3, true, ""))
	require.Equal(t, "1.5", FormatNumber(1.5, false, ""))
}

func TestNeedsParens(t *testing.T) {
	require.True(t, NeedsParens("*", "+"))
	require.False(t, NeedsParens("+", "*"))
	require.False(t, NeedsParens("", "+"))
}

func TestLiftTailReturnWrapsBareExpression(t *testing.T) {
	block := &ir.Block{Stmts: []ir.Node{
		&ir.VarDecl{Name: "a", Init: &ir.Literal{Value: 1}},
		&ir.BinaryOp{Op: "+", Left: &ir.VarRef{Name: "a"}, Right: &ir.VarRef{Name: "a"}},
	}}
	lifted := LiftTailReturn(block)
	require.Len(t, lifted.Stmts, 2)
	ret, ok := lifted.Stmts[1].(*ir.Return)
	require.True(t, ok)
	require.NotNil(t, ret.Value)

	// original untouched
	_, stillBinary := block.Stmts[1].(*ir.BinaryOp)
	require.True(t, stillBinary)
}

func TestLiftTailReturnPassesThroughDeclsAndReturns(t *testing.T) {
	block := &ir.Block{Stmts: []ir.Node{
		&ir.VarDecl{Name: "a", Init: &ir.Literal{Value: 1}},
	}}
	lifted := LiftTailReturn(block)
	_, ok := lifted.Stmts[0].(*ir.VarDecl)
	require.True(t, ok)

	block2 := &ir.Block{Stmts: []ir.Node{&ir.Return{Value: &ir.Literal{Value: 1}}}}
	lifted2 := LiftTailReturn(block2)
	_, ok2 := lifted2.Stmts[0].(*ir.Return)
	require.True(t, ok2)
}

func TestLiftTailReturnRecursesIntoIfBranches(t *testing.T) {
	ifStmt := &ir.IfStatement{
		Cond: &ir.BoolLiteral{Value: true},
		Then: &ir.Block{Stmts: []ir.Node{&ir.VarRef{Name: "a"}}},
		Else: &ir.Block{Stmts: []ir.Node{&ir.VarRef{Name: "b"}}},
	}
	block := &ir.Block{Stmts: []ir.Node{ifStmt}}
	lifted := LiftTailReturn(block)

	liftedIf := lifted.Stmts[0].(*ir.IfStatement)
	_, thenIsReturn := liftedIf.Then.Stmts[0].(*ir.Return)
	require.True(t, thenIsReturn)

	elseBlock := liftedIf.Else.(*ir.Block)
	_, elseIsReturn := elseBlock.Stmts[0].(*ir.Return)
	require.True(t, elseIsReturn)
}

type stubHooks struct{}

func (stubHooks) TypeName(t ir.TypeTag) string                            { return t.String() }
func (stubHooks) Constructor(t ir.TypeTag, args []string) string          { return t.String() }
func (stubHooks) BinaryOp(op string, _, _ ir.TypeTag, l, r string) string { return l + op + r }
func (stubHooks) Call(name string, argTypes []ir.TypeTag, args []string) string { return name }
func (stubHooks) TextureSample(receiver string, args []string) string    { return receiver }
func (stubHooks) NumberSuffix() string                                   { return "" }
func (stubHooks) BoolLiteral(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
func (stubHooks) VarDeclLine(name, typeName, value string) string        { return typeName + " " + name + " = " + value + ";" }
func (stubHooks) GlobalDeclLine(name, typeName, value string, isConst bool) string {
	return typeName + " " + name + " = " + value + ";"
}
func (stubHooks) ForHeaderLine(index, startExpr, endExpr string) string {
	return "for " + index
}
func (stubHooks) ReturnLine(value string) string { return "return " + value + ";" }
func (stubHooks) FunctionHeaderLine(name, returnType string, params []Param) string {
	return returnType + " " + name + "(...) {"
}
func (stubHooks) StructFieldLine(fieldName, typeName string) string {
	return typeName + " " + fieldName + ";"
}
func (stubHooks) TupleReturnLine(structName string, elems []string) string {
	out := "return (" + structName + "){"
	for i, e := range elems {
		if i > 0 {
			out += ", "
		}
		out += e
	}
	return out + "};"
}

func TestWriteTupleStruct(t *testing.T) {
	w := &Writer{}
	WriteTupleStruct(w, stubHooks{}, "split_result", []ir.TypeTag{ir.Float(), ir.Vec(2)})
	out := w.String()
	require.Contains(t, out, "struct split_result {")
	require.Contains(t, out, "v0;")
	require.Contains(t, out, "v1;")
}

func TestPlanMultiAssignTuple(t *testing.T) {
	ma := &ir.MultipleAssignment{
		Targets: []ir.Node{&ir.VarRef{Name: "a"}, &ir.VarRef{Name: "b"}},
		Source:  &ir.FuncCall{Name: "split"},
	}
	ma.Source.(*ir.FuncCall).SetTypeTag(ir.Tuple(ir.Float(), ir.Vec(2)))

	plan := PlanMultiAssign(ma, "tmp")
	require.True(t, plan.IsTupleSrc)
	require.Equal(t, []string{"a", "b"}, plan.Names)
	fa, ok := plan.Accessors[0].(*ir.FieldAccess)
	require.True(t, ok)
	require.Equal(t, "v0", fa.Field)
}

func TestWriteMultipleAssignmentFromTupleCallDeclaresStructTemp(t *testing.T) {
	call := &ir.FuncCall{Name: "split"}
	call.SetTypeTag(ir.Tuple(ir.Float(), ir.Vec(2)))
	ma := &ir.MultipleAssignment{
		Targets: []ir.Node{&ir.VarRef{Name: "a"}, &ir.VarRef{Name: "b"}},
		Source:  call,
	}

	w := &Writer{}
	WriteStmt(w, stubHooks{}, ma)
	out := w.String()
	require.Contains(t, out, "split_result _multi")
	require.NotContains(t, out, "float _multi")
}

func TestWriteIfRendersElseIfChainFlat(t *testing.T) {
	stmt := &ir.IfStatement{
		Cond: &ir.BoolLiteral{Value: true},
		Then: &ir.Block{Stmts: []ir.Node{&ir.Break{}}},
		Else: &ir.IfStatement{
			Cond: &ir.BoolLiteral{Value: false},
			Then: &ir.Block{Stmts: []ir.Node{&ir.Break{}}},
			Else: &ir.Block{Stmts: []ir.Node{&ir.Break{}}},
		},
	}
	w := &Writer{}
	WriteStmt(w, stubHooks{}, stmt)
	out := w.String()
	require.Contains(t, out, "if (")
	require.Contains(t, out, "} else if (")
	require.Contains(t, out, "} else {")
}

func TestWriteFunctionTupleReturnSynthesizesStruct(t *testing.T) {
	tupleType := ir.Tuple(ir.Float(), ir.Vec(2))
	def := &ir.FunctionDefinition{
		Name:       "split",
		Params:     []string{"v"},
		ParamTypes: map[string]ir.TypeTag{"v": ir.Vec(3)},
		ReturnType: &tupleType,
		Body: &ir.Block{Stmts: []ir.Node{
			&ir.ArrayLiteral{Elements: []ir.Node{&ir.Literal{Value: 1}, &ir.VarRef{Name: "v"}}},
		}},
	}
	w := &Writer{}
	WriteFunction(w, stubHooks{}, def)
	out := w.String()
	require.Contains(t, out, "struct split_result {")
	require.Contains(t, out, "split_result split")
	require.Contains(t, out, "return (split_result){")
}

func TestPlanMultiAssignArray(t *testing.T) {
	ma := &ir.MultipleAssignment{
		Targets: []ir.Node{&ir.VarRef{Name: "a"}, &ir.VarRef{Name: "b"}},
		Source:  &ir.VarRef{Name: "arr"},
	}
	ma.Source.(*ir.VarRef).SetTypeTag(ir.Array(ir.Float()))

	plan := PlanMultiAssign(ma, "tmp")
	require.False(t, plan.IsTupleSrc)
	idx, ok := plan.Accessors[1].(*ir.ArrayIndex)
	require.True(t, ok)
	lit := idx.Index.(*ir.Literal)
	require.Equal(t, float64(1), lit.Value)
}
