package base

import "github.com/rubyshade/rubyshade/ir"

// Hooks supplies the handful of things that differ per target dialect.
// Everything else — statement structure, tail-return lifting, tuple and
// multi-assignment lowering, indentation — is shared in this package.
type Hooks interface {
	// TypeName returns the dialect's spelling for t (e.g. "vec3",
	// "float3", "vec3<f32>").
	TypeName(t ir.TypeTag) string

	// Constructor returns a vector/matrix/array construction expression
	// given the already-rendered argument strings.
	Constructor(t ir.TypeTag, args []string) string

	// BinaryOp renders a binary operation given the already-rendered
	// operand strings and their inferred types. Most dialects render
	// infix; C renders vector/matrix arithmetic as a function call.
	BinaryOp(op string, leftType, rightType ir.TypeTag, left, right string) string

	// Call renders a builtin or user function call given the callee
	// name, the inferred types of its (already-rendered) arguments, and
	// those rendered argument strings. Lets a dialect rewrite a name
	// (e.g. "sin" -> "sinf") or specialize it by argument shape (e.g.
	// "length" -> "vec3_length" for a vector argument).
	Call(name string, argTypes []ir.TypeTag, args []string) string

	// TextureSample renders a texture lookup given the already-rendered
	// receiver and argument strings.
	TextureSample(receiver string, args []string) string

	// NumberSuffix is appended to every floating-point literal (e.g.
	// "f" for C, "" for MSL/WGSL/GLSL).
	NumberSuffix() string

	// BoolLiteral renders a boolean literal (e.g. "true"/"false", or
	// C's "1"/"0").
	BoolLiteral(value bool) string

	// VarDeclLine renders a local variable declaration/initialization.
	VarDeclLine(name, typeName, value string) string

	// GlobalDeclLine renders a file-scope declaration.
	GlobalDeclLine(name, typeName, value string, isConst bool) string

	// ForHeaderLine renders a counted for-loop's header (everything
	// up to and including the opening brace).
	ForHeaderLine(index, startExpr, endExpr string) string

	// ReturnLine renders a return statement; value is "" for a bare
	// return.
	ReturnLine(value string) string

	// FunctionHeaderLine renders a function signature's opening line,
	// given the already-rendered return type, parameter list, and name.
	FunctionHeaderLine(name, returnType string, params []Param) string

	// TupleReturnLine renders a return statement whose value is a
	// tuple-return struct literal, given the synthesized struct name
	// and the already-rendered component expressions.
	TupleReturnLine(structName string, elems []string) string

	// StructFieldLine renders one field of a tuple-return struct
	// definition.
	StructFieldLine(fieldName, typeName string) string
}

// Param is a single rendered function parameter.
type Param struct {
	Name     string
	TypeName string
}
