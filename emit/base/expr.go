package base

import (
	"strings"

	"github.com/rubyshade/rubyshade/ir"
)

// WriteExpr renders node as a single expression string. parentOp is
// the operator of the enclosing expression (empty if node sits at
// statement level), used to decide whether node needs wrapping
// parentheses per the shared precedence table.
func WriteExpr(hooks Hooks, node ir.Node, parentOp string) string {
	switch n := node.(type) {
	case *ir.Literal:
		return FormatNumber(n.Value, n.IntSyntax, numberSuffixFor(n.IntSyntax, hooks))
	case *ir.BoolLiteral:
		return hooks.BoolLiteral(n.Value)
	case *ir.VarRef:
		return n.Name
	case *ir.Constant:
		return n.Name
	case *ir.BinaryOp:
		left := WriteExpr(hooks, n.Left, n.Op)
		right := WriteExpr(hooks, n.Right, n.Op)
		rendered := hooks.BinaryOp(n.Op, typeTagOf(n.Left), typeTagOf(n.Right), left, right)
		if NeedsParens(parentOp, n.Op) {
			return "(" + rendered + ")"
		}
		return rendered
	case *ir.UnaryOp:
		operand := WriteExpr(hooks, n.Operand, "unary")
		return n.Op + operand
	case *ir.FuncCall:
		return writeCall(hooks, n)
	case *ir.FieldAccess:
		return WriteExpr(hooks, n.Receiver, "") + "." + n.Field
	case *ir.Swizzle:
		return WriteExpr(hooks, n.Receiver, "") + "." + n.Components
	case *ir.Parenthesized:
		return "(" + WriteExpr(hooks, n.Inner, "") + ")"
	case *ir.ArrayLiteral:
		return writeArrayLiteral(hooks, n)
	case *ir.ArrayIndex:
		return WriteExpr(hooks, n.Array, "") + "[" + WriteExpr(hooks, n.Index, "") + "]"
	default:
		return ""
	}
}

func numberSuffixFor(intSyntax bool, hooks Hooks) string {
	if intSyntax {
		return ""
	}
	return hooks.NumberSuffix()
}

func writeCall(hooks Hooks, n *ir.FuncCall) string {
	if isTextureFunction(n.Name) {
		return hooks.TextureSample(WriteExpr(hooks, n.Receiver, ""), argsWithoutReceiver(hooks, n))
	}
	if isConstructorName(n.Name) {
		return hooks.Constructor(returnTagOrElse(n, n.Name), argsWithoutReceiver(hooks, n))
	}

	var argTypes []ir.TypeTag
	var args []string
	if n.Receiver != nil {
		argTypes = append(argTypes, typeTagOf(n.Receiver))
		args = append(args, WriteExpr(hooks, n.Receiver, ""))
	}
	for _, a := range n.Args {
		argTypes = append(argTypes, typeTagOf(a))
		args = append(args, WriteExpr(hooks, a, ""))
	}
	return hooks.Call(n.Name, argTypes, args)
}

func argsWithoutReceiver(hooks Hooks, n *ir.FuncCall) []string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = WriteExpr(hooks, a, "")
	}
	return args
}

func isTextureFunction(name string) bool {
	switch name {
	case "sample", "texture", "texture2D", "textureLod":
		return true
	default:
		return false
	}
}

func isConstructorName(name string) bool {
	switch name {
	case "vec2", "vec3", "vec4", "mat2", "mat3", "mat4":
		return true
	default:
		return false
	}
}

func returnTagOrElse(n *ir.FuncCall, name string) ir.TypeTag {
	if tn, ok := ir.Node(n).(ir.TypedNode); ok {
		if t := tn.TypeTag(); t.Kind != ir.TypeUndefined {
			return t
		}
	}
	switch name {
	case "vec2":
		return ir.Vec(2)
	case "vec3":
		return ir.Vec(3)
	case "vec4":
		return ir.Vec(4)
	case "mat2":
		return ir.Mat(2)
	case "mat3":
		return ir.Mat(3)
	case "mat4":
		return ir.Mat(4)
	default:
		return ir.Float()
	}
}

func writeArrayLiteral(hooks Hooks, n *ir.ArrayLiteral) string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = WriteExpr(hooks, e, "")
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
