package c

import (
	"fmt"
	"strings"

	"github.com/rubyshade/rubyshade/ir"
)

func (hooks) TypeName(t ir.TypeTag) string { return typeName(t) }

func (hooks) Constructor(t ir.TypeTag, args []string) string {
	return fmt.Sprintf("%s_new(%s)", typeName(t), strings.Join(args, ", "))
}

// BinaryOp renders scalar arithmetic infix but vector/matrix
// arithmetic as a function call, since C has no operator overloading.
func (hooks) BinaryOp(op string, leftType, rightType ir.TypeTag, left, right string) string {
	if fn, ok := vectorOpNames[op]; ok {
		vecType := leftType
		if !vecType.IsVector() && !vecType.IsMatrix() {
			vecType = rightType
		}
		if vecType.IsVector() || vecType.IsMatrix() {
			return fmt.Sprintf("%s_%s(%s, %s)", typeName(vecType), fn, left, right)
		}
	}
	return left + " " + op + " " + right
}

// Call rewrites math builtins to their f-suffixed C names and
// specializes length/normalize/dot/mix by argument shape.
func (hooks) Call(name string, argTypes []ir.TypeTag, args []string) string {
	firstIsVector := len(argTypes) > 0 && (argTypes[0].IsVector() || argTypes[0].IsMatrix())

	switch name {
	case "length", "normalize", "dot", "cross":
		if firstIsVector {
			return fmt.Sprintf("%s_%s(%s)", typeName(argTypes[0]), name, strings.Join(args, ", "))
		}
	case "mix":
		if firstIsVector {
			return fmt.Sprintf("mix_%s(%s)", typeName(argTypes[0]), strings.Join(args, ", "))
		}
	}

	if fn, ok := fMathNames[name]; ok {
		return fmt.Sprintf("%s(%s)", fn, strings.Join(args, ", "))
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

func (hooks) TextureSample(receiver string, args []string) string {
	return fmt.Sprintf("texture_sample(%s, %s)", receiver, strings.Join(args, ", "))
}

func (hooks) NumberSuffix() string { return "f" }

func (hooks) BoolLiteral(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
