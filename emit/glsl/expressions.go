package glsl

import (
	"fmt"
	"strings"

	"github.com/rubyshade/rubyshade/emit/base"
	"github.com/rubyshade/rubyshade/ir"
)

type hooks struct{}

var _ base.Hooks = hooks{}

func (hooks) TypeName(t ir.TypeTag) string { return typeName(t) }

func (hooks) Constructor(t ir.TypeTag, args []string) string {
	return fmt.Sprintf("%s(%s)", typeName(t), strings.Join(args, ", "))
}

func (hooks) BinaryOp(op string, _, _ ir.TypeTag, left, right string) string {
	return left + " " + op + " " + right
}

func (hooks) Call(name string, _ []ir.TypeTag, args []string) string {
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

func (hooks) TextureSample(receiver string, args []string) string {
	all := append([]string{receiver}, args...)
	return fmt.Sprintf("texture2D(%s)", strings.Join(all, ", "))
}

func (hooks) NumberSuffix() string { return "" }

func (hooks) BoolLiteral(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
