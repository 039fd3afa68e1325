package msl

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

// BinaryOp renders infix everywhere: MSL overloads arithmetic on its
// vector/matrix types.
func (hooks) BinaryOp(op string, _, _ ir.TypeTag, left, right string) string {
	return left + " " + op + " " + right
}

// Call keeps builtin names as-is: MSL overloads sin/cos/sqrt/... the
// same way GLSL does.
func (hooks) Call(name string, _ []ir.TypeTag, args []string) string {
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

// TextureSample renders the well-known sampler object as a method
// call on the receiver texture, per the textureSampler convention.
func (hooks) TextureSample(receiver string, args []string) string {
	all := append([]string{"textureSampler"}, args...)
	return fmt.Sprintf("%s.sample(%s)", receiver, strings.Join(all, ", "))
}

func (hooks) NumberSuffix() string { return "" }

func (hooks) BoolLiteral(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
