package builtins

import (
	"testing"

	"github.com/rubyshade/rubyshade/ir"
	"github.com/stretchr/testify/require"
)

func TestResolveBinaryResultType(t *testing.T) {
	cases := []struct {
		name        string
		op          string
		left, right ir.TypeTag
		want        ir.TypeTag
	}{
		{"comparison is bool", "<", ir.Vec(3), ir.Vec(3), ir.Bool()},
		{"logical is bool", "&&", ir.Bool(), ir.Bool(), ir.Bool()},
		{"matrix times vector", "*", ir.Mat(3), ir.Vec(3), ir.Vec(3)},
		{"vector times matrix", "*", ir.Vec(4), ir.Mat(4), ir.Vec(4)},
		{"matrix times matrix", "*", ir.Mat(3), ir.Mat(3), ir.Mat(3)},
		{"matrix times scalar", "*", ir.Mat(2), ir.Float(), ir.Mat(2)},
		{"scalar times matrix", "*", ir.Float(), ir.Mat(2), ir.Mat(2)},
		{"vector plus vector", "+", ir.Vec(2), ir.Vec(2), ir.Vec(2)},
		{"vector times scalar", "*", ir.Vec(3), ir.Float(), ir.Vec(3)},
		{"scalar times vector", "*", ir.Float(), ir.Vec(3), ir.Vec(3)},
		{"scalar fallback", "+", ir.Float(), ir.Int(), ir.Float()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ResolveBinaryResultType(c.op, c.left, c.right)
			require.Equal(t, c.want.Kind, got.Kind)
		})
	}
}

func TestReturnRuleResolve(t *testing.T) {
	args := []ir.TypeTag{ir.Vec(2), ir.Float(), ir.Bool()}
	require.Equal(t, ir.TypeVec2, sameRule().Resolve(args).Kind)
	require.Equal(t, ir.TypeFloat, argRule(RuleSecond).Resolve(args).Kind)
	require.Equal(t, ir.TypeBool, argRule(RuleThird).Resolve(args).Kind)
	require.Equal(t, ir.TypeVec4, concreteRule(ir.Vec(4)).Resolve(args).Kind)
	require.Equal(t, ir.TypeFloat, argRule(RuleThird).Resolve(nil).Kind, "missing arg defaults to float")
}

func TestSwizzleClassification(t *testing.T) {
	require.True(t, IsSwizzleLetter('x'))
	require.False(t, IsSwizzleLetter('k'))
	require.True(t, IsSwizzleName("xyz"))
	require.False(t, IsSwizzleName("xy1"))
	require.Equal(t, ir.TypeVec2, SwizzleResultType(2).Kind)
	require.Equal(t, ir.TypeVec4, SwizzleResultType(4).Kind)
}

func TestPrecedenceOrdering(t *testing.T) {
	require.Less(t, Precedence("||"), Precedence("&&"))
	require.Less(t, Precedence("&&"), Precedence("=="))
	require.Less(t, Precedence("=="), Precedence("<"))
	require.Less(t, Precedence("<"), Precedence("+"))
	require.Less(t, Precedence("+"), Precedence("*"))
}

func TestFunctionTableCoversRequiredNames(t *testing.T) {
	required := []string{
		"vec2", "vec3", "vec4", "mat2", "mat3", "mat4",
		"sin", "cos", "pow", "mix", "clamp",
		"length", "distance", "dot", "cross", "normalize", "reflect", "refract",
		"inverse", "transpose", "determinant",
		"texture2D", "texture", "textureLod",
	}
	for _, name := range required {
		_, ok := Functions[name]
		require.True(t, ok, "missing builtin %q", name)
	}
}
