package wgsl

import (
	"testing"

	"github.com/rubyshade/rubyshade/frontend"
	"github.com/rubyshade/rubyshade/infer"
	"github.com/rubyshade/rubyshade/ir"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, src string, needsReturn bool) string {
	t.Helper()
	block, err := frontend.Parse(src)
	require.NoError(t, err)
	infer.New(nil, nil).Infer(block)
	out, err := Compile(block, Options{NeedsReturn: needsReturn})
	require.NoError(t, err)
	return out
}

func TestVec3ConstructionAndLet(t *testing.T) {
	out := compile(t, "color = vec3(1.0, 0.0, 0.0)\nreturn color", true)
	require.Contains(t, out, "vec3<f32>(1.0, 0.0, 0.0)")
	require.Contains(t, out, "let color")
}

func TestForLoopHeaderSyntax(t *testing.T) {
	out := compile(t, "for i in 0..10 do\nx = i\nend\nreturn x", true)
	require.Contains(t, out, "for (var i: i32 = 0; i < 10; i++) {")
}

func TestTupleMultiAssignmentDistributesFieldsInOrder(t *testing.T) {
	block, err := frontend.Parse("a, b = split(v)", "v")
	require.NoError(t, err)
	custom := map[string]infer.CustomFunction{
		"split": {Returns: ir.Tuple(ir.Float(), ir.Vec(2))},
	}
	infer.New(nil, custom).Infer(block)

	out, err := Compile(block, Options{NeedsReturn: false})
	require.NoError(t, err)
	require.Contains(t, out, "let _multi: split_result = split(v);")
	require.Contains(t, out, "a = _multi.v0;")
	require.Contains(t, out, "b = _multi.v1;")
}
