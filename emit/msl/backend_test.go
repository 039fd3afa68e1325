package msl

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

func TestVec3Construction(t *testing.T) {
	out := compile(t, "color = vec3(1.0, 0.0, 0.0)\nreturn color", true)
	require.Contains(t, out, "float3(1.0, 0.0, 0.0)")
}

func TestSinKeepsOverloadedName(t *testing.T) {
	out := compile(t, "x = sin(0.5)\nreturn x", true)
	require.Contains(t, out, "sin(0.5)")
}

func TestIfElsifElseChain(t *testing.T) {
	out := compile(t, "if x > 0 then\ny = 1.0\nelsif x < 0 then\ny = -1.0\nelse\ny = 0.0\nend", false)
	require.Contains(t, out, "if (x > 0")
	require.Contains(t, out, "} else if (x < 0")
	require.Contains(t, out, "} else {")
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
	require.Contains(t, out, "split_result _multi = split(v);")
	require.Contains(t, out, "a = _multi.v0;")
	require.Contains(t, out, "b = _multi.v1;")
}
