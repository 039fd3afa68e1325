package glsl

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

func TestVersionDirective(t *testing.T) {
	out := compile(t, "x = 1.0\nreturn x", true)
	require.Contains(t, out, "#version 330 core")
}

func TestVec3ConstructionPassesThrough(t *testing.T) {
	out := compile(t, "color = vec3(1.0, 0.0, 0.0)\nreturn color", true)
	require.Contains(t, out, "vec3(1.0, 0.0, 0.0)")
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
