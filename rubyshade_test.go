package rubyshade

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func emitAll(t *testing.T, source string, needsReturn bool) map[string]string {
	t.Helper()
	out := make(map[string]string, 4)
	for _, target := range []string{"c", "msl", "wgsl", "glsl"} {
		tr := New(Options{})
		require.NoError(t, tr.Parse(source))
		rendered, err := tr.Emit(target, needsReturn)
		require.NoError(t, err)
		out[target] = rendered
	}
	return out
}

func TestScenarioVec3Construction(t *testing.T) {
	out := emitAll(t, "color = vec3(1.0, 0.0, 0.0)\nreturn color", true)
	require.Contains(t, out["c"], "vec3_new(1.0f, 0.0f, 0.0f)")
	require.Contains(t, out["c"], "return color")
	require.Contains(t, out["msl"], "float3(1.0, 0.0, 0.0)")
	require.Contains(t, out["wgsl"], "vec3<f32>(1.0, 0.0, 0.0)")
	require.Contains(t, out["wgsl"], "let color")
	require.Contains(t, out["glsl"], "vec3(1.0, 0.0, 0.0)")
}

func TestScenarioVectorAddition(t *testing.T) {
	out := emitAll(t, "a = vec2(1.0, 2.0)\nb = a + a\nreturn b", true)
	require.Contains(t, out["c"], "vec2_add(a, a)")
}

func TestScenarioSinRewrite(t *testing.T) {
	out := emitAll(t, "x = sin(0.5)\nreturn x", true)
	require.Contains(t, out["c"], "sinf(0.5f)")
	require.Contains(t, out["glsl"], "sin(0.5)")
	require.Contains(t, out["msl"], "sin(0.5)")
	require.Contains(t, out["wgsl"], "sin(0.5)")
}

func TestScenarioElsifChain(t *testing.T) {
	src := "if x > 0 then y = 1.0 elsif x < 0 then y = -1.0 else y = 0.0 end\nreturn y"
	out := emitAll(t, src, true)
	for _, target := range []string{"c", "msl", "wgsl", "glsl"} {
		require.Contains(t, out[target], "if (x > 0")
		require.Contains(t, out[target], "else if (x < 0")
		require.Contains(t, out[target], "else {")
	}
}

func TestScenarioSwizzle(t *testing.T) {
	out := emitAll(t, "v = vec3(1.0, 2.0, 3.0)\nreturn v.xy", true)
	for _, target := range []string{"c", "msl", "wgsl", "glsl"} {
		require.Contains(t, out[target], "v.xy")
	}
}

func TestScenarioForLoopBounds(t *testing.T) {
	src := "for i in 0..10 do\n  x = i\nend\nreturn x"
	out := emitAll(t, src, true)
	require.Contains(t, out["c"], "0")
	require.Contains(t, out["c"], "10")
	require.Contains(t, out["wgsl"], "var i: i32")
}

func TestEmitBeforeParseIsInternalError(t *testing.T) {
	tr := New(Options{})
	_, err := tr.Emit("c", true)
	var internalErr *InternalError
	require.ErrorAs(t, err, &internalErr)
}

func TestUnknownTargetIsConfigurationError(t *testing.T) {
	tr := New(Options{})
	require.NoError(t, tr.Parse("x = 1.0\nreturn x"))
	_, err := tr.Emit("hlsl", true)
	var configErr *ConfigurationError
	require.ErrorAs(t, err, &configErr)
}

func TestInvalidSourceIsParseError(t *testing.T) {
	tr := New(Options{})
	err := tr.Parse("if then end end end")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestTranspileHelpersAppliesSignatures(t *testing.T) {
	src := "def add(a, b)\n  a + b\nend"
	out, err := TranspileHelpers(src, "c", map[string]FunctionSignature{
		"add": {Returns: "float", Params: []string{"float", "float"}},
	})
	require.NoError(t, err)
	require.Contains(t, out, "float add(float a, float b) {")
	require.Contains(t, out, "return a + b;")
}

func TestGLSLVersionOption(t *testing.T) {
	tr := New(Options{GLSLVersion: "300 es"})
	require.NoError(t, tr.Parse("x = 1.0\nreturn x"))
	out, err := tr.Emit("glsl", true)
	require.NoError(t, err)
	require.Contains(t, out, "#version 300 es")
}

func TestUniformsSeedSymbolTable(t *testing.T) {
	tr := New(Options{Uniforms: map[string]string{"time": "float"}})
	require.NoError(t, tr.Parse("x = time * 2.0\nreturn x"))
	out, err := tr.Emit("glsl", true)
	require.NoError(t, err)
	require.Contains(t, out, "time")
}

func TestLoadOptionsFromYAML(t *testing.T) {
	doc := []byte("target: glsl\nneeds_return: true\nglsl_version: \"410\"\nuniforms:\n  time: float\n")
	opts, err := LoadOptions(doc)
	require.NoError(t, err)
	require.Equal(t, "glsl", opts.Target)
	require.True(t, opts.NeedsReturn)
	require.Equal(t, "410", opts.GLSLVersion)
	require.Equal(t, "float", opts.Uniforms["time"])
}
