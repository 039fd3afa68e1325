// Package rubyshade transpiles a Ruby-flavored shader DSL into
// portable C, Metal Shading Language, WebGPU Shading Language or
// OpenGL Shading Language. A Transpiler composes the three pipeline
// stages — frontend parse, type inference, target emission — the same
// way naga's root package composes Parse/Lower/GenerateSPIRV: each
// stage stays independently importable, and the façade just wires
// them together.
package rubyshade

import (
	"fmt"

	"github.com/rubyshade/rubyshade/emit/c"
	"github.com/rubyshade/rubyshade/emit/glsl"
	"github.com/rubyshade/rubyshade/emit/msl"
	"github.com/rubyshade/rubyshade/emit/wgsl"
	"github.com/rubyshade/rubyshade/frontend"
	"github.com/rubyshade/rubyshade/infer"
	"github.com/rubyshade/rubyshade/internal/diag"
	"github.com/rubyshade/rubyshade/ir"
)

// FunctionSignature is a caller-supplied type annotation for a
// top-level function, used by TranspileHelpers when inference alone
// can't determine a helper's signature from its call sites.
type FunctionSignature struct {
	Returns string
	Params  []string
}

// Transpiler holds one transpile session's configuration and, once
// Parse has run, its resulting IR. Per spec.md's concurrency model it
// owns no state that survives past a single parse/emit cycle and
// shares nothing with other instances.
type Transpiler struct {
	opts Options
	ir   *ir.Block
}

// New creates a Transpiler configured by opts.
func New(opts Options) *Transpiler {
	return &Transpiler{opts: opts}
}

// Parse runs the frontend and type inference stages, seeding the
// inference symbol table with the configured uniforms plus
// frag_coord/resolution → vec2.
func (t *Transpiler) Parse(source string) error {
	uniformNames := make([]string, 0, len(t.opts.Uniforms))
	for name := range t.opts.Uniforms {
		uniformNames = append(uniformNames, name)
	}

	block, err := frontend.Parse(source, uniformNames...)
	if err != nil {
		return newParseError(err.Error(), err)
	}

	inferrer := infer.New(t.opts.uniformTypes(), t.opts.customFunctions())
	inferrer.Infer(block)

	t.ir = block
	return nil
}

// Emit renders the most recently parsed IR in the named target
// dialect. It fails with a ConfigurationError if target isn't one of
// {c, msl, wgsl, glsl}, and with an InternalError if called before a
// successful Parse.
func (t *Transpiler) Emit(target string, needsReturn bool) (string, error) {
	if t.ir == nil {
		return "", newInternalError("emit called before parse")
	}

	diag.Logger().Debugf("transpile target=%s needs_return=%v", target, needsReturn)

	switch target {
	case "c":
		return c.Compile(t.ir, c.Options{NeedsReturn: needsReturn})
	case "msl":
		return msl.Compile(t.ir, msl.Options{NeedsReturn: needsReturn})
	case "wgsl":
		return wgsl.Compile(t.ir, wgsl.Options{NeedsReturn: needsReturn})
	case "glsl":
		return glsl.Compile(t.ir, glsl.Options{NeedsReturn: needsReturn, Version: t.opts.GLSLVersion})
	default:
		return "", newConfigurationError(fmt.Sprintf("unknown target %q; expected one of c, msl, wgsl, glsl", target))
	}
}

// TranspileHelpers parses source, applies the caller-supplied
// signature map to each top-level FunctionDefinition's ReturnType and
// ParamTypes, infers the rest of the tree, and emits with
// needs_return=false — the pathway for emitting a library of named
// helper functions rather than one fragment-shader-shaped body.
// Unknown function names in sigs are silently skipped.
func TranspileHelpers(source, target string, sigs map[string]FunctionSignature) (string, error) {
	block, err := frontend.Parse(source)
	if err != nil {
		return "", newParseError(err.Error(), err)
	}

	for _, stmt := range block.Stmts {
		def, ok := stmt.(*ir.FunctionDefinition)
		if !ok {
			continue
		}
		sig, ok := sigs[def.Name]
		if !ok {
			continue
		}
		returns := namedType(sig.Returns)
		def.ReturnType = &returns

		paramTypes := make(map[string]ir.TypeTag, len(def.Params))
		for i, name := range def.Params {
			if i < len(sig.Params) {
				paramTypes[name] = namedType(sig.Params[i])
			}
		}
		def.ParamTypes = paramTypes
	}

	infer.New(nil, nil).Infer(block)

	t := &Transpiler{ir: block}
	return t.Emit(target, false)
}
