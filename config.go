package rubyshade

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rubyshade/rubyshade/infer"
	"github.com/rubyshade/rubyshade/ir"
)

// Options configures one Transpiler instance, per spec.md's
// configuration table: uniforms, custom_functions, target,
// needs_return and (GLSL only) glsl_version.
type Options struct {
	Uniforms        map[string]string                `yaml:"uniforms"`
	CustomFunctions map[string]CustomFunctionOptions `yaml:"custom_functions"`
	Target          string                            `yaml:"target"`
	NeedsReturn     bool                              `yaml:"needs_return"`
	GLSLVersion     string                            `yaml:"glsl_version"`
}

// CustomFunctionOptions is the YAML-friendly shape of infer.CustomFunction:
// type names instead of ir.TypeTag values, resolved when Parse builds
// the inferrer.
type CustomFunctionOptions struct {
	Returns string   `yaml:"returns"`
	Params  []string `yaml:"params"`
}

// LoadOptions decodes a YAML document into Options. Type names are kept
// as strings here; when Parse later resolves them, unknown names in
// uniforms/custom_functions become float, matching the type inferrer's
// own default-to-float behavior.
func LoadOptions(yamlBytes []byte) (Options, error) {
	var opts Options
	if err := yaml.Unmarshal(yamlBytes, &opts); err != nil {
		return Options{}, newConfigurationError(errors.Wrap(err, "decoding transpiler options").Error())
	}
	return opts, nil
}

func namedType(name string) ir.TypeTag {
	switch name {
	case "int":
		return ir.Int()
	case "bool":
		return ir.Bool()
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
	case "sampler2D":
		return ir.TypeTag{Kind: ir.TypeSampler2D}
	default:
		return ir.Float()
	}
}

func (o Options) uniformTypes() map[string]ir.TypeTag {
	if len(o.Uniforms) == 0 {
		return nil
	}
	out := make(map[string]ir.TypeTag, len(o.Uniforms))
	for name, typeName := range o.Uniforms {
		out[name] = namedType(typeName)
	}
	return out
}

func (o Options) customFunctions() map[string]infer.CustomFunction {
	if len(o.CustomFunctions) == 0 {
		return nil
	}
	out := make(map[string]infer.CustomFunction, len(o.CustomFunctions))
	for name, fn := range o.CustomFunctions {
		params := make([]ir.TypeTag, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = namedType(p)
		}
		out[name] = infer.CustomFunction{Returns: namedType(fn.Returns), Params: params}
	}
	return out
}
