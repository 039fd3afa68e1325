package glsl

import "github.com/rubyshade/rubyshade/ir"

func typeName(t ir.TypeTag) string {
	switch t.Kind {
	case ir.TypeFloat:
		return "float"
	case ir.TypeInt:
		return "int"
	case ir.TypeBool:
		return "bool"
	case ir.TypeVec2:
		return "vec2"
	case ir.TypeVec3:
		return "vec3"
	case ir.TypeVec4:
		return "vec4"
	case ir.TypeMat2:
		return "mat2"
	case ir.TypeMat3:
		return "mat3"
	case ir.TypeMat4:
		return "mat4"
	case ir.TypeSampler2D:
		return "sampler2D"
	case ir.TypeArray:
		elem := "float"
		if t.Elem != nil {
			elem = typeName(*t.Elem)
		}
		return elem + "[]"
	default:
		return "float"
	}
}
