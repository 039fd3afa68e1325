package wgsl

import "github.com/rubyshade/rubyshade/ir"

func typeName(t ir.TypeTag) string {
	switch t.Kind {
	case ir.TypeFloat:
		return "f32"
	case ir.TypeInt:
		return "i32"
	case ir.TypeBool:
		return "bool"
	case ir.TypeVec2:
		return "vec2<f32>"
	case ir.TypeVec3:
		return "vec3<f32>"
	case ir.TypeVec4:
		return "vec4<f32>"
	case ir.TypeMat2:
		return "mat2x2<f32>"
	case ir.TypeMat3:
		return "mat3x3<f32>"
	case ir.TypeMat4:
		return "mat4x4<f32>"
	case ir.TypeSampler2D:
		return "texture_2d<f32>"
	case ir.TypeArray:
		elem := "f32"
		if t.Elem != nil {
			elem = typeName(*t.Elem)
		}
		return "array<" + elem + ">"
	default:
		return "f32"
	}
}
