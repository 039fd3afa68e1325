package msl

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
		return "float2"
	case ir.TypeVec3:
		return "float3"
	case ir.TypeVec4:
		return "float4"
	case ir.TypeMat2:
		return "float2x2"
	case ir.TypeMat3:
		return "float3x3"
	case ir.TypeMat4:
		return "float4x4"
	case ir.TypeSampler2D:
		return "texture2d<float>"
	case ir.TypeArray:
		elem := "float"
		if t.Elem != nil {
			elem = typeName(*t.Elem)
		}
		return "array<" + elem + ">"
	default:
		return "float"
	}
}
