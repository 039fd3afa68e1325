package ir

import "strings"

// TypeKind enumerates the concrete shapes a TypeTag can take.
type TypeKind uint8

const (
	TypeUndefined TypeKind = iota
	TypeFloat
	TypeInt
	TypeBool
	TypeVec2
	TypeVec3
	TypeVec4
	TypeMat2
	TypeMat3
	TypeMat4
	TypeSampler2D
	TypeArray
	TypeTuple
)

var typeKindNames = map[TypeKind]string{
	TypeUndefined: "undefined",
	TypeFloat:     "float",
	TypeInt:       "int",
	TypeBool:      "bool",
	TypeVec2:      "vec2",
	TypeVec3:      "vec3",
	TypeVec4:      "vec4",
	TypeMat2:      "mat2",
	TypeMat3:      "mat3",
	TypeMat4:      "mat4",
	TypeSampler2D: "sampler2D",
	TypeArray:     "array",
	TypeTuple:     "tuple",
}

// TypeTag is the mutable type slot carried by every IR node. It is a
// plain value (not an arena handle) since the IR owns its nodes
// directly and there's nothing to deduplicate.
type TypeTag struct {
	Kind  TypeKind
	Elem  *TypeTag  // set when Kind == TypeArray
	Tuple []TypeTag // set when Kind == TypeTuple
}

// String formats the tag the way the rest of the pipeline names types:
// "float", "vec3", "array_float", "tuple_float_vec2", and so on.
func (t TypeTag) String() string {
	switch t.Kind {
	case TypeArray:
		if t.Elem == nil {
			return "array_undefined"
		}
		return "array_" + t.Elem.String()
	case TypeTuple:
		parts := make([]string, len(t.Tuple))
		for i, e := range t.Tuple {
			parts[i] = e.String()
		}
		return "tuple_" + strings.Join(parts, "_")
	default:
		if name, ok := typeKindNames[t.Kind]; ok {
			return name
		}
		return "undefined"
	}
}

// IsVector reports whether the tag is vec2, vec3, or vec4.
func (t TypeTag) IsVector() bool {
	switch t.Kind {
	case TypeVec2, TypeVec3, TypeVec4:
		return true
	default:
		return false
	}
}

// IsMatrix reports whether the tag is mat2, mat3, or mat4.
func (t TypeTag) IsMatrix() bool {
	switch t.Kind {
	case TypeMat2, TypeMat3, TypeMat4:
		return true
	default:
		return false
	}
}

// IsScalar reports whether the tag is float, int, or bool.
func (t TypeTag) IsScalar() bool {
	switch t.Kind {
	case TypeFloat, TypeInt, TypeBool:
		return true
	default:
		return false
	}
}

// VectorWidth returns the component count of a vector tag, or 0 if
// the tag is not a vector.
func (t TypeTag) VectorWidth() int {
	switch t.Kind {
	case TypeVec2:
		return 2
	case TypeVec3:
		return 3
	case TypeVec4:
		return 4
	default:
		return 0
	}
}

// MatrixRank returns the dimension of a matrix tag (2, 3, or 4), or 0
// if the tag is not a matrix.
func (t TypeTag) MatrixRank() int {
	switch t.Kind {
	case TypeMat2:
		return 2
	case TypeMat3:
		return 3
	case TypeMat4:
		return 4
	default:
		return 0
	}
}

// Float is a convenience constructor for the float TypeTag.
func Float() TypeTag { return TypeTag{Kind: TypeFloat} }

// Int is a convenience constructor for the int TypeTag.
func Int() TypeTag { return TypeTag{Kind: TypeInt} }

// Bool is a convenience constructor for the bool TypeTag.
func Bool() TypeTag { return TypeTag{Kind: TypeBool} }

// Vec returns the vector TypeTag for the given width (2, 3, or 4).
func Vec(width int) TypeTag {
	switch width {
	case 2:
		return TypeTag{Kind: TypeVec2}
	case 3:
		return TypeTag{Kind: TypeVec3}
	case 4:
		return TypeTag{Kind: TypeVec4}
	default:
		return TypeTag{Kind: TypeUndefined}
	}
}

// Mat returns the matrix TypeTag for the given dimension (2, 3, or 4).
func Mat(dim int) TypeTag {
	switch dim {
	case 2:
		return TypeTag{Kind: TypeMat2}
	case 3:
		return TypeTag{Kind: TypeMat3}
	case 4:
		return TypeTag{Kind: TypeMat4}
	default:
		return TypeTag{Kind: TypeUndefined}
	}
}

// Array builds an array TypeTag over the given element type.
func Array(elem TypeTag) TypeTag {
	return TypeTag{Kind: TypeArray, Elem: &elem}
}

// Tuple builds a tuple TypeTag over the given element types.
func Tuple(elems ...TypeTag) TypeTag {
	return TypeTag{Kind: TypeTuple, Tuple: elems}
}
