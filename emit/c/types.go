package c

import "github.com/rubyshade/rubyshade/ir"

func typeName(t ir.TypeTag) string {
	switch t.Kind {
	case ir.TypeFloat:
		return "float"
	case ir.TypeInt, ir.TypeBool:
		return "int"
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

// fMathNames maps a builtin math name to its f-suffixed C standard
// library spelling.
var fMathNames = map[string]string{
	"sin":   "sinf",
	"cos":   "cosf",
	"tan":   "tanf",
	"asin":  "asinf",
	"acos":  "acosf",
	"atan":  "atanf",
	"exp":   "expf",
	"exp2":  "exp2f",
	"log":   "logf",
	"log2":  "log2f",
	"sqrt":  "sqrtf",
	"abs":   "fabsf",
	"floor": "floorf",
	"ceil":  "ceilf",
	"pow":   "powf",
	"mod":   "fmodf",
	"min":   "fminf",
	"max":   "fmaxf",
}

// vectorOpNames maps a binary operator to its vector-specialized
// function name.
var vectorOpNames = map[string]string{
	"+": "add",
	"-": "sub",
	"*": "mul",
	"/": "div",
}
