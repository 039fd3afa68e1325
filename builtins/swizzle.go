package builtins

import "github.com/rubyshade/rubyshade/ir"

// swizzleAlphabet is every letter that can appear in a field access or
// swizzle, grouped by the coordinate space a shader author picked.
var swizzleAlphabet = map[byte]bool{
	'x': true, 'y': true, 'z': true, 'w': true,
	'r': true, 'g': true, 'b': true, 'a': true,
	's': true, 't': true, 'p': true, 'q': true,
}

// IsSwizzleLetter reports whether c is a recognized component letter.
func IsSwizzleLetter(c byte) bool {
	return swizzleAlphabet[c]
}

// IsSwizzleName reports whether name is entirely composed of component
// letters, which is necessary (but not sufficient on its own — the
// frontend also checks length) to treat a postfix `.name` as a
// field/swizzle access rather than a method call.
func IsSwizzleName(name string) bool {
	if len(name) == 0 {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !swizzleAlphabet[name[i]] {
			return false
		}
	}
	return true
}

// SwizzleResultType maps a component-string length to its result
// vector type. Length 1 is a FieldAccess (always float), not a
// Swizzle; this is only meaningful for lengths 2 through 4.
func SwizzleResultType(length int) ir.TypeTag {
	switch length {
	case 2:
		return ir.Vec(2)
	case 3:
		return ir.Vec(3)
	case 4:
		return ir.Vec(4)
	default:
		return ir.Float()
	}
}
