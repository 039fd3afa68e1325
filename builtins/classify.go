package builtins

import "github.com/rubyshade/rubyshade/ir"

// IsScalar, IsVector, and IsMatrix re-expose the TypeTag predicates
// under the Builtins Registry's own name, since the registry (not the
// IR package) is the declared owner of type classification.
func IsScalar(t ir.TypeTag) bool { return t.IsScalar() }
func IsVector(t ir.TypeTag) bool { return t.IsVector() }
func IsMatrix(t ir.TypeTag) bool { return t.IsMatrix() }

// ResolveBinaryResultType implements the one binary-op result
// algorithm the registry owns: comparison/logical operators always
// produce bool; arithmetic operators apply the matrix/vector/scalar
// precedence ladder, falling back to float when no rule matches.
func ResolveBinaryResultType(op string, left, right ir.TypeTag) ir.TypeTag {
	switch BinaryOperators[op] {
	case OpComparison, OpLogical:
		return ir.Bool()
	default:
		return resolveArithmeticResultType(left, right)
	}
}

func resolveArithmeticResultType(left, right ir.TypeTag) ir.TypeTag {
	switch {
	case IsMatrix(left) && IsVector(right):
		return ir.Vec(right.VectorWidth())
	case IsVector(left) && IsMatrix(right):
		return ir.Vec(left.VectorWidth())
	case IsMatrix(left) && IsMatrix(right) && left.MatrixRank() == right.MatrixRank():
		return ir.Mat(left.MatrixRank())
	case IsMatrix(left) && IsScalar(right):
		return left
	case IsMatrix(right) && IsScalar(left):
		return right
	case IsVector(left) && IsVector(right) && left.VectorWidth() == right.VectorWidth():
		return left
	case IsVector(left) && IsScalar(right):
		return left
	case IsVector(right) && IsScalar(left):
		return right
	default:
		return ir.Float()
	}
}
