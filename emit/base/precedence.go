package base

import "github.com/rubyshade/rubyshade/builtins"

// NeedsParens reports whether a child expression using childOp must be
// parenthesized when it appears as an operand of a parent expression
// using parentOp, per the builtins precedence table. A bare operand
// (no enclosing operator) is signaled by an empty parentOp.
func NeedsParens(parentOp, childOp string) bool {
	if parentOp == "" || childOp == "" {
		return false
	}
	return builtins.Precedence(childOp) < builtins.Precedence(parentOp)
}
