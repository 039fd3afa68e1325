package infer

import "github.com/rubyshade/rubyshade/ir"

// CustomFunction augments the builtins registry with a user-supplied
// signature, used by the transpile_helpers pathway where the caller
// knows more about a function than the IR can infer on its own.
type CustomFunction struct {
	Returns ir.TypeTag
	Params  []ir.TypeTag // optional; informational only
}
