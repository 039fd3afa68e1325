// Package infer implements the single bottom-up type inference pass
// that fills every IR node's mutable Type slot. It never fails: an
// unresolvable type defaults to float, matching shader-dialect
// defaults, and the pass is safe to run twice on the same tree.
package infer
