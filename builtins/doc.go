// Package builtins holds the static, read-only tables the frontend,
// type inference, and emitters all consult: known function signatures,
// operator classification, the swizzle alphabet, and type-rank
// predicates. Nothing here depends on an IR tree, so it has no arena
// or registry-dedup concern — these are fixed catalogs, built once at
// init and never mutated.
package builtins
