// Package ir defines the intermediate representation shared by the
// frontend, the type inference pass, and the emitters.
//
// Unlike an SSA/arena-based IR, this one is a directly owned tree: each
// parent node holds its children, and every node carries a mutable Type
// slot that starts Undefined and is filled in by a single inference
// pass (see package infer). Emitters only read the tree; ownership is a
// tree, never a graph, so there is no dedup/arena concern here.
package ir
