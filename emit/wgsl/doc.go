// Package wgsl emits WebGPU Shading Language source from the shared
// IR: explicitly-typed let declarations and C-style counted for-loops
// over an i32 index. The IR has no conditional-expression node, so
// this backend renders no ternary and never emits select().
package wgsl
