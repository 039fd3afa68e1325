// Package base implements the emitter machinery shared by every target
// dialect: output buffering and indentation, the tail-position
// return-rewrite pass, tuple-return struct synthesis, multi-assignment
// lowering, and number formatting. Each concrete target (c, msl, wgsl,
// glsl) writes through a *base.Writer and supplies a Hooks
// implementation for the things that differ per dialect: type
// spellings, constructor, operator, call and texture-sample syntax, and
// the declaration, loop, return and function-header lines.
package base
