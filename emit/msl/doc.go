// Package msl emits Metal Shading Language source from the shared IR.
// MSL overloads arithmetic operators on its vector types and spells
// math builtins the same as GLSL, so this target differs from c
// mainly in type and constructor spelling and in rendering texture
// lookups as a method call on the sampled-texture object.
package msl
