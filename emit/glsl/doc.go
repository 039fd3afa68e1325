// Package glsl emits OpenGL Shading Language source from the shared
// IR. GLSL is the closest target to the base emitter's own defaults:
// infix everywhere, builtin names pass through unchanged, and the
// only addition is a #version directive chosen at construction.
package glsl
