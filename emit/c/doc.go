// Package c emits portable C source from the shared IR: scalar
// binary ops render infix, vector/matrix arithmetic lowers to
// <type>_add|sub|mul|div function calls, and math builtins rewrite to
// their f-suffixed C names, since C has neither operator overloading
// nor generic math functions.
package c
