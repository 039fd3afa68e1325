package c

import "github.com/rubyshade/rubyshade/emit/base"

// hooks implements base.Hooks for the portable-C target.
type hooks struct{}

var _ base.Hooks = hooks{}
