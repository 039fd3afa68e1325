package msl

import (
	"github.com/rubyshade/rubyshade/emit/base"
	"github.com/rubyshade/rubyshade/internal/diag"
	"github.com/rubyshade/rubyshade/ir"
)

// Options configures MSL code generation.
type Options struct {
	NeedsReturn bool
}

// Compile renders block as Metal Shading Language source.
func Compile(block *ir.Block, opts Options) (string, error) {
	diag.Logger().Debugf("emit target=msl needs_return=%v", opts.NeedsReturn)

	w := &base.Writer{}
	h := hooks{}

	body := block
	if opts.NeedsReturn {
		body = base.LiftTailReturn(block)
	}
	base.WriteBlock(w, h, body)
	return w.String(), nil
}
