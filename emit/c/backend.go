package c

import (
	"github.com/rubyshade/rubyshade/emit/base"
	"github.com/rubyshade/rubyshade/internal/diag"
	"github.com/rubyshade/rubyshade/ir"
)

// Options configures C code generation.
type Options struct {
	// NeedsReturn lifts the top-level block's tail statement to an
	// explicit return, per the shared base contract.
	NeedsReturn bool
}

// Compile renders block as portable C source.
func Compile(block *ir.Block, opts Options) (string, error) {
	diag.Logger().Debugf("emit target=c needs_return=%v", opts.NeedsReturn)

	w := &base.Writer{}
	h := hooks{}

	body := block
	if opts.NeedsReturn {
		body = base.LiftTailReturn(block)
	}
	base.WriteBlock(w, h, body)
	return w.String(), nil
}
