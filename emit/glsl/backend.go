package glsl

import (
	"github.com/rubyshade/rubyshade/emit/base"
	"github.com/rubyshade/rubyshade/internal/diag"
	"github.com/rubyshade/rubyshade/ir"
)

// Options configures GLSL code generation.
type Options struct {
	NeedsReturn bool

	// Version is rendered as "#version <Version>" at the top of the
	// output. Defaults to "330 core" when empty.
	Version string
}

// Compile renders block as GLSL source.
func Compile(block *ir.Block, opts Options) (string, error) {
	diag.Logger().Debugf("emit target=glsl needs_return=%v", opts.NeedsReturn)

	version := opts.Version
	if version == "" {
		version = "330 core"
	}

	w := &base.Writer{}
	h := hooks{}
	w.WriteLine("#version %s", version)

	body := block
	if opts.NeedsReturn {
		body = base.LiftTailReturn(block)
	}
	base.WriteBlock(w, h, body)
	return w.String(), nil
}
