package frontend

import "github.com/rubyshade/rubyshade/ir"

// Parse extracts a leading `|a, b, c|` parameter preamble (if any),
// lexes and parses the remaining source, then lowers the resulting
// syntax tree into an IR Block. extraParams are additional known
// parameter names the host supplies (e.g. `frag_coord`, `resolution`)
// beyond whatever the preamble itself declares.
func Parse(source string, extraParams ...string) (*ir.Block, error) {
	preambleParams, body := ExtractPreamble(source)

	lexer := NewLexer(body)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, &ParseError{Message: err.Error()}
	}

	parser := NewParser(tokens)
	stmts, err := parser.ParseProgram()
	if err != nil {
		return nil, &ParseError{Message: err.Error()}
	}

	params := append(append([]string{}, extraParams...), preambleParams...)
	lowerer := NewLowerer(params)
	return lowerer.LowerProgram(stmts), nil
}
