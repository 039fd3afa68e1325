package frontend

import "strings"

// ExtractPreamble splits a leading `|a, b, c|` parameter list off an
// inline code literal and returns the named parameters alongside the
// remaining body text. A source with no leading preamble returns a
// nil parameter list and the source unchanged.
func ExtractPreamble(source string) (params []string, body string) {
	trimmed := strings.TrimLeft(source, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '|' {
		return nil, source
	}
	close := strings.IndexByte(trimmed[1:], '|')
	if close < 0 {
		return nil, source
	}
	inner := trimmed[1 : 1+close]
	rest := trimmed[1+close+1:]

	for _, part := range strings.Split(inner, ",") {
		name := strings.TrimSpace(part)
		if name != "" {
			params = append(params, name)
		}
	}
	return params, rest
}
