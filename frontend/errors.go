package frontend

import "fmt"

// ParseError is returned when the surface source is syntactically
// invalid. Its Error() message is the single-line description the
// rest of the pipeline propagates unchanged.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse error: %s", e.Message)
}
