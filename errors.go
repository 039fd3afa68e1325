package rubyshade

import "github.com/pkg/errors"

// ParseError reports a syntactically invalid surface program. It wraps
// the frontend's own message plus a captured stack, via pkg/errors, so
// callers can use errors.As/errors.Is or pkgerrors.Cause.
type ParseError struct {
	msg   string
	cause error
}

func newParseError(msg string, cause error) *ParseError {
	return &ParseError{msg: msg, cause: errors.WithStack(cause)}
}

func (e *ParseError) Error() string { return e.msg }
func (e *ParseError) Unwrap() error { return e.cause }

// InternalError signals a bug in the caller: Emit returns it when
// called before a successful Parse. The emitters do not report unknown
// node kinds; an unrecognized expression renders as empty text.
type InternalError struct {
	msg   string
	cause error
}

func newInternalError(msg string) *InternalError {
	return &InternalError{msg: msg, cause: errors.New(msg)}
}

func (e *InternalError) Error() string { return "Internal error: " + e.msg }
func (e *InternalError) Unwrap() error { return e.cause }

// ConfigurationError reports an invalid transpiler configuration, such
// as a target name outside the fixed {c, msl, wgsl, glsl} set.
type ConfigurationError struct {
	msg   string
	cause error
}

func newConfigurationError(msg string) *ConfigurationError {
	return &ConfigurationError{msg: msg, cause: errors.New(msg)}
}

func (e *ConfigurationError) Error() string { return "Configuration error: " + e.msg }
func (e *ConfigurationError) Unwrap() error { return e.cause }
