package uri

import (
	"fmt"

	"github.com/ghettovoice/aeronuri/internal/errorutil"
	"github.com/ghettovoice/aeronuri/internal/util"
)

// Error represents a URI error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrMalformedURI is matched by every error returned from [Parse].
	ErrMalformedURI Error = "malformed aeron URI"
	// ErrInvalidComponent is returned when a URI built from components can not be rendered
	// into a string that parses back to the same URI.
	ErrInvalidComponent Error = "invalid URI component"
)

const (
	reasonBadPrefix       = "missing or incorrect scheme prefix"
	reasonMediaColon      = "colon inside media segment"
	reasonUnterminatedKey = "unterminated parameter key, expected '='"
)

// ParseError describes why the input of [Parse] was rejected.
type ParseError struct {
	// Input is the whole rejected input.
	Input string
	// Pos is the byte offset at which lexing stopped.
	// It equals len(Input) when the input ended too early.
	Pos int
	// State is the lexer state at the failure, empty when the scheme prefix is wrong.
	State string
	// Reason is a human readable failure reason.
	Reason string
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.State == "" {
		return fmt.Sprintf("%s %q: %s", ErrMalformedURI, util.Ellipsis(e.Input, 64), e.Reason)
	}
	return fmt.Sprintf("%s %q: %s (%s, offset %d)", ErrMalformedURI, util.Ellipsis(e.Input, 64), e.Reason, e.State, e.Pos)
}

// Unwrap returns [ErrMalformedURI].
func (*ParseError) Unwrap() error { return ErrMalformedURI }

// Grammar reports that the error is a syntax error.
func (*ParseError) Grammar() bool { return true }

func newInvalidComponentErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidComponent, args...) //errtrace:skip
}

func newComponentErr(comp, val string, args ...any) error {
	return &errorutil.ComponentError{ //errtrace:skip
		Component: comp,
		Value:     val,
		Err:       newInvalidComponentErr(args...),
	}
}
