package expr

import "fmt"

// Kind classifies an expression failure; every Kind is also a sentinel error,
// so callers may test with errors.Is(err, expr.ErrDivideByZero).
type Kind uint8

// Kinds of expression failure.
const (
	ErrSyntax Kind = iota + 1
	ErrUnbalanced
	ErrParenMismatch
	ErrStackOverflow
	ErrDivideByZero
	ErrUnknownSymbol
	ErrIllegalCharacter
	ErrMalformed
)

var kindNames = [...]string{
	ErrSyntax:           "syntax error",
	ErrUnbalanced:       "unbalanced expression",
	ErrParenMismatch:    "parenthesis mismatch",
	ErrStackOverflow:    "stack overflow",
	ErrDivideByZero:     "divide by zero",
	ErrUnknownSymbol:    "unknown symbol",
	ErrIllegalCharacter: "illegal character",
	ErrMalformed:        "malformed expression",
}

func (k Kind) Error() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("expression error #%d", uint8(k))
}

// Error describes why an expression could not be evaluated.
type Error struct {
	Kind Kind
	Expr string // the whole expression text
	Msg  string // what went wrong, and where
}

func (err *Error) Error() string {
	return fmt.Sprintf("bad address expression %q: %s", err.Expr, err.Msg)
}

// Unwrap returns the error's Kind.
func (err *Error) Unwrap() error { return err.Kind }

func errorf(kind Kind, mess string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(mess, args...)}
}
