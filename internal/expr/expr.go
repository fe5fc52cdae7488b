package expr

import (
	"errors"
	"math"

	"github.com/jcorbin/gomspdebug/internal/runeio"
)

// MaxTokenLen is the longest number or symbol name considered; any further
// bytes of a longer token are dropped.
const MaxTokenLen = 63

// Resolver looks up the value of a named symbol.
type Resolver interface {
	Resolve(name string) (value int32, ok bool)
}

// ResolverFunc adapts a function into a Resolver.
type ResolverFunc func(name string) (int32, bool)

// Resolve calls f.
func (f ResolverFunc) Resolve(name string) (int32, bool) { return f(name) }

// NoSymbols is a Resolver that knows no symbols.
var NoSymbols Resolver = ResolverFunc(func(string) (int32, bool) { return 0, false })

// Eval evaluates an address expression: a formula over decimal integers,
// 0x-prefixed hexadecimal integers, and symbol names resolved through syms,
// combined with binary + - * / %, unary -, and parentheses.
//
// Arithmetic is done on 32-bit signed integers, wrapping on overflow.
//
// Any returned error is an *Error.
func Eval(text string, syms Resolver) (int32, error) {
	if syms == nil {
		syms = NoSymbols
	}
	ev := evaluator{syms: syms, lastOp: opStart}
	value, err := ev.eval(text)
	if err != nil {
		var exprErr *Error
		if errors.As(err, &exprErr) {
			exprErr.Expr = text
		}
		return 0, err
	}
	return value, nil
}

func (ev *evaluator) eval(text string) (int32, error) {
	var (
		tok [MaxTokenLen]byte
		n   int
	)
	for i := 0; ; i++ {
		var c byte
		if i < len(text) {
			c = text[i]
		}

		op := isOperator(c)
		word := !op && isWordByte(c)
		if !op && !word && c != 0 && !isSpace(c) {
			return 0, errorf(ErrIllegalCharacter,
				"illegal character in expression: %s", runeio.ByteForm(c))
		}

		if word {
			if n < len(tok) {
				tok[n] = c
				n++
			}
		} else if n > 0 {
			if err := ev.operand(string(tok[:n])); err != nil {
				return 0, err
			}
			n = 0
		}

		if op {
			if err := ev.operator(c); err != nil {
				return 0, err
			}
		}

		if c == 0 {
			break
		}
	}
	return ev.finish()
}

func isOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '(', ')':
		return true
	}
	return false
}

func isWordByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', isDigit(c):
		return true
	case c == '.', c == '_', c == '$', c == ':':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// value converts a token into a number: a 0x prefix selects hexadecimal, a
// leading digit selects decimal, and anything else names a symbol. Numbers
// stop at their first invalid digit.
func (ev *evaluator) value(tok string) (int32, bool) {
	switch {
	case len(tok) >= 2 && tok[0] == '0' && tok[1] == 'x':
		return parseHex(tok[2:]), true
	case isDigit(tok[0]):
		return parseDec(tok), true
	default:
		return ev.syms.Resolve(tok)
	}
}

// parseHex saturates at the largest 64-bit unsigned value, keeping the low 32
// bits of the result.
func parseHex(s string) int32 {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && hexDigit(s[2]) >= 0 {
		s = s[2:]
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		d := hexDigit(s[i])
		if d < 0 {
			break
		}
		if v > math.MaxUint64>>4 {
			v = math.MaxUint64
			break
		}
		v = v<<4 | uint64(d)
	}
	return int32(uint32(v))
}

// parseDec saturates at the largest 64-bit signed value, keeping the low 32
// bits of the result.
func parseDec(s string) int32 {
	var v uint64
	for i := 0; i < len(s) && isDigit(s[i]); i++ {
		d := uint64(s[i] - '0')
		if v > (math.MaxInt64-d)/10 {
			v = math.MaxInt64
			break
		}
		v = v*10 + d
	}
	return int32(uint32(v))
}

func hexDigit(c byte) int {
	switch {
	case isDigit(c):
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
