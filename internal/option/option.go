package option

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gomspdebug/internal/expr"
)

// TextCapacity is the size of a text option's buffer, including the
// terminator: text values hold at most TextCapacity-1 bytes.
const TextCapacity = 128

// Kind is the fixed type of an option's value.
type Kind uint8

// Option kinds.
const (
	Boolean Kind = iota
	Numeric
	Text
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Numeric:
		return "numeric"
	case Text:
		return "text"
	}
	return "unknown"
}

// Option is a named, typed setting. The zero value of each kind is false, 0,
// and "" respectively.
type Option struct {
	Name string
	Kind Kind
	Help string

	numeric int32 // also holds a Boolean as 0 or 1
	text    string
}

// EntryName returns the option's name.
func (o *Option) EntryName() string { return o.Name }

// Bool returns a Boolean option's value; for a Numeric option it reports
// whether the value is non-zero.
func (o *Option) Bool() bool { return o.numeric != 0 }

// Numeric returns a Numeric option's value.
func (o *Option) Numeric() int32 { return o.numeric }

// Text returns a Text option's value.
func (o *Option) Text() string { return o.text }

// Parse sets the option from word.
//
// A Boolean is true if word starts with a digit other than 0, "t", "y", or
// "on"; anything else, unrecognized text included, is false. A Numeric is
// evaluated as an address expression, resolving symbols through syms. A Text
// value longer than TextCapacity-1 bytes is truncated.
func (o *Option) Parse(word string, syms expr.Resolver) error {
	switch o.Kind {
	case Boolean:
		o.numeric = boolInt(truthy(word))

	case Numeric:
		value, err := expr.Eval(word, syms)
		if err != nil {
			return err
		}
		o.numeric = value

	case Text:
		if i := strings.IndexByte(word, 0); i >= 0 {
			word = word[:i]
		}
		if len(word) > TextCapacity-1 {
			word = word[:TextCapacity-1]
		}
		o.text = word

	default:
		return fmt.Errorf("option %v has invalid kind %v", o.Name, o.Kind)
	}
	return nil
}

func truthy(word string) bool {
	if word == "" {
		return false
	}
	switch c := word[0]; {
	case '1' <= c && c <= '9', c == 't', c == 'y':
		return true
	}
	return strings.HasPrefix(word, "on")
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// Value formats the option's value: true or false, hex and decimal, or the
// text as is.
func (o *Option) Value() string {
	switch o.Kind {
	case Boolean:
		if o.Bool() {
			return "true"
		}
		return "false"
	case Numeric:
		return fmt.Sprintf("0x%x (%d)", uint32(o.numeric), o.numeric)
	case Text:
		return o.text
	}
	return ""
}

// Display writes a line naming the option and its value, the name right
// aligned in 32 columns.
func (o *Option) Display(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%32s = %s\n", o.Name, o.Value())
	return err
}
