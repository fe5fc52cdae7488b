package runeio

import "fmt"

// CaretForm computes the ^-escaped printable form of a C0 control rune, or of
// a C1 control rune in its 7-bit ^[ form. Returns "" for any other rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

// ByteForm returns a form of c fit for a one line message: printable ASCII as
// is, controls in caret form, and any other byte as \xNN.
func ByteForm(c byte) string {
	if caret := CaretForm(rune(c)); caret != "" && c < 0x80 {
		return caret
	}
	if c < 0x80 {
		return string(rune(c))
	}
	return fmt.Sprintf(`\x%02x`, c)
}
