package argscan

// Space contains the bytes that separate arguments.
const Space = " \t\n\v\f\r"

// IsSpace reports whether c separates arguments.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// TrimSpace returns text without any trailing separator bytes.
func TrimSpace(text string) string {
	end := len(text)
	for end > 0 && IsSpace(text[end-1]) {
		end--
	}
	return text[:end]
}

type scanState uint8

const (
	stateBare scanState = iota
	stateQuoted
	stateEscape
	stateOctal1
	stateOctal2
	stateHex1
	stateHex2
)

// Next extracts one argument from the front of *text and advances *text past
// it and any separators that follow it.
//
// Outside of double quotes bytes are copied verbatim until a separator. Inside
// quotes separators are kept, and a backslash escapes the next byte: \\ \n \r
// \t, \NNN for an octal byte whose first digit is 0-3, and \xHH for a hex
// byte; any other escaped byte is copied as is. An unterminated quote simply
// runs to the end of text.
//
// Returns false, leaving *text alone, if only separators remain.
func Next(text *string) (string, bool) {
	if text == nil {
		return "", false
	}

	s := *text
	start := 0
	for start < len(s) && IsSpace(s[start]) {
		start++
	}
	if start == len(s) {
		return "", false
	}

	var (
		buf   = make([]byte, 0, len(s)-start)
		state = stateBare
		val   int
		end   = start
	)

scan:
	for ; end < len(s); end++ {
		c := s[end]
		switch state {
		case stateBare:
			switch {
			case IsSpace(c):
				break scan
			case c == '"':
				state = stateQuoted
			default:
				buf = append(buf, c)
			}

		case stateQuoted:
			switch c {
			case '"':
				state = stateBare
			case '\\':
				state = stateEscape
			default:
				buf = append(buf, c)
			}

		case stateEscape:
			state = stateQuoted
			switch {
			case c == '\\':
				buf = append(buf, '\\')
			case c == 'n':
				buf = append(buf, '\n')
			case c == 'r':
				buf = append(buf, '\r')
			case c == 't':
				buf = append(buf, '\t')
			case '0' <= c && c <= '3':
				val = int(c - '0')
				state = stateOctal1
			case c == 'x':
				val = 0
				state = stateHex1
			default:
				buf = append(buf, c)
			}

		// each digit slot consumes a byte, even one that is not a digit
		case stateOctal1, stateOctal2:
			if '0' <= c && c <= '7' {
				val = val<<3 | int(c-'0')
			}
			if state == stateOctal2 {
				buf = append(buf, byte(val))
				state = stateQuoted
			} else {
				state = stateOctal2
			}

		case stateHex1, stateHex2:
			if d, ok := hexValue(c); ok {
				val = val<<4 | d
			}
			if state == stateHex2 {
				buf = append(buf, byte(val))
				state = stateQuoted
			} else {
				state = stateHex2
			}
		}
	}

	for end < len(s) && IsSpace(s[end]) {
		end++
	}
	*text = s[end:]
	return string(buf), true
}

// hexValue accepts any ASCII letter, not only a-f; letters past f contribute
// their alphabet offset.
func hexValue(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10, true
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10, true
	}
	return 0, false
}

// All extracts every remaining argument from text.
func All(text string) (args []string) {
	for {
		arg, ok := Next(&text)
		if !ok {
			return args
		}
		args = append(args, arg)
	}
}
