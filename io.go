package main

import (
	"fmt"
	"io"
	"strings"
)

func (e *Engine) printf(mess string, args ...interface{}) {
	if _, err := fmt.Fprintf(e.out, mess, args...); err != nil && e.outErr == nil {
		e.outErr = err
	}
}

func (e *Engine) writeString(s string) {
	if _, err := io.WriteString(e.out, s); err != nil && e.outErr == nil {
		e.outErr = err
	}
}

func (e *Engine) flush() {
	if err := e.out.Flush(); err != nil && e.outErr == nil {
		e.outErr = err
	}
}

// Flush flushes standard output, returning the first output error seen.
func (e *Engine) Flush() error {
	e.flush()
	return e.outErr
}

// readLine flushes output, then reads a line of user input without its line
// ending. A final unterminated line is returned before io.EOF.
func (e *Engine) readLine() (string, error) {
	e.flush()
	line, err := e.in.ReadString('\n')
	if line == "" && err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Colorize writes an ANSI control sequence, ESC [ code, when the color
// option is enabled.
func (e *Engine) Colorize(code string) {
	if e.color != nil && e.color.Bool() {
		e.writeString("\x1b[" + code)
	}
}
