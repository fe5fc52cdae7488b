package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Logger writes diagnostic messages to an output stream, one line each,
// remembering whether any error was reported.
type Logger struct {
	sync.Mutex
	output   io.Writer
	buf      bytes.Buffer
	errors   int
	exitCode int
}

// NewLogger creates a logger writing into w.
func NewLogger(w io.Writer) *Logger {
	var log Logger
	log.SetOutput(w)
	return &log
}

// SetOutput sets the logger's output stream; a nil stream discards output.
func (log *Logger) SetOutput(w io.Writer) {
	log.Lock()
	defer log.Unlock()
	if w == nil {
		w = io.Discard
	}
	log.output = w
}

// ExitCode returns a code to pass to os.Exit, facilitating "exit non-zero if
// any error log" semantics: 1 after any Errorf, 2 if the output stream failed.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Errors returns how many errors have been reported.
func (log *Logger) Errors() int {
	log.Lock()
	defer log.Unlock()
	return log.errors
}

// ErrorIf reports any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%v", err)
	}
}

// Errorf reports an error message as is, without any level prefix, and
// retains state so that ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	log.errors++
	if log.exitCode == 0 {
		log.exitCode = 1
	}
	if err := log.printf("", mess, args...); err != nil {
		log.exitCode = 2
	}
}

// Printf prints a line to the output stream like "level: message...\n".
// Any io error is retained for ExitCode().
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.exitCode = 2
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if log.output == nil {
		log.output = io.Discard
	}
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.output)
	log.buf.Reset()
	return err
}
