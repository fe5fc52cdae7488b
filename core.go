package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jcorbin/gomspdebug/internal/argscan"
	"github.com/jcorbin/gomspdebug/internal/expr"
	"github.com/jcorbin/gomspdebug/internal/fileinput"
	"github.com/jcorbin/gomspdebug/internal/flushio"
	"github.com/jcorbin/gomspdebug/internal/logio"
	"github.com/jcorbin/gomspdebug/internal/option"
	"github.com/jcorbin/gomspdebug/internal/registry"
	"github.com/jcorbin/gomspdebug/internal/symtab"
)

// Engine turns lines of text into command invocations, and address
// expressions into values resolved against its symbol table.
type Engine struct {
	logfn func(mess string, args ...interface{})

	in     *bufio.Reader
	out    flushio.WriteFlusher
	outErr error
	diag   *logio.Logger

	commands registry.List[*Command]
	options  registry.List[*option.Option]
	syms     *symtab.Table

	interactive bool
	modified    ModifyFlags

	color *option.Option
}

// Handler implements a command, consuming its arguments from the text
// remaining after the command name.
type Handler func(e *Engine, args *string) error

// Command is a named Handler with help text.
type Command struct {
	Name string
	Func Handler
	Help string
}

// EntryName returns the name that the command is dispatched under.
func (cmd *Command) EntryName() string { return cmd.Name }

var (
	// ErrUnknownCommand is matched by dispatch failures for unregistered
	// command names.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnknownOption is matched by failures naming an unregistered option.
	ErrUnknownOption = errors.New("unknown option")
)

// RegisterCommand adds a command; it masks any prior command of the same name.
func (e *Engine) RegisterCommand(cmd *Command) { e.commands.Register(cmd) }

// RegisterOption adds an option; it masks any prior option of the same name.
func (e *Engine) RegisterOption(opt *option.Option) { e.options.Register(opt) }

// FindCommand looks up a command, ignoring case.
func (e *Engine) FindCommand(name string) (*Command, bool) { return e.commands.Find(name) }

// FindOption looks up an option, ignoring case.
func (e *Engine) FindOption(name string) (*option.Option, bool) { return e.options.Find(name) }

// Symbols returns the engine's symbol table.
func (e *Engine) Symbols() *symtab.Table { return e.syms }

// Resolve looks up a symbol, making the Engine an expr.Resolver.
func (e *Engine) Resolve(name string) (int32, bool) { return e.syms.Resolve(name) }

// Eval evaluates an address expression against the symbol table.
func (e *Engine) Eval(text string) (int32, error) { return expr.Eval(text, e.syms) }

// IsInteractive reports whether the command being run was invoked by a live
// user, who may be prompted for confirmation.
func (e *Engine) IsInteractive() bool { return e.interactive }

// Dispatch runs one command line: the first token names a command, and the
// rest of the line is left to the command's handler. Empty lines do nothing.
//
// Only an unknown command name fails the dispatch. Any handler failure is
// reported to the diagnostic stream, but not returned, so that a calling
// loop may carry on.
func (e *Engine) Dispatch(line string, interactive bool) error {
	args := argscan.TrimSpace(line)
	name, ok := argscan.Next(&args)
	if !ok {
		return nil
	}

	cmd, found := e.commands.Find(name)
	if !found {
		err := commandErrorf(ErrUnknownCommand, "unknown command: %s (try \"help\")", name)
		e.report(err)
		return err
	}

	e.logf("dispatch %v interactive:%v args:%q", cmd.Name, interactive, args)
	if err := e.call(cmd, &args, interactive); err != nil {
		e.report(err)
	}
	return nil
}

// ProcessFile runs every command line in the named file; see ProcessReader.
func (e *Engine) ProcessFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return commandErrorf(nil, "read: can't open %s: %v", filename, unwrapPath(err))
	}
	defer f.Close()
	return e.ProcessReader(filename, f)
}

// ProcessReader runs every command line read from r non-interactively.
// Lines whose first non-space character is # are comments. Processing stops
// at the first line that fails to dispatch, returning an error that names
// it. If r is an io.Closer, it is closed once exhausted.
func (e *Engine) ProcessReader(name string, r io.Reader) error {
	in := fileinput.Input{Queue: []io.Reader{fileinput.Named(name, r)}}
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return commandErrorf(nil, "read: error reading %v: %v", line.Location, err)
		}

		text := strings.TrimLeft(line.Text, argscan.Space)
		if strings.HasPrefix(text, "#") {
			continue
		}

		e.logf("%v %s", line.Location, text)
		if err := e.Dispatch(text, false); err != nil {
			return commandErrorf(err, "read: error processing %s (line %d)", line.Name, line.Line)
		}
	}
}

// unwrapPath strips the operation and path from a file error, leaving the
// system's reason.
func unwrapPath(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// report writes an error to the diagnostic stream, after any output written
// so far; the messages of any causes behind a command error come first.
func (e *Engine) report(err error) {
	if ce, ok := err.(*commandError); ok {
		if ce.cause != nil {
			e.report(ce.cause)
		}
		e.flush()
		e.diag.Errorf("%s", ce.mess)
		return
	}
	e.flush()
	e.diag.Errorf("%v", err)
}

func (e *Engine) logf(mess string, args ...interface{}) {
	if e.logfn != nil {
		e.logfn(mess, args...)
	}
}

// commandError is a message for the diagnostic stream, which may also match
// a kind of failure and carry an underlying cause.
type commandError struct {
	mess  string
	kind  error
	cause error
}

func commandErrorf(kind error, mess string, args ...interface{}) *commandError {
	return &commandError{mess: fmt.Sprintf(mess, args...), kind: kind}
}

func (ce *commandError) because(cause error) *commandError {
	ce.cause = cause
	return ce
}

func (ce *commandError) Error() string { return ce.mess }
func (ce *commandError) Unwrap() error { return ce.cause }

func (ce *commandError) Is(target error) bool {
	return ce.kind != nil && errors.Is(ce.kind, target)
}
