package main

import "github.com/jcorbin/gomspdebug/internal/panicerr"

// call runs a command handler under the given interactivity context,
// restoring the prior context however the handler exits; a panicking handler
// becomes an error return. Handlers may dispatch further commands.
func (e *Engine) call(cmd *Command, args *string, interactive bool) error {
	prior := e.interactive
	e.interactive = interactive
	defer func() { e.interactive = prior }()

	return panicerr.Recover(cmd.Name, func() error {
		return cmd.Func(e, args)
	})
}

// withInteractive runs f with the interactivity context set, like a command
// handler would be.
func (e *Engine) withInteractive(interactive bool, f func()) {
	prior := e.interactive
	e.interactive = interactive
	defer func() { e.interactive = prior }()
	f()
}
