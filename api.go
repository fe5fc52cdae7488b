package main

import (
	"io"

	"github.com/jcorbin/gomspdebug/internal/logio"
	"github.com/jcorbin/gomspdebug/internal/symtab"
)

// New creates an Engine with the built-in commands and options registered.
func New(opts ...EngineOption) *Engine {
	var e Engine
	defaultOptions.apply(&e)
	EngineOptions(opts...).apply(&e)
	if e.diag == nil {
		e.diag = logio.NewLogger(io.Discard)
	}
	if e.syms == nil {
		e.syms = &symtab.Table{}
	}
	e.syms.OnModify = func() { e.ModifySet(ModifySyms) }
	e.registerBuiltins()
	return &e
}

func WithInput(r io.Reader) EngineOption         { return withInput(r) }
func WithOutput(w io.Writer) EngineOption        { return withOutput(w) }
func WithTee(w io.Writer) EngineOption           { return withTee(w) }
func WithDiag(log *logio.Logger) EngineOption    { return withDiag(log) }
func WithSymbols(tab *symtab.Table) EngineOption { return withSymbols(tab) }

func WithLogf(logfn func(mess string, args ...interface{})) EngineOption { return withLogfn(logfn) }
