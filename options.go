package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/jcorbin/gomspdebug/internal/flushio"
	"github.com/jcorbin/gomspdebug/internal/logio"
	"github.com/jcorbin/gomspdebug/internal/symtab"
)

// EngineOption configures an Engine built by New.
type EngineOption interface{ apply(e *Engine) }

// EngineOptions combines any number of options into one, applied in order.
func EngineOptions(opts ...EngineOption) EngineOption {
	var all engineOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case engineOptions:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

type engineOptions []EngineOption

func (opts engineOptions) apply(e *Engine) {
	for _, opt := range opts {
		opt.apply(e)
	}
}

var defaultOptions = EngineOptions(
	withInput(strings.NewReader("")),
	withOutput(io.Discard),
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(e *Engine) {
	e.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type diagOption struct{ *logio.Logger }
type symbolsOption struct{ *symtab.Table }

func withInput(r io.Reader) inputOption           { return inputOption{r} }
func withOutput(w io.Writer) outputOption         { return outputOption{w} }
func withTee(w io.Writer) teeOption               { return teeOption{w} }
func withDiag(log *logio.Logger) diagOption       { return diagOption{log} }
func withSymbols(tab *symtab.Table) symbolsOption { return symbolsOption{tab} }

func (i inputOption) apply(e *Engine) {
	if br, is := i.Reader.(*bufio.Reader); is {
		e.in = br
	} else {
		e.in = bufio.NewReader(i.Reader)
	}
}

func (o outputOption) apply(e *Engine) {
	if e.out != nil {
		e.out.Flush()
	}
	e.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(e *Engine) {
	e.out = flushio.WriteFlushers(e.out, flushio.NewWriteFlusher(o.Writer))
}

func (o diagOption) apply(e *Engine) {
	e.diag = o.Logger
}

func (o symbolsOption) apply(e *Engine) {
	e.syms = o.Table
}
