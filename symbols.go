package main

import (
	"os"

	"github.com/jcorbin/gomspdebug/internal/argscan"
	"github.com/jcorbin/gomspdebug/internal/registry"
)

var commandSym = &Command{
	Name: "sym",
	Func: cmdSym,
	Help: "sym clear\n" +
		"    Clear the symbol table.\n" +
		"sym set <name> <value>\n" +
		"    Set or alter the value of a symbol.\n" +
		"sym del <name>\n" +
		"    Delete a symbol from the symbol table.\n" +
		"sym list\n" +
		"    List every symbol; this is the default with no arguments.\n" +
		"sym load <filename>\n" +
		"    Load symbols from a YAML file, adding to the table.\n" +
		"sym save <filename>\n" +
		"    Save the current symbol table to a YAML file.\n",
}

func cmdSym(e *Engine, args *string) error {
	sub, ok := argscan.Next(args)
	if !ok {
		sub = "list"
	}

	switch {
	case registry.FoldEqual(sub, "list"):
		e.listSymbols()
		return nil

	case registry.FoldEqual(sub, "clear"):
		if !e.ModifyPrompt(ModifySyms) {
			return nil
		}
		e.syms.Clear()
		e.ModifyClear(ModifySyms)
		return nil

	case registry.FoldEqual(sub, "set"):
		name, ok := argscan.Next(args)
		if !ok || *args == "" {
			return commandErrorf(nil, "sym: need a name and a value to set")
		}
		value, err := e.Eval(*args)
		if err != nil {
			return err
		}
		if err := e.syms.Set(name, value); err != nil {
			return commandErrorf(nil, "sym: can't set %s: %v", name, err)
		}
		return nil

	case registry.FoldEqual(sub, "del"):
		name, ok := argscan.Next(args)
		if !ok {
			return commandErrorf(nil, "sym: need a name to delete")
		}
		if !e.syms.Delete(name) {
			return commandErrorf(nil, "sym: no such symbol: %s", name)
		}
		return nil

	case registry.FoldEqual(sub, "load"):
		filename, ok := argscan.Next(args)
		if !ok {
			return commandErrorf(nil, "sym: filename must be specified")
		}
		if !e.ModifyPrompt(ModifySyms) {
			return nil
		}
		return e.LoadSymbols(filename)

	case registry.FoldEqual(sub, "save"):
		filename, ok := argscan.Next(args)
		if !ok {
			return commandErrorf(nil, "sym: filename must be specified")
		}
		return e.SaveSymbols(filename)
	}

	return commandErrorf(nil, "sym: unknown subcommand: %s", sub)
}

func (e *Engine) listSymbols() {
	for _, name := range e.syms.Names() {
		value, _ := e.syms.Resolve(name)
		e.printf("0x%04x: ", uint32(value))
		e.Colorize("1m")
		e.writeString(name)
		e.Colorize("0m")
		e.writeString("\n")
	}
}

// LoadSymbols adds symbols from a YAML file to the table.
func (e *Engine) LoadSymbols(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return commandErrorf(nil, "sym: can't open %s: %v", filename, unwrapPath(err))
	}
	defer f.Close()
	if err := e.syms.Load(f); err != nil {
		return commandErrorf(nil, "sym: can't load %s: %v", filename, err)
	}
	return nil
}

// SaveSymbols writes the symbol table to a YAML file, flagging the symbols
// as saved.
func (e *Engine) SaveSymbols(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return commandErrorf(nil, "sym: can't create %s: %v", filename, unwrapPath(err))
	}
	err = e.syms.Save(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return commandErrorf(nil, "sym: can't save %s: %v", filename, err)
	}
	e.ModifyClear(ModifySyms)
	return nil
}
