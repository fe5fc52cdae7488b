package main

import (
	"sort"
	"strings"

	"github.com/jcorbin/gomspdebug/internal/argscan"
	"github.com/jcorbin/gomspdebug/internal/option"
	"github.com/jcorbin/gomspdebug/internal/registry"
)

const (
	helpMaxNames = 128
	helpIndent   = "    "
	helpWidth    = 72
)

var (
	commandHelp = &Command{
		Name: "help",
		Func: cmdHelp,
		Help: "help [command]\n" +
			"    Without arguments, displays a list of commands. With a command\n" +
			"    name as an argument, displays help for that command.\n",
	}

	commandOpt = &Command{
		Name: "opt",
		Func: cmdOpt,
		Help: "opt [name] [value]\n" +
			"    Query or set option variables. With no arguments, displays all\n" +
			"    available options.\n",
	}

	commandRead = &Command{
		Name: "read",
		Func: cmdRead,
		Help: "read <filename>\n" +
			"    Read commands from a file and evaluate them.\n",
	}

	commandEval = &Command{
		Name: "=",
		Func: cmdEval,
		Help: "= <expression>\n" +
			"    Evaluate an address expression, showing the result in hex and\n" +
			"    decimal. Expressions may use symbols, + - * / %, unary minus and\n" +
			"    parentheses.\n",
	}
)

func newColorOption() *option.Option {
	return &option.Option{
		Name: "color",
		Kind: option.Boolean,
		Help: "Colorize symbol listings.\n",
	}
}

func (e *Engine) registerBuiltins() {
	e.color = newColorOption()
	e.RegisterOption(e.color)

	e.RegisterCommand(commandHelp)
	e.RegisterCommand(commandOpt)
	e.RegisterCommand(commandRead)
	e.RegisterCommand(commandEval)
	e.RegisterCommand(commandSym)
}

func cmdHelp(e *Engine, args *string) error {
	topic, ok := argscan.Next(args)
	if !ok {
		e.showHelp()
		return nil
	}

	cmd, isCmd := e.commands.Find(topic)
	opt, isOpt := e.options.Find(topic)
	if !isCmd && !isOpt {
		return commandErrorf(nil, "help: unknown command: %s", topic)
	}

	if isCmd {
		e.printf("COMMAND: %s\n", cmd.Name)
		e.writeString(cmd.Help)
		if isOpt {
			e.writeString("\n")
		}
	}
	if isOpt {
		e.printf("OPTION: %s (%s)\n", opt.Name, opt.Kind)
		e.writeString(opt.Help)
	}
	return nil
}

func (e *Engine) showHelp() {
	e.writeString("Available commands:\n")
	e.showNames(e.commands.Names())
	e.writeString("\n")

	e.writeString("Available options:\n")
	e.showNames(e.options.Names())
	e.writeString("\n")

	e.writeString("Type \"help <topic>\" for more information.\n")
	e.writeString("Press Ctrl+D to quit.\n")
}

// showNames lists names sorted case-insensitively in columns, filled top to
// bottom then left to right. Only the first helpMaxNames names are shown.
func (e *Engine) showNames(names []string) {
	if len(names) > helpMaxNames {
		names = names[:helpMaxNames]
	}
	names = append([]string(nil), names...)
	sort.SliceStable(names, func(i, j int) bool {
		return registry.FoldLess(names[i], names[j])
	})

	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	width += 2

	cols := helpWidth / width
	if cols < 1 {
		cols = 1
	}
	rows := (len(names) + cols - 1) / cols

	var sb strings.Builder
	for i := 0; i < rows; i++ {
		sb.WriteString(helpIndent)
		for j := 0; j < cols; j++ {
			k := j*rows + i
			if k >= len(names) {
				break
			}
			sb.WriteString(names[k])
			for n := len(names[k]); n < width; n++ {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	e.writeString(sb.String())
}

func cmdOpt(e *Engine, args *string) error {
	name, ok := argscan.Next(args)
	if !ok {
		for _, opt := range e.options.Entries() {
			e.displayOption(opt)
		}
		return nil
	}

	opt, found := e.options.Find(name)
	if !found {
		return commandErrorf(ErrUnknownOption, "opt: no such option: %s", name)
	}

	if *args == "" {
		e.displayOption(opt)
		return nil
	}

	return e.setOption(opt, *args)
}

func (e *Engine) displayOption(opt *option.Option) {
	if err := opt.Display(e.out); err != nil && e.outErr == nil {
		e.outErr = err
	}
}

// SetOption parses text into the named option, as "opt name text" would.
func (e *Engine) SetOption(name, text string) error {
	opt, found := e.options.Find(name)
	if !found {
		return commandErrorf(ErrUnknownOption, "opt: no such option: %s", name)
	}
	return e.setOption(opt, text)
}

func (e *Engine) setOption(opt *option.Option, text string) error {
	if err := opt.Parse(text, e.syms); err != nil {
		return commandErrorf(nil, "opt: can't parse option: %s", text).because(err)
	}
	e.logf("opt %v = %v", opt.Name, opt.Value())
	return nil
}

func cmdRead(e *Engine, args *string) error {
	filename, ok := argscan.Next(args)
	if !ok {
		return commandErrorf(nil, "read: filename must be specified")
	}
	return e.ProcessFile(filename)
}

func cmdEval(e *Engine, args *string) error {
	value, err := e.Eval(*args)
	if err != nil {
		return err
	}
	e.printf("0x%x (%d)\n", uint32(value), value)
	return nil
}
