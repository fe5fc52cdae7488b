package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jcorbin/gomspdebug/internal/config"
	"github.com/jcorbin/gomspdebug/internal/logio"
)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func runMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli cliFlags
	cmd := cli.command(stdin, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "ERROR: %+v\n", err)
		return 1
	}
	return cli.exitCode
}

type cliFlags struct {
	configFile  string
	symbolsFile string
	commands    []string
	settings    []string
	trace       bool
	transcript  string
	interactive bool

	exitCode int
}

func (cli *cliFlags) command(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gomspdebug [flags] [script...]",
		Short: "Debugger command shell with address expressions",
		Long: `Runs debugger commands from scripts, from -c arguments, or from an
interactive session.

Scripts hold one command per line; lines starting with # are comments.
When no scripts or commands are given, commands are read from standard
input: interactively if it is a terminal, or as a script otherwise.

Examples:
  gomspdebug                          # interactive session
  gomspdebug -c "= 0x4400 + 2*8"      # evaluate an expression
  gomspdebug --symbols board.yaml setup.cmd`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.run(args, stdin, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cli.configFile, "config", "", "TOML configuration file")
	flags.StringVar(&cli.symbolsFile, "symbols", "", "YAML symbol table to load")
	flags.StringArrayVarP(&cli.commands, "command", "c", nil, "run a command; may be repeated")
	flags.StringArrayVar(&cli.settings, "opt", nil, "set an option as NAME=VALUE; may be repeated")
	flags.BoolVar(&cli.trace, "trace", false, "enable trace logging")
	flags.StringVar(&cli.transcript, "transcript", "", "copy standard output into a file")
	flags.BoolVar(&cli.interactive, "interactive", false, "run an interactive session after any scripts and commands")
	return cmd
}

func (cli *cliFlags) run(scripts []string, stdin io.Reader, stdout, stderr io.Writer) error {
	log.SetOutput(stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	diag := logio.NewLogger(stderr)
	opts := []EngineOption{
		WithInput(stdin),
		WithOutput(stdout),
		WithDiag(diag),
	}
	if cli.trace {
		log.SetLevel(log.DebugLevel)
		opts = append(opts, WithLogf(log.Debugf))
	}
	if cli.transcript != "" {
		f, err := os.Create(cli.transcript)
		if err != nil {
			return fmt.Errorf("unable to create transcript: %w", err)
		}
		defer f.Close()
		opts = append(opts, WithTee(f))
	}

	e := New(opts...)
	defer func() {
		if err := e.Flush(); err != nil {
			diag.Printf("ERROR", "unable to write output: %v", err)
		}
		cli.exitCode = diag.ExitCode()
	}()

	if !cli.startup(e, scripts) {
		return nil
	}

	switch {
	case cli.interactive:
		return e.ReaderLoop()
	case len(scripts) > 0 || len(cli.commands) > 0:
		return nil
	case isTerminal(stdin):
		return e.ReaderLoop()
	default:
		if err := e.ProcessReader("<stdin>", stdin); err != nil {
			e.report(err)
		}
		return nil
	}
}

// startup applies configuration, then runs scripts and commands, returning
// false after the first failure.
func (cli *cliFlags) startup(e *Engine, scripts []string) bool {
	if cli.configFile != "" {
		cfg, err := config.Load(cli.configFile)
		if err != nil {
			e.report(err)
			return false
		}
		if cfg.Symbols != "" {
			if err := e.LoadSymbols(cfg.Symbols); err != nil {
				e.report(err)
				return false
			}
		}
		settings, err := cfg.Settings()
		if err != nil {
			e.report(err)
			return false
		}
		for _, setting := range settings {
			if err := e.SetOption(setting.Name, setting.Word); err != nil {
				e.report(err)
				return false
			}
		}
		scripts = append(cfg.Scripts[:len(cfg.Scripts):len(cfg.Scripts)], scripts...)
	}

	if cli.symbolsFile != "" {
		if err := e.LoadSymbols(cli.symbolsFile); err != nil {
			e.report(err)
			return false
		}
	}
	e.ModifyClear(ModifyAll)

	for _, setting := range cli.settings {
		name, word, ok := strings.Cut(setting, "=")
		if !ok {
			e.report(fmt.Errorf("invalid --opt %q, want NAME=VALUE", setting))
			return false
		}
		if err := e.SetOption(name, word); err != nil {
			e.report(err)
			return false
		}
	}

	for _, script := range scripts {
		if err := e.ProcessFile(script); err != nil {
			e.report(err)
			return false
		}
	}

	for _, command := range cli.commands {
		if err := e.Dispatch(command, false); err != nil {
			return false
		}
	}
	return true
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
