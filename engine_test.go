package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/gomspdebug/internal/argscan"
	"github.com/jcorbin/gomspdebug/internal/logio"
	"github.com/jcorbin/gomspdebug/internal/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engineTestCases []engineTestCase

func (ets engineTestCases) run(t *testing.T) {
	for _, et := range ets {
		if !t.Run(et.name, et.run) {
			return
		}
	}
}

func engineTest(name string) (et engineTestCase) {
	et.name = name
	return et
}

type engineTestCase struct {
	name    string
	input   io.Reader
	setup   []func(t *testing.T, e *Engine)
	ops     []func(e *Engine) error
	expects []func(t *testing.T, e *Engine)
	wantErr error

	wantOut  *string
	wantDiag *string
}

func (et engineTestCase) withInput(input string) engineTestCase {
	et.input = strings.NewReader(input)
	return et
}

func (et engineTestCase) withSym(name string, value int32) engineTestCase {
	et.setup = append(et.setup, func(t *testing.T, e *Engine) {
		require.NoError(t, e.syms.Set(name, value))
		e.ModifyClear(ModifyAll)
	})
	return et
}

func (et engineTestCase) withModified(flags ModifyFlags) engineTestCase {
	et.setup = append(et.setup, func(t *testing.T, e *Engine) {
		e.ModifySet(flags)
	})
	return et
}

func (et engineTestCase) withCommand(name string, fn Handler) engineTestCase {
	et.setup = append(et.setup, func(t *testing.T, e *Engine) {
		e.RegisterCommand(&Command{Name: name, Func: fn, Help: name + "\n"})
	})
	return et
}

func (et engineTestCase) withOption(name string, kind option.Kind) engineTestCase {
	et.setup = append(et.setup, func(t *testing.T, e *Engine) {
		e.RegisterOption(&option.Option{Name: name, Kind: kind, Help: name + " option\n"})
	})
	return et
}

// dispatch runs command lines non-interactively.
func (et engineTestCase) dispatch(lines ...string) engineTestCase {
	for _, line := range lines {
		line := line
		et.ops = append(et.ops, func(e *Engine) error { return e.Dispatch(line, false) })
	}
	return et
}

// interact runs command lines as a user would.
func (et engineTestCase) interact(lines ...string) engineTestCase {
	for _, line := range lines {
		line := line
		et.ops = append(et.ops, func(e *Engine) error { return e.Dispatch(line, true) })
	}
	return et
}

func (et engineTestCase) do(ops ...func(e *Engine) error) engineTestCase {
	et.ops = append(et.ops, ops...)
	return et
}

func (et engineTestCase) expectError(err error) engineTestCase {
	et.wantErr = err
	return et
}

func (et engineTestCase) expectOutput(lines ...string) engineTestCase {
	out := strings.Join(lines, "")
	et.wantOut = &out
	return et
}

func (et engineTestCase) expectDiag(lines ...string) engineTestCase {
	var diag string
	if len(lines) > 0 {
		diag = strings.Join(lines, "\n") + "\n"
	}
	et.wantDiag = &diag
	return et
}

func (et engineTestCase) expect(expect ...func(t *testing.T, e *Engine)) engineTestCase {
	et.expects = append(et.expects, expect...)
	return et
}

func (et engineTestCase) expectSyms(pairs ...interface{}) engineTestCase {
	want := make(map[string]int32, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		want[pairs[i].(string)] = int32(pairs[i+1].(int))
	}
	return et.expect(func(t *testing.T, e *Engine) {
		got := make(map[string]int32, e.syms.Len())
		for _, name := range e.syms.Names() {
			got[name], _ = e.syms.Resolve(name)
		}
		assert.Equal(t, want, got, "expected symbols")
	})
}

func (et engineTestCase) expectModified(flags ModifyFlags) engineTestCase {
	return et.expect(func(t *testing.T, e *Engine) {
		assert.Equal(t, flags, e.Modified(), "expected modification flags")
	})
}

func (et engineTestCase) run(t *testing.T) {
	var out, diag strings.Builder
	opts := []EngineOption{
		WithOutput(&out),
		WithDiag(logio.NewLogger(&diag)),
		WithLogf(t.Logf),
	}
	if et.input != nil {
		opts = append(opts, WithInput(et.input))
	}
	e := New(opts...)
	for _, setup := range et.setup {
		setup(t, e)
	}

	var err error
	for _, op := range et.ops {
		if opErr := op(e); opErr != nil && err == nil {
			err = opErr
		}
	}
	require.NoError(t, e.Flush(), "unexpected output error")

	if et.wantErr != nil {
		assert.True(t, errors.Is(err, et.wantErr), "expected error: %v\ngot: %+v", et.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected error")
	}
	if et.wantOut != nil {
		assert.Equal(t, *et.wantOut, out.String(), "expected output")
	}
	if et.wantDiag != nil {
		assert.Equal(t, *et.wantDiag, diag.String(), "expected diagnostics")
	}
	for _, expect := range et.expects {
		expect(t, e)
	}

	if t.Failed() {
		lw := logio.Writer{Logf: t.Logf}
		fmt.Fprintf(&lw, "output:\n%s", out.String())
		fmt.Fprintf(&lw, "diagnostics:\n%s", diag.String())
		lw.Close()
	}
}

func TestDispatch(t *testing.T) {
	var calls []string
	record := func(label string) Handler {
		return func(e *Engine, args *string) error {
			calls = append(calls, fmt.Sprintf("%v interactive:%v args:%q", label, e.IsInteractive(), *args))
			return nil
		}
	}
	tokens := func(e *Engine, args *string) error {
		for {
			arg, ok := argscan.Next(args)
			if !ok {
				return nil
			}
			calls = append(calls, arg)
		}
	}
	expectCalls := func(want ...string) func(t *testing.T, e *Engine) {
		return func(t *testing.T, e *Engine) {
			assert.Equal(t, want, calls, "expected handler calls")
			calls = nil
		}
	}

	engineTestCases{
		engineTest("case insensitive").
			withCommand("Read", record("Read")).
			dispatch("read FILE", "READ  other  ").
			expectDiag().
			expect(expectCalls(
				`Read interactive:false args:"FILE"`,
				`Read interactive:false args:"other"`,
			)),

		engineTest("newest wins").
			withCommand("step", record("first")).
			withCommand("STEP", record("second")).
			interact("step").
			expect(expectCalls(`second interactive:true args:""`)),

		engineTest("empty lines").
			withCommand("step", record("step")).
			dispatch("", "   ", "\t\r\n").
			expectOutput().
			expectDiag().
			expect(expectCalls()),

		engineTest("unknown command").
			dispatch("bogus 1 2").
			expectError(ErrUnknownCommand).
			expectDiag(`unknown command: bogus (try "help")`),

		engineTest("quoted command name").
			withCommand("two words", record("quoted")).
			dispatch(`"two words" x`).
			expect(expectCalls(`quoted interactive:false args:"x"`)),

		engineTest("tokens").
			withCommand("step", tokens).
			dispatch(`step "a b" c`, `step "\x41\101\t" bare"q u"x`).
			expect(expectCalls("a b", "c", "AA\t", "bareq ux")),

		engineTest("handler failure is reported").
			withCommand("fail", func(e *Engine, args *string) error {
				return errors.New("fail: " + *args)
			}).
			dispatch("fail now").
			expectDiag("fail: now").
			expect(func(t *testing.T, e *Engine) {
				assert.Equal(t, 1, e.diag.ExitCode())
			}),

		engineTest("handler panic is reported").
			withCommand("crash", func(e *Engine, args *string) error {
				panic("kaboom")
			}).
			interact("crash").
			expectDiag("crash panicked: kaboom").
			expect(func(t *testing.T, e *Engine) {
				assert.False(t, e.IsInteractive(), "interactivity must be restored")
			}),

		engineTest("nested dispatch").
			withCommand("inner", record("inner")).
			withCommand("outer", func(e *Engine, args *string) error {
				record("before")(e, args)
				if err := e.Dispatch("inner "+*args, false); err != nil {
					return err
				}
				return record("after")(e, args)
			}).
			interact("outer 1").
			expect(expectCalls(
				`before interactive:true args:"1"`,
				`inner interactive:false args:"1"`,
				`after interactive:true args:"1"`,
			)).
			expect(func(t *testing.T, e *Engine) {
				assert.False(t, e.IsInteractive())
			}),

		engineTest("nested failure keeps context").
			withCommand("inner", func(e *Engine, args *string) error {
				panic(errors.New("inner broke"))
			}).
			withCommand("outer", func(e *Engine, args *string) error {
				e.Dispatch("inner", false)
				return record("after")(e, args)
			}).
			interact("outer").
			expectDiag("inner panicked: inner broke").
			expect(expectCalls(`after interactive:true args:""`)),
	}.run(t)
}

func TestEvalCommand(t *testing.T) {
	engineTestCases{
		engineTest("arithmetic").
			dispatch("= 2+3*4", "= (2+3)*4", "= -1", "= 0x7fffffff+1").
			expectOutput(
				"0xe (14)\n",
				"0x14 (20)\n",
				"0xffffffff (-1)\n",
				"0x80000000 (-2147483648)\n",
			),

		engineTest("symbols").
			withSym("main", 0x4400).
			withSym(".text", 0x4000).
			dispatch("= main + 2", "= main - .text").
			expectOutput("0x4402 (17410)\n", "0x400 (1024)\n"),

		engineTest("errors").
			dispatch("= 10/0", "= nope", "= (", "=").
			expectOutput().
			expectDiag(
				`bad address expression "10/0": divide by zero`,
				`bad address expression "nope": can't parse token: nope`,
				`bad address expression "(": parenthesis mismatch: (`,
				`bad address expression "": syntax error at end of expression`,
			),
	}.run(t)
}
