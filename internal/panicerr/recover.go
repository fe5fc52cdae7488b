package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f in a new goroutine, converting any panic or runtime.Goexit
// into a non-nil error return. The caller blocks until f is done, so f may
// freely use state owned by the caller.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer func() {
			// a normal return has already sent, maybe nil
			select {
			case errch <- recovered{name: name, exited: true}:
			default:
			}
		}()
		defer func() {
			if e := recover(); e != nil {
				errch <- recovered{name: name, value: e, stack: debug.Stack()}
			}
		}()
		errch <- f()
	}()
	return <-errch
}

// recovered is an abnormal exit from a Recover-ed function: either a panic
// with its value and stack, or a call to runtime.Goexit.
type recovered struct {
	name   string
	value  interface{}
	stack  []byte
	exited bool
}

func (r recovered) Error() string { return fmt.Sprint(r) }

func (r recovered) Format(f fmt.State, c rune) {
	prefix := ""
	if r.name != "" {
		prefix = r.name + " "
	}
	if r.exited {
		fmt.Fprintf(f, "%scalled runtime.Goexit", prefix)
		return
	}
	fmt.Fprintf(f, "%spanicked: %v", prefix, r.value)
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", r.stack)
	}
}

// Unwrap returns the panic value if it is an error.
func (r recovered) Unwrap() error {
	err, _ := r.value.(error)
	return err
}

// IsPanic returns true if err indicates a recovered panic.
func IsPanic(err error) bool {
	var r recovered
	return errors.As(err, &r) && !r.exited
}

// IsExit returns true if err indicates a recovered runtime.Goexit.
func IsExit(err error) bool {
	var r recovered
	return errors.As(err, &r) && r.exited
}

// PanicStack returns the stack trace of a recovered panic, or "" if err is
// not one.
func PanicStack(err error) string {
	var r recovered
	if errors.As(err, &r) {
		return string(r.stack)
	}
	return ""
}
