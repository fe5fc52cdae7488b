package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// NewWriteFlusher returns w as a WriteFlusher: writers that already flush are
// returned as is, in-memory buffers and io.Discard get a no-op Flush, and
// anything else is buffered by a new bufio.Writer that must be flushed
// before blocking on input.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if wf, is := w.(WriteFlusher); is {
		return wf
	}
	if w == io.Discard || isBuffer(w) {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

// isBuffer matches in memory buffers like bytes.Buffer and strings.Builder.
func isBuffer(w io.Writer) bool {
	_, is := w.(interface {
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	})
	return is
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// WriteFlushers tees any number of WriteFlusher-s into one that writes into,
// and flushes, each of them in order. Nils are skipped, as are nested tees
// flattened; returns nil if none remain.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var t tee
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case tee:
			t = append(t, impl...)
		default:
			t = append(t, impl)
		}
	}
	switch len(t) {
	case 0:
		return nil
	case 1:
		return t[0]
	}
	return t
}

type tee []WriteFlusher

func (t tee) Write(p []byte) (int, error) {
	for _, wf := range t {
		if n, err := wf.Write(p); err != nil {
			return n, err
		} else if n < len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

// Flush flushes every writer, returning the first error.
func (t tee) Flush() (err error) {
	for _, wf := range t {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
