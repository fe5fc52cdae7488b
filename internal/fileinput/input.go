package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location with the text read there, without its line feed.
type Line struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams. The location of the last line read is tracked to facilitate
// user feedback.
type Input struct {
	br    *bufio.Reader
	cur   io.Reader
	Queue []io.Reader
	Last  Location
}

// ReadLine reads the next line, moving on to the next queued stream after
// each one ends. A final line without a line feed is still returned. Returns
// io.EOF once every stream is exhausted; streams that implement io.Closer are
// closed when exhausted.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return Line{Location: in.Last}, io.EOF
		}

		text, err := in.br.ReadString('\n')
		if text != "" {
			in.Last.Line++
			return Line{
				Location: in.Last,
				Text:     strings.TrimSuffix(text, "\n"),
			}, nil
		}
		if err == nil {
			continue
		}
		if err != io.EOF {
			return Line{Location: in.Last}, err
		}
		in.closeIn()
	}
}

// Close closes the current stream and any still queued.
func (in *Input) Close() (err error) {
	in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur = nil
	in.br = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.br = bufio.NewReader(r)
	in.Last = Location{Name: nameOf(r)}
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// Named gives r a name for use in line locations.
func Named(name string, r io.Reader) io.Reader {
	if cl, ok := r.(io.ReadCloser); ok {
		return namedReadCloser{cl, name}
	}
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

type namedReadCloser struct {
	io.ReadCloser
	name string
}

func (nr namedReader) Name() string      { return nr.name }
func (nr namedReadCloser) Name() string { return nr.name }
