package fileinput_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/gomspdebug/internal/fileinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeCounter struct {
	io.Reader
	closed *int
}

func (cc closeCounter) Close() error {
	*cc.closed++
	return nil
}

func TestInput(t *testing.T) {
	var closed int
	in := fileinput.Input{Queue: []io.Reader{
		fileinput.Named("a.cmd", strings.NewReader("one\ntwo\n\nthree")),
		fileinput.Named("b.cmd", closeCounter{strings.NewReader("four\r\n"), &closed}),
		fileinput.Named("empty", strings.NewReader("")),
	}}

	var lines []string
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line.String())
	}

	assert.Equal(t, []string{
		`a.cmd:1 "one"`,
		`a.cmd:2 "two"`,
		`a.cmd:3 ""`,
		`a.cmd:4 "three"`,
		`b.cmd:1 "four\r"`,
	}, lines)
	assert.Equal(t, 1, closed, "expected exhausted stream to be closed")

	_, err := in.ReadLine()
	assert.Equal(t, io.EOF, err, "expected EOF to persist")
}

func TestInput_unnamed(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{strings.NewReader("x\n")}}
	line, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "<unnamed *strings.Reader>:1", line.Location.String())
}

func TestInput_close(t *testing.T) {
	var closed int
	in := fileinput.Input{Queue: []io.Reader{
		closeCounter{strings.NewReader("a\nb\n"), &closed},
		closeCounter{strings.NewReader("c\n"), &closed},
	}}
	line, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a", line.Text)
	require.NoError(t, in.Close())
	assert.Equal(t, 2, closed)
}
