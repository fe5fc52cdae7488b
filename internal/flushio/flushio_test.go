package flushio_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/jcorbin/gomspdebug/internal/flushio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriteFlusher(t *testing.T) {
	var sb strings.Builder
	wf := flushio.NewWriteFlusher(&sb)
	_, err := io.WriteString(wf, "(mspdebug) ")
	require.NoError(t, err)
	assert.Equal(t, "(mspdebug) ", sb.String(), "buffers are written through")
	assert.NoError(t, wf.Flush())

	bw := bufio.NewWriter(&sb)
	assert.Same(t, bw, flushio.NewWriteFlusher(bw), "flushers are returned as is")

	assert.NotNil(t, flushio.NewWriteFlusher(io.Discard))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	_, isBuffered := flushio.NewWriteFlusher(f).(*bufio.Writer)
	assert.True(t, isBuffered, "files get buffered")
}

type errFlusher struct{ io.Writer }

func (errFlusher) Flush() error { return errors.New("flush failed") }

func TestWriteFlushers(t *testing.T) {
	assert.Nil(t, flushio.WriteFlushers())
	assert.Nil(t, flushio.WriteFlushers(nil, nil))

	var a, b bytes.Buffer
	one := flushio.NewWriteFlusher(&a)
	assert.Equal(t, one, flushio.WriteFlushers(nil, one))

	tee := flushio.WriteFlushers(one, flushio.NewWriteFlusher(&b))
	tee = flushio.WriteFlushers(tee, errFlusher{io.Discard})
	n, err := io.WriteString(tee, "0x10 (16)\n")
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "0x10 (16)\n", a.String())
	assert.Equal(t, "0x10 (16)\n", b.String())
	assert.EqualError(t, tee.Flush(), "flush failed")
}
