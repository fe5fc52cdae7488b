package runeio_test

import (
	"testing"

	"github.com/jcorbin/gomspdebug/internal/runeio"
	"github.com/stretchr/testify/assert"
)

func TestCaretForm(t *testing.T) {
	assert.Equal(t, "^@", runeio.CaretForm(0x00))
	assert.Equal(t, "^[", runeio.CaretForm(0x1b))
	assert.Equal(t, "^?", runeio.CaretForm(0x7f))
	assert.Equal(t, "^[[", runeio.CaretForm(0x9b))
	assert.Equal(t, "", runeio.CaretForm('a'))
}

func TestByteForm(t *testing.T) {
	assert.Equal(t, "#", runeio.ByteForm('#'))
	assert.Equal(t, "^A", runeio.ByteForm(0x01))
	assert.Equal(t, "^?", runeio.ByteForm(0x7f))
	assert.Equal(t, `\x9b`, runeio.ByteForm(0x9b))
	assert.Equal(t, `\xff`, runeio.ByteForm(0xff))
}
