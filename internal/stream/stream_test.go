package stream

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffered_FeedAndRead(t *testing.T) {
	s := New(nil)

	assert.Equal(t, 0, s.Available())
	s.FeedString("ab")
	assert.Equal(t, 2, s.Available())

	ch, err := s.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), ch)

	ch, err = s.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('b'), ch)
	assert.Equal(t, 0, s.Available())
}

func TestBuffered_ReadByteEmptyDoesNotBlock(t *testing.T) {
	s := New(nil)

	_, err := s.ReadByte()
	assert.Equal(t, io.EOF, err)
}

func TestBuffered_WritePassesThrough(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	n, err := s.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", out.String())
}

func TestBuffered_NilSinkDiscards(t *testing.T) {
	s := New(nil)

	n, err := s.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestBuffered_Pump(t *testing.T) {
	s := New(nil)

	err := s.Pump(strings.NewReader("led on\r"))
	require.NoError(t, err)
	assert.Equal(t, 7, s.Available())
}
