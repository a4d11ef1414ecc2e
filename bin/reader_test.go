package bin

import (
	"bytes"
	"errors"
	"testing"

	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/errs"
	"github.com/stretchr/testify/require"
)

func TestReaderPeekIsTerminator(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	r := NewReader(bytes.NewReader([]byte{0x00, 0x41}), engine)

	isTerm, err := r.PeekIsTerminator()
	require.NoError(t, err)
	require.True(t, isTerm)

	// peeking again without consuming returns the same answer
	isTerm, err = r.PeekIsTerminator()
	require.NoError(t, err)
	require.True(t, isTerm)

	b, err := r.ReadU8()
	require.NoError(t, err)
	require.EqualValues(t, 0, b)

	isTerm, err = r.PeekIsTerminator()
	require.NoError(t, err)
	require.False(t, isTerm)

	b, err = r.ReadU8()
	require.NoError(t, err)
	require.EqualValues(t, 0x41, b)
}

func TestReaderReadBytesRejectsOversized(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	r := NewReader(bytes.NewReader([]byte{1, 2, 3, 4}), engine)

	_, err := r.ReadBytes(8, 4)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidSize))
}

func TestReaderReadNullTerminatedStringRejectsOversized(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	r := NewReader(bytes.NewReader([]byte("toolong\x00")), engine)

	_, err := r.ReadNullTerminatedString(4)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidSize))
}

func TestReaderReadNullTerminatedStringEmpty(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	r := NewReader(bytes.NewReader([]byte{0x00}), engine)

	s, err := r.ReadNullTerminatedString(16)
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestReaderReadU8EOF(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	r := NewReader(bytes.NewReader(nil), engine)

	_, err := r.ReadU8()
	require.Error(t, err)
}
