package bgzf

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeflateInflateOneRoundTrip(t *testing.T) {
	input := []byte("ABCDEFGH")
	out := make([]byte, MaxBlockSize)

	n, crc, err := deflateOne(input, out)
	require.Nil(t, err)
	assert.Equal(t, crc32.ChecksumIEEE(input), crc)

	inflated := make([]byte, len(input))
	d := &Descriptor{
		Input:        out[:n],
		Output:       inflated,
		ExpectedSize: len(input),
		ExpectedCRC:  crc,
	}
	require.Nil(t, inflateOne(d))
	assert.Equal(t, input, inflated)
}

func TestInflateOneCrcMismatch(t *testing.T) {
	input := []byte("hello, bgzf")
	out := make([]byte, MaxBlockSize)
	n, crc, err := deflateOne(input, out)
	require.Nil(t, err)

	inflated := make([]byte, len(input))
	d := &Descriptor{
		Input:        out[:n],
		Output:       inflated,
		ExpectedSize: len(input),
		ExpectedCRC:  crc ^ 0xffffffff,
	}
	cerr := inflateOne(d)
	require.NotNil(t, cerr)
	assert.Equal(t, KindCrcMismatch, cerr.Kind)
}

func TestInflateOneSizeMismatch(t *testing.T) {
	input := []byte("hello, bgzf")
	out := make([]byte, MaxBlockSize)
	n, crc, err := deflateOne(input, out)
	require.Nil(t, err)

	inflated := make([]byte, len(input)+5)
	d := &Descriptor{
		Input:        out[:n],
		Output:       inflated,
		ExpectedSize: len(input) + 5,
		ExpectedCRC:  crc,
	}
	cerr := inflateOne(d)
	require.NotNil(t, cerr)
	assert.Equal(t, KindSizeMismatch, cerr.Kind)
}

func TestDeflateEmptyInput(t *testing.T) {
	out := make([]byte, MaxBlockSize)
	n, crc, err := deflateOne(nil, out)
	require.Nil(t, err)
	assert.Equal(t, uint32(0), crc)
	assert.Equal(t, 2, n, "canonical empty raw-deflate stream is 2 bytes")
}
