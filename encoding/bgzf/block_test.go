package bgzf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTerminator(t *testing.T) {
	c := NewCursor(append([]byte(nil), Terminator...))
	res := parseBlock(c)
	require.Equal(t, outcomeOK, res.Outcome)
	assert.Equal(t, 2, len(res.Block.Payload))
	assert.Equal(t, 27, res.Block.Header.BSize)
	assert.Equal(t, uint32(0), res.Block.CRC)
	assert.Equal(t, uint32(0), res.Block.ISize)
	assert.Equal(t, 0, c.Len())
}

func TestParseBadMagic(t *testing.T) {
	bad := append([]byte(nil), Terminator...)
	bad[0] = 0x00
	c := NewCursor(bad)
	res := parseBlock(c)
	require.Equal(t, outcomeMalformed, res.Outcome)
	require.NotNil(t, res.Err)
	assert.Equal(t, KindMalformedHeader, res.Err.Kind)
}

func TestParseNeedMoreBytes(t *testing.T) {
	truncated := Terminator[:len(Terminator)-5]
	c := NewCursor(truncated)
	before := c.Len()
	res := parseBlock(c)
	require.Equal(t, outcomeNeedMoreBytes, res.Outcome)
	assert.Equal(t, before, c.Len(), "cursor must be restored to its pre-parse position")
}

func TestParseNoBCSubfield(t *testing.T) {
	bad := append([]byte(nil), Terminator...)
	bad[12] = 'X' // corrupt the "BC" subfield id
	c := NewCursor(bad)
	res := parseBlock(c)
	require.Equal(t, outcomeMalformed, res.Outcome)
	assert.Equal(t, KindMalformedHeader, res.Err.Kind)
}

func TestEmitHeaderMatchesTerminator(t *testing.T) {
	// The terminator's payload is the canonical 2-byte empty raw-DEFLATE
	// stream; emitHeader over that payload length must reproduce the
	// terminator's header bytes exactly.
	dst := make([]byte, blockHeaderLen)
	n := emitHeader(dst, 2)
	assert.Equal(t, blockHeaderLen, n)
	assert.Equal(t, Terminator[:blockHeaderLen], dst)
}

func TestEmitTailer(t *testing.T) {
	dst := make([]byte, blockTailerLen)
	emitTailer(dst, 0, 0)
	assert.Equal(t, Terminator[blockHeaderLen+2:], dst)
}
