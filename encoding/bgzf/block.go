package bgzf

import "encoding/binary"

// Cursor is a pointer-plus-remaining-length view into a source buffer. A Go
// slice already carries pointer and length together, so Cursor is a thin
// wrapper whose only job is to make "save position, maybe restore it"
// explicit at call sites that need atomic parsing.
type Cursor struct {
	buf []byte
}

// NewCursor returns a Cursor over buf. buf is not copied; the cursor and its
// caller share the backing array.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Len reports the number of unconsumed bytes.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the unconsumed suffix of the cursor's buffer, without
// advancing. Callers must not retain it past the next mutating call.
func (c *Cursor) Remaining() []byte { return c.buf }

// snapshot captures the cursor's current position for a later restore. This
// is a slice header copy, not a data copy.
func (c *Cursor) snapshot() []byte { return c.buf }

// restore rewinds the cursor to a previously captured snapshot.
func (c *Cursor) restore(saved []byte) { c.buf = saved }

// advance consumes and returns the next n bytes. Callers must check Len()
// first; advance does not bounds-check.
func (c *Cursor) advance(n int) []byte {
	b := c.buf[:n:n]
	c.buf = c.buf[n:]
	return b
}

// BlockHeader summarizes a successfully parsed block's framing, for callers
// that want to report per-block bookkeeping (e.g. virtual offsets) without
// reaching into package internals.
type BlockHeader struct {
	// BSize is the "BC" subfield's BSIZE value: on-wire block length - 1.
	BSize int
	// PayloadLen is the length of the raw DEFLATE payload.
	PayloadLen int
	// ExtraLen is the total length of the extra-subfields area (xlen).
	ExtraLen int
}

// BlockLen returns the total on-wire length of the block this header
// describes.
func (h BlockHeader) BlockLen() int { return h.BSize + 1 }

// parseOutcome discriminates the three-way result of parsing one block: a
// fully-parsed block, a signal that the cursor does not yet cover a whole
// block (not an error — the planner uses it to stop and emit a tail), or a
// structurally malformed block (fatal).
type parseOutcome int

const (
	outcomeOK parseOutcome = iota
	outcomeNeedMoreBytes
	outcomeMalformed
)

// parsedBlock is the payload of a successful parse: the block's header
// summary, a slice into the source buffer holding the raw DEFLATE payload,
// and the tailer's CRC32/ISIZE fields.
type parsedBlock struct {
	Header  BlockHeader
	Payload []byte
	CRC     uint32
	ISize   uint32
}

// parseResult is the discriminated return value of parseBlock: exactly one
// of Block (if Outcome == outcomeOK) or Err (if Outcome == outcomeMalformed)
// is populated.
type parseResult struct {
	Outcome parseOutcome
	Block   parsedBlock
	Err     *Error
}

// parseBlock reads one BGZF block from c. On outcomeOK, c has been advanced
// past the whole block. On outcomeMalformed, c's position is unspecified:
// the caller should give up on this cursor, not resume it. On
// outcomeNeedMoreBytes (c does not yet cover the fixed header, the extra
// area, or the payload and tailer), c is left exactly where it was before
// this call: the parse is atomic, so a chunk with a partial trailing block
// can be retried later with more bytes appended.
func parseBlock(c *Cursor) parseResult {
	saved := c.snapshot()

	if c.Len() < 12 {
		return parseResult{Outcome: outcomeNeedMoreBytes}
	}
	fixed := c.advance(12)
	if fixed[0] != bgzfMagic[0] || fixed[1] != bgzfMagic[1] || fixed[2] != bgzfMagic[2] || fixed[3] != bgzfMagic[3] {
		return parseResult{Outcome: outcomeMalformed, Err: newError(KindMalformedHeader, "bad magic")}
	}
	xlen := int(binary.LittleEndian.Uint16(fixed[10:12]))

	if c.Len() < xlen {
		c.restore(saved)
		return parseResult{Outcome: outcomeNeedMoreBytes}
	}
	extra := c.advance(xlen)

	bsize := -1
	pos := 0
	for pos < len(extra) {
		if len(extra)-pos < 4 {
			return parseResult{Outcome: outcomeMalformed, Err: newError(KindMalformedHeader, "extra subfield header truncated")}
		}
		id0, id1 := extra[pos], extra[pos+1]
		sublen := int(binary.LittleEndian.Uint16(extra[pos+2 : pos+4]))
		pos += 4
		if len(extra)-pos < sublen {
			return parseResult{Outcome: outcomeMalformed, Err: newError(KindMalformedHeader, "extra subfield payload truncated")}
		}
		if id0 == bcSubfieldID[0] && id1 == bcSubfieldID[1] {
			if sublen != 2 {
				return parseResult{Outcome: outcomeMalformed, Err: newError(KindMalformedHeader, "BC subfield has wrong length")}
			}
			if bsize != -1 {
				return parseResult{Outcome: outcomeMalformed, Err: newError(KindMalformedHeader, "duplicate BC subfield")}
			}
			bsize = int(binary.LittleEndian.Uint16(extra[pos : pos+2]))
		}
		pos += sublen
	}
	if pos != len(extra) {
		return parseResult{Outcome: outcomeMalformed, Err: newError(KindMalformedHeader, "extra area does not close cleanly")}
	}
	if bsize == -1 {
		return parseResult{Outcome: outcomeMalformed, Err: newError(KindMalformedHeader, "no BC subfield")}
	}

	blockLen := bsize + 1
	headerLen := 12 + xlen
	payloadLen := blockLen - headerLen - blockTailerLen
	if payloadLen < 0 {
		return parseResult{Outcome: outcomeMalformed, Err: newError(KindMalformedHeader, "BSIZE inconsistent with header length")}
	}

	if c.Len() < payloadLen+blockTailerLen {
		c.restore(saved)
		return parseResult{Outcome: outcomeNeedMoreBytes}
	}
	payload := c.advance(payloadLen)
	tailer := c.advance(blockTailerLen)
	crc := binary.LittleEndian.Uint32(tailer[0:4])
	isize := binary.LittleEndian.Uint32(tailer[4:8])

	return parseResult{
		Outcome: outcomeOK,
		Block: parsedBlock{
			Header: BlockHeader{
				BSize:      bsize,
				PayloadLen: payloadLen,
				ExtraLen:   xlen,
			},
			Payload: payload,
			CRC:     crc,
			ISize:   isize,
		},
	}
}

// emitHeader writes the fixed 12-byte header and the 6-byte "BC" extra
// subfield at the start of dst, with BSIZE computed from deflatedLen (the
// length of the payload the caller has already written at dst[blockHeaderLen:]).
// It returns blockHeaderLen, the number of bytes written, so callers can
// write the payload and tailer immediately after.
//
// dst must have at least blockHeaderLen bytes of space; the total framed
// block (header + payload + tailer) must not exceed MaxBlockSize, which
// emitTailer's caller is responsible for having checked.
func emitHeader(dst []byte, deflatedLen int) int {
	dst[0], dst[1], dst[2], dst[3] = bgzfMagic[0], bgzfMagic[1], bgzfMagic[2], bgzfMagic[3]
	dst[4], dst[5], dst[6], dst[7] = 0, 0, 0, 0 // MTIME, unset
	dst[8] = 0                                  // XFL
	dst[9] = 0xff                               // OS, unknown
	binary.LittleEndian.PutUint16(dst[10:12], 6) // XLEN: one 6-byte "BC" subfield

	dst[12], dst[13] = bcSubfieldID[0], bcSubfieldID[1]
	binary.LittleEndian.PutUint16(dst[14:16], 2) // subfield payload length

	bsize := blockHeaderLen + deflatedLen + blockTailerLen - 1
	binary.LittleEndian.PutUint16(dst[16:18], uint16(bsize))
	return blockHeaderLen
}

// emitTailer writes the 8-byte CRC32+ISIZE tailer at the start of dst.
func emitTailer(dst []byte, crc uint32, isize uint32) {
	binary.LittleEndian.PutUint32(dst[0:4], crc)
	binary.LittleEndian.PutUint32(dst[4:8], isize)
}
