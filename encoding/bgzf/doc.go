// Package bgzf implements the parallel block codec for the .bgzf (Blocked
// GZip Format) container.  A .bgzf stream is a concatenation of independently
// decodable gzip members, each wrapping at most 64KB of uncompressed payload
// and carrying a "BC" extra subfield that records the member's total on-wire
// size.  Because every member is self-contained, many members can be
// inflated or deflated in parallel; that is what this package does.
//
// This package is deliberately batch-oriented, not stream-oriented: callers
// hand it a set of byte ranges (to inflate) or one contiguous buffer (to
// deflate) along with caller-owned output space, and get back a structured
// result describing what was consumed and produced. There is no buffering,
// no file handle, and no retry policy here; see StreamWriter and
// StreamReader in this same package for a convenience layer built on top of
// the batch API, and cmd/bgzfcat for an end-to-end caller.
//
// For the wire format itself, see the SAM/BAM specification:
// https://samtools.github.io/hts-specs/SAMv1.pdf
package bgzf

const (
	// MaxBlockSize is the largest legal on-wire size of a single BGZF block,
	// header, payload, and tailer included.
	MaxBlockSize = 0x10000

	// MaxInflatedSize is the largest legal uncompressed size of a single
	// BGZF block, per the tailer's 32-bit ISIZE field being bounded in
	// practice by MaxBlockSize.
	MaxInflatedSize = 0x10000

	// DefaultWindowSize is the target uncompressed size used when splitting
	// input into windows for DeflateBatch. It leaves enough room that even
	// incompressible input still fits in MaxBlockSize once framed.
	DefaultWindowSize = 0xff00

	// DefaultMaxBlocks is the recommended upper bound on the number of
	// block descriptors planned in a single batch. It is a tuning
	// parameter, not a protocol constant: callers may raise or lower it via
	// Options.MaxBlocks. Tests must not assume this exact value.
	DefaultMaxBlocks = 300

	// blockHeaderLen is the length, in bytes, of the fixed BGZF header plus
	// the "BC" extra subfield: 12 (fixed gzip header) + 6 ("BC" subfield).
	blockHeaderLen = 18

	// blockTailerLen is the length, in bytes, of the CRC32+ISIZE tailer.
	blockTailerLen = 8

	// minBlockSize is the on-wire size of the smallest legal block: header,
	// zero-length payload, tailer.
	minBlockSize = blockHeaderLen + blockTailerLen
)

// bgzfMagic is the four-byte gzip-with-FEXTRA magic every BGZF block starts
// with: gzip ID1, ID2, the DEFLATE compression method, and FLG.FEXTRA.
var bgzfMagic = [4]byte{0x1f, 0x8b, 0x08, 0x04}

// bcSubfieldID is the two-byte "BC" extra-subfield identifier BGZF uses to
// carry BSIZE.
var bcSubfieldID = [2]byte{'B', 'C'}

// Terminator is the 28-byte BGZF end-of-file sentinel: a valid block whose
// DEFLATE payload represents zero bytes. Writing it at the end of a stream
// is the caller's responsibility; this package only produces and consumes
// it like any other block.
var Terminator = []byte{
	0x1f, 0x8b, 0x08, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0x06, 0x00,
	0x42, 0x43, 0x02, 0x00, 0x1b, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}
