package bgzf

import (
	"bytes"
	"hash/crc32"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"
)

// The DEFLATE primitive is treated as an opaque external collaborator: raw
// (unwrapped) DEFLATE, incremental push with a finish signal, an output-byte
// counter, distinct init/processing error codes.
// github.com/klauspost/compress/flate already satisfies that contract for
// both directions — its Reader and Writer operate on raw DEFLATE streams,
// the same choice the reference parallel-gzip implementation in the pack
// makes (see DESIGN.md).

var flateWriterPool = sync.Pool{
	New: func() interface{} {
		w, _ := flate.NewWriter(io.Discard, flate.BestCompression)
		return w
	},
}

var deflateScratchPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

var flateReaderPool = sync.Pool{
	New: func() interface{} {
		return flate.NewReader(bytes.NewReader(nil))
	},
}

// flateDecompressor is the interface the pooled flate.NewReader() value
// satisfies: an io.Reader that can be rebound to a new source without
// reallocating its internal Huffman tables.
type flateDecompressor interface {
	io.Reader
	flate.Resetter
}

// deflateOne compresses in (at most DefaultWindowSize bytes) into out using
// maximum compression level and raw DEFLATE framing. out must have enough
// room for the worst-case expansion of len(in) bytes;
// callers size output buffers to MaxBlockSize to guarantee this. It returns
// the number of compressed bytes written and the CRC-32 of in.
func deflateOne(in []byte, out []byte) (n int, crc uint32, cerr *Error) {
	if len(in) == 0 {
		// Empty input is the canonical 2-byte raw-DEFLATE stream (a final
		// fixed-Huffman block holding only end-of-block), the same payload
		// Terminator carries.
		if len(out) < 2 {
			return 0, 0, newError(KindDeflateError, "deflated payload exceeds output buffer")
		}
		out[0], out[1] = 0x03, 0x00
		return 2, 0, nil
	}

	// bytes.Buffer grows by reallocating its backing array once its
	// capacity is exceeded, which would silently detach the compressed
	// bytes from the caller's out slice; accumulate into a pooled scratch
	// buffer instead and copy the result into out, so out always holds the
	// actual compressed bytes regardless of how large the buffer grew.
	buf := deflateScratchPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		deflateScratchPool.Put(buf)
	}()

	fw := flateWriterPool.Get().(*flate.Writer)
	defer flateWriterPool.Put(fw)
	fw.Reset(buf)

	if len(in) > 0 {
		if _, err := fw.Write(in); err != nil {
			return 0, 0, wrapError(KindDeflateError, "deflate write", err)
		}
	}
	if err := fw.Close(); err != nil {
		return 0, 0, wrapError(KindDeflateError, "deflate close", err)
	}

	if buf.Len() > len(out) {
		return 0, 0, newError(KindDeflateError, "deflated payload exceeds output buffer")
	}
	copy(out, buf.Bytes())
	return buf.Len(), crc32.ChecksumIEEE(in), nil
}

// inflateOne decompresses d.Input (a block's raw DEFLATE payload) into
// d.Output, then verifies the result against d.ExpectedSize and
// d.ExpectedCRC. d.Output must be sized to at least d.ExpectedSize;
// InflateBatch's planner guarantees this.
func inflateOne(d *Descriptor) *Error {
	fr := flateReaderPool.Get().(flateDecompressor)
	defer flateReaderPool.Put(fr)

	if err := fr.Reset(bytes.NewReader(d.Input), nil); err != nil {
		return wrapError(KindDeflateError, "flate reset", err)
	}

	n, err := io.ReadFull(fr, d.Output[:d.ExpectedSize])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return wrapError(KindDeflateError, "flate read", err)
	}
	// A correctly-sized read should end exactly at ExpectedSize with the
	// underlying stream exhausted; read one more byte to confirm there is
	// no extra trailing data packed into the payload.
	var extra [1]byte
	if m, _ := fr.Read(extra[:]); m > 0 {
		return wrapError(KindSizeMismatch, "payload longer than expected size", nil)
	}
	if n != d.ExpectedSize {
		return wrapError(KindSizeMismatch, "payload shorter than expected size", nil)
	}

	if got := crc32.ChecksumIEEE(d.Output[:n]); got != d.ExpectedCRC {
		return newError(KindCrcMismatch, "crc32 mismatch")
	}
	return nil
}
