package bgzf

import (
	"bytes"
	"io"
)

// StreamWriter is a convenience io.WriteCloser built on top of DeflateBatch:
// a buffered wrapper that batches writes into DeflateBatch calls instead of
// compressing one block at a time. It keeps the buffering and VOffset
// contract of encoding/bgzf/writer.go's original stream Writer, but the
// actual compression work is delegated to the batch core so multi-window
// flushes run in parallel.
//
// A StreamWriter is not safe for concurrent use by multiple goroutines.
type StreamWriter struct {
	w       io.Writer
	buf     bytes.Buffer
	opts    Options
	scratch [][]byte
	coffset uint64
	closed  bool
}

// NewStreamWriter returns a StreamWriter with default batching options.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return NewStreamWriterOpts(w, Options{})
}

// NewStreamWriterOpts returns a StreamWriter using opts for every underlying
// DeflateBatch call (controlling Threads and MaxBlocks).
func NewStreamWriterOpts(w io.Writer, opts Options) *StreamWriter {
	return &StreamWriter{w: w, opts: opts}
}

// Write buffers buf for compression. Every complete window is compressed
// and written to the underlying writer as it fills; a final short window
// stays buffered until Close or CloseWithoutTerminator is called.
func (w *StreamWriter) Write(buf []byte) (int, error) {
	w.buf.Write(buf)
	if err := w.flush(false); err != nil {
		return len(buf), err
	}
	return len(buf), nil
}

// Flush compresses and emits every complete window currently buffered,
// without forcing out a final short window.
func (w *StreamWriter) Flush() error {
	return w.flush(false)
}

// CloseWithoutTerminator flushes all buffered bytes, including a final
// short window, but does not append the BGZF end-of-file Terminator. Used
// when multiple StreamWriters produce shards of one logical file that will
// be concatenated, with the Terminator appended only once, at the very end.
func (w *StreamWriter) CloseWithoutTerminator() error {
	return w.flush(true)
}

// Close flushes all buffered bytes and appends the BGZF Terminator.
func (w *StreamWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.CloseWithoutTerminator(); err != nil {
		return err
	}
	_, err := w.w.Write(Terminator)
	return err
}

// VOffset returns the virtual file offset of the next byte to be written:
// the compressed byte offset of the current (not yet flushed) block in the
// high 48 bits, and the number of buffered-but-uncompressed bytes within it
// in the low 16 bits.
func (w *StreamWriter) VOffset() uint64 {
	return w.coffset<<16 | uint64(w.buf.Len())
}

// flush drains w.buf in DefaultWindowSize windows via DeflateBatch. When
// closing is true, a final short window (if any) is included; otherwise a
// short remainder is left buffered for a later call.
func (w *StreamWriter) flush(closing bool) error {
	for {
		total := w.buf.Len()
		if total == 0 {
			return nil
		}
		full := total / DefaultWindowSize
		remainder := total % DefaultWindowSize

		windows := full
		if closing && remainder > 0 {
			windows++
		}
		if windows == 0 {
			return nil
		}
		if max := w.opts.maxBlocks(); windows > max {
			windows = max
		}

		n := windows * DefaultWindowSize
		if n > total {
			n = total
		}
		data := w.buf.Next(n)
		outs := w.outputs(windows)

		res, err := DeflateBatch(data, outs, w.opts)
		if err != nil {
			return err
		}
		for i, sz := range res.BlockSizes {
			if _, werr := w.w.Write(outs[i][:sz]); werr != nil {
				return werr
			}
			w.coffset += uint64(sz)
		}

		if !closing && w.buf.Len() < DefaultWindowSize {
			return nil
		}
		if closing && w.buf.Len() == 0 {
			return nil
		}
	}
}

// outputs returns (growing and reusing w.scratch as needed) k scratch
// buffers of MaxBlockSize bytes each.
func (w *StreamWriter) outputs(k int) [][]byte {
	for len(w.scratch) < k {
		w.scratch = append(w.scratch, make([]byte, MaxBlockSize))
	}
	return w.scratch[:k]
}
