package bgzf

// InflateResult is the per-call outcome of InflateBatch.
type InflateResult struct {
	// BytesConsumed is the total number of source bytes consumed across all
	// chunks (sum of per-chunk consumed counts).
	BytesConsumed int
	// BytesWritten is the total number of bytes written into the
	// destination region (sum of per-block inflated sizes).
	BytesWritten int
	// BlockSizes holds each successfully inflated block's inflated size,
	// in the order blocks were planned (source order, not completion
	// order).
	BlockSizes []int
	// ChunkBlockCounts[i] is the number of blocks planned from
	// source_chunks[i].
	ChunkBlockCounts []int
	// Tails[i] is the unconsumed suffix of source_chunks[i]; empty when
	// that chunk was fully consumed.
	Tails []ChunkTail
}

// DeflateResult is the per-call outcome of DeflateBatch.
type DeflateResult struct {
	// BlockSizes[i] is the on-wire length of the block written into
	// output_buffers[i]. The caller slices output_buffers[i][:BlockSizes[i]]
	// before flushing it to its sink.
	BlockSizes []int
}
