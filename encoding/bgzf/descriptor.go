package bgzf

// Descriptor is the batch-internal work unit: one block's input and output
// slices, plus the bookkeeping the single-block codec needs to do its job
// and report back.
//
// Within one batch, every Descriptor's Input and Output slices are disjoint
// from every other Descriptor's — the planner only ever advances forward
// through the source and destination regions, never re-visiting a byte
// range, so the parallel executor can hand descriptors to workers without
// any synchronization between them.
type Descriptor struct {
	// ChunkIndex is the index, within the batch's source chunk list, that
	// Input was sliced from. Unused on the deflate path (always 0).
	ChunkIndex int

	// Input is the descriptor's source bytes: a block's raw DEFLATE payload
	// on the inflate path, or one window of the caller's input buffer on
	// the deflate path.
	Input []byte

	// Output is the descriptor's caller-owned destination: space to inflate
	// into (inflate path) or space to deflate-and-frame into (deflate
	// path). On the inflate path it is a sub-slice of the batch's single
	// contiguous destination region; on the deflate path it is one whole
	// caller-supplied output buffer.
	Output []byte

	// ExpectedSize and ExpectedCRC are populated on the inflate path from
	// the block's tailer, for inflateOne to verify against.
	ExpectedSize int
	ExpectedCRC  uint32

	// BlockSize is populated by DeflateBatch's worker on the deflate path,
	// after deflateOne and framing: the total
	// on-wire length of the framed block written into Output (header +
	// payload + tailer).
	BlockSize int
}
