package bgzf

import "v.io/x/lib/vlog"

// InflateBatch scans chunks for BGZF blocks and inflates as many as fit into
// dst in parallel. threads <= 0 in opts uses the package default
// parallelism.
//
// MalformedHeader aborts the whole call: InflateBatch returns a nil result
// and the *Error so the caller can tell a corrupt stream from a short read.
// Any other failure (SizeMismatch, CrcMismatch, DeflateError) can only
// surface from block execution, never from planning; InflateBatch applies
// the same "abort the call, no partial result" policy to keep the contract
// simple, since a single bad block already means the batch's output cannot
// be trusted: partial output beyond the erroring block is undefined.
func InflateBatch(chunks [][]byte, dst []byte, opts Options) (*InflateResult, error) {
	plan, perr := planInflate(chunks, dst, opts)
	if perr != nil {
		return nil, perr
	}

	if err := runExecutor(plan.descriptors, opts.Threads, inflateOne); err != nil {
		return nil, err
	}

	result := &InflateResult{
		BlockSizes:       make([]int, len(plan.descriptors)),
		ChunkBlockCounts: plan.chunkBlockCnt,
		Tails:            plan.tails,
	}
	for i, d := range plan.descriptors {
		result.BlockSizes[i] = d.ExpectedSize
		result.BytesWritten += d.ExpectedSize
	}
	for _, c := range plan.chunkConsumed {
		result.BytesConsumed += c
	}

	vlog.VI(1).Infof("bgzf: inflated %d blocks, %d bytes consumed, %d bytes written",
		len(plan.descriptors), result.BytesConsumed, result.BytesWritten)
	return result, nil
}
