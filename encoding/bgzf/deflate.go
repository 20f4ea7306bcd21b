package bgzf

import "v.io/x/lib/vlog"

// DeflateBatch splits input into fixed-size windows and deflates each, in
// parallel, into its own pre-allocated output buffer. Each entry of outputs
// must have length >= MaxBlockSize. threads <= 0 in opts uses the package
// default parallelism.
//
// Unlike InflateBatch, DeflateBatch cannot fail on malformed input — there
// is no framing to parse on the way in — so the only possible failure is a
// DeflateError from the compression primitive itself, which would indicate
// a bug in this package or its dependency rather than bad caller input.
func DeflateBatch(input []byte, outputs [][]byte, opts Options) (*DeflateResult, error) {
	plan, perr := planDeflate(input, outputs, opts)
	if perr != nil {
		return nil, perr
	}

	work := func(d *Descriptor) *Error {
		n, crc, err := deflateOne(d.Input, d.Output[blockHeaderLen:])
		if err != nil {
			return err
		}
		total := blockHeaderLen + n + blockTailerLen
		if total > MaxBlockSize {
			return newError(KindDeflateError, "deflated block exceeds MaxBlockSize")
		}
		emitHeader(d.Output, n)
		emitTailer(d.Output[blockHeaderLen+n:], crc, uint32(len(d.Input)))
		d.BlockSize = total
		return nil
	}

	if err := runExecutor(plan.descriptors, opts.Threads, work); err != nil {
		return nil, err
	}

	result := &DeflateResult{BlockSizes: make([]int, len(plan.descriptors))}
	for i, d := range plan.descriptors {
		result.BlockSizes[i] = d.BlockSize
	}

	vlog.VI(1).Infof("bgzf: deflated %d blocks from %d bytes", len(plan.descriptors), len(input))
	return result, nil
}
