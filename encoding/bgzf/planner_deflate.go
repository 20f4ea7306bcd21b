package bgzf

// deflatePlan is the output of planDeflate: one descriptor per input
// window, each already pointed at the output buffer it owns.
type deflatePlan struct {
	descriptors []Descriptor
}

// planDeflate splits input into fixed DefaultWindowSize windows (the final
// window short if len(input) isn't a multiple of the window size), capped at
// min(window count, number of output buffers, maxBlocks).
//
// Each output buffer must have length >= MaxBlockSize; planDeflate reserves
// the first blockHeaderLen bytes of each for the header emitHeader will
// write after the window is deflated (BSIZE depends on the deflated
// length, so the header can't be written until execution completes).
func planDeflate(input []byte, outputs [][]byte, opts Options) (*deflatePlan, *Error) {
	windowSize := DefaultWindowSize
	// An empty input still produces exactly one (empty) window: the
	// BGZF end-of-file sentinel is a valid block wrapping zero bytes, and
	// DeflateBatch must produce it directly rather than requiring the
	// caller to special-case a zero-length call.
	numWindows := 1
	if len(input) > 0 {
		numWindows = (len(input) + windowSize - 1) / windowSize
	}

	n := numWindows
	if n > len(outputs) {
		n = len(outputs)
	}
	if max := opts.maxBlocks(); n > max {
		n = max
	}

	plan := &deflatePlan{descriptors: make([]Descriptor, 0, n)}
	offset := 0
	for i := 0; i < n; i++ {
		end := offset + windowSize
		if end > len(input) {
			end = len(input)
		}
		out := outputs[i]
		plan.descriptors = append(plan.descriptors, Descriptor{
			Input:  input[offset:end:end],
			Output: out,
		})
		offset = end
	}
	return plan, nil
}
