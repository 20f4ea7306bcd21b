package bgzf

// ChunkTail is the unconsumed suffix of one source chunk that a batch could
// not process. A caller resumes by prepending Bytes to new data arriving
// for that chunk's logical stream before the next InflateBatch call.
type ChunkTail struct {
	// Index is the position of the chunk within the source_chunks list
	// passed to InflateBatch.
	Index int
	// Bytes is the unconsumed suffix. Empty (not nil) when the chunk was
	// fully consumed.
	Bytes []byte
}

// inflatePlan is the output of planInflate: a fully admission-controlled,
// ready-to-execute batch plus the per-chunk bookkeeping InflateBatch needs
// to build its result.
type inflatePlan struct {
	descriptors   []Descriptor
	chunkConsumed []int
	chunkBlockCnt []int
	tails         []ChunkTail
	totalOutBytes int
}

// planInflate scans each chunk in order, parsing as many blocks as fit
// within maxBlocks total descriptors and avail bytes of destination space,
// stopping a chunk early on a partial trailing block (outcomeNeedMoreBytes)
// and rolling the whole chunk back if atomic is set and it wasn't fully
// consumed.
//
// dst is the single contiguous destination region; each admitted block's
// output slice is carved out of it in planning order, so descriptors never
// overlap.
func planInflate(chunks [][]byte, dst []byte, opts Options) (*inflatePlan, *Error) {
	maxBlocks := opts.maxBlocks()
	plan := &inflatePlan{
		chunkConsumed: make([]int, len(chunks)),
		chunkBlockCnt: make([]int, len(chunks)),
		tails:         make([]ChunkTail, len(chunks)),
	}

	outUsed := 0
	stoppedAtMax := false

	for ci, chunk := range chunks {
		if stoppedAtMax {
			plan.tails[ci] = ChunkTail{Index: ci, Bytes: chunk}
			continue
		}

		descsBefore := len(plan.descriptors)
		c := NewCursor(chunk)
		hitMax := false

		for c.Len() > 0 {
			if len(plan.descriptors) >= maxBlocks {
				hitMax = true
				break
			}

			beforeParse := c.snapshot()
			res := parseBlock(c)
			switch res.Outcome {
			case outcomeMalformed:
				return nil, res.Err
			case outcomeNeedMoreBytes:
				// parseBlock already restored c to beforeParse.
			case outcomeOK:
				inflatedSize := int(res.Block.ISize)
				if outUsed+inflatedSize > len(dst) {
					c.restore(beforeParse)
					break
				}
				out := dst[outUsed : outUsed+inflatedSize : outUsed+inflatedSize]
				outUsed += inflatedSize
				plan.descriptors = append(plan.descriptors, Descriptor{
					ChunkIndex:   ci,
					Input:        res.Block.Payload,
					Output:       out,
					ExpectedSize: inflatedSize,
					ExpectedCRC:  res.Block.CRC,
				})
				continue
			}
			break
		}

		fullyConsumed := c.Len() == 0
		consumed := len(chunk) - c.Len()

		if opts.Atomic && !fullyConsumed {
			for _, d := range plan.descriptors[descsBefore:] {
				outUsed -= len(d.Output)
			}
			plan.descriptors = plan.descriptors[:descsBefore]
			plan.chunkConsumed[ci] = 0
			plan.chunkBlockCnt[ci] = 0
			plan.tails[ci] = ChunkTail{Index: ci, Bytes: chunk}
		} else {
			plan.chunkConsumed[ci] = consumed
			plan.chunkBlockCnt[ci] = len(plan.descriptors) - descsBefore
			plan.tails[ci] = ChunkTail{Index: ci, Bytes: c.Remaining()}
		}

		if hitMax {
			stoppedAtMax = true
		}
	}

	plan.totalOutBytes = outUsed
	return plan, nil
}
