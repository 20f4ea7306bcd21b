package bgzf

// Options configures a single InflateBatch or DeflateBatch call.
type Options struct {
	// MaxBlocks caps the number of block descriptors planned in this call.
	// Zero means DefaultMaxBlocks. This is a tuning knob, not a protocol
	// constant — callers must not assume any particular default value.
	MaxBlocks int

	// Threads caps the number of goroutines the parallel executor uses.
	// Zero or negative means the package's default (sized to GOMAXPROCS by
	// the underlying fan-out primitive).
	Threads int

	// Atomic applies only to InflateBatch: when true, a source chunk that
	// cannot be fully consumed in this call contributes no descriptors at
	// all to the batch (the rollback rule), rather than the partial-progress
	// default.
	Atomic bool
}

func (o Options) maxBlocks() int {
	if o.MaxBlocks > 0 {
		return o.MaxBlocks
	}
	return DefaultMaxBlocks
}
