package bgzf

import (
	"github.com/grailbio/base/traverse"
)

// runExecutor runs work over every descriptor in descs in parallel, using
// at most threads goroutines (threads <= 0 means the package default).
// Grounded on github.com/grailbio/base/traverse, the fan-out primitive the
// teacher module already uses for per-shard parallel work
// (encoding/converter/convert.go, pileup/snp/pileup.go): traverse.Each
// already implements a fixed-size worker pool with dynamic work-stealing,
// chunk size 1, without hand-rolled goroutine bookkeeping.
//
// Workers share only read-only access to descs; each writes exclusively to
// its own Descriptor's Output slice, so no locking is needed across the
// fan-out.
//
// On completion, every descriptor has been processed regardless of whether
// some failed — workers operate on disjoint slices so partial successes are
// well-defined; runExecutor then returns the lowest-indexed non-nil error,
// or nil if all descriptors succeeded.
func runExecutor(descs []Descriptor, threads int, work func(*Descriptor) *Error) *Error {
	if len(descs) == 0 {
		return nil
	}

	errs := make([]*Error, len(descs))
	fn := func(i int) error {
		errs[i] = work(&descs[i])
		return nil
	}

	if threads > 0 {
		_ = traverse.T{Limit: threads}.Each(len(descs), fn)
	} else {
		_ = traverse.Each(len(descs), fn)
	}

	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
