package bgzf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockBytes deflates payload into one standalone, framed BGZF block using
// the package's own codec, for use as test fixtures.
func blockBytes(t *testing.T, payload []byte) []byte {
	t.Helper()
	out := make([]byte, MaxBlockSize)
	res, err := DeflateBatch(payload, [][]byte{out}, Options{})
	require.Nil(t, err)
	require.Len(t, res.BlockSizes, 1)
	return out[:res.BlockSizes[0]]
}

func TestPlanInflateAdmissionControl(t *testing.T) {
	b1 := blockBytes(t, []byte("first block payload"))
	b2 := blockBytes(t, []byte("second block payload, a bit longer"))
	chunk := append(append([]byte(nil), b1...), b2...)

	// Only enough destination space for the first block.
	dst := make([]byte, len("first block payload"))
	plan, err := planInflate([][]byte{chunk}, dst, Options{})
	require.Nil(t, err)
	require.Len(t, plan.descriptors, 1)
	assert.Equal(t, len(b1), plan.chunkConsumed[0])
	assert.Equal(t, b2, plan.tails[0].Bytes)
}

func TestPlanInflateMaxBlocks(t *testing.T) {
	var chunk []byte
	var sizes []int
	for i := 0; i < 5; i++ {
		b := blockBytes(t, []byte{byte(i), byte(i), byte(i)})
		sizes = append(sizes, len(b))
		chunk = append(chunk, b...)
	}
	dst := make([]byte, 1<<20)
	plan, err := planInflate([][]byte{chunk}, dst, Options{MaxBlocks: 2})
	require.Nil(t, err)
	assert.Len(t, plan.descriptors, 2)
	assert.Equal(t, sizes[0]+sizes[1], plan.chunkConsumed[0])
}

func TestPlanInflateAtomicRollback(t *testing.T) {
	b1 := blockBytes(t, []byte("complete block"))
	partial := append(append([]byte(nil), b1...), blockBytes(t, []byte("x"))[:10]...)

	dst := make([]byte, 1<<20)
	plan, err := planInflate([][]byte{partial}, dst, Options{Atomic: true})
	require.Nil(t, err)
	assert.Len(t, plan.descriptors, 0)
	assert.Equal(t, 0, plan.chunkConsumed[0])
	assert.Equal(t, partial, plan.tails[0].Bytes)
}

func TestPlanInflateNonAtomicPartial(t *testing.T) {
	b1 := blockBytes(t, []byte("complete block"))
	tailBytes := blockBytes(t, []byte("x"))[:10]
	partial := append(append([]byte(nil), b1...), tailBytes...)

	dst := make([]byte, 1<<20)
	plan, err := planInflate([][]byte{partial}, dst, Options{Atomic: false})
	require.Nil(t, err)
	require.Len(t, plan.descriptors, 1)
	assert.Equal(t, len(b1), plan.chunkConsumed[0])
	assert.Equal(t, tailBytes, plan.tails[0].Bytes)
}

func TestPlanInflateMalformed(t *testing.T) {
	b1 := blockBytes(t, []byte("ok"))
	b1[0] = 0x00 // corrupt magic
	dst := make([]byte, 1<<20)
	_, err := planInflate([][]byte{b1}, dst, Options{})
	require.NotNil(t, err)
	assert.Equal(t, KindMalformedHeader, err.Kind)
}

func TestPlanDeflateWindowing(t *testing.T) {
	input := make([]byte, 2*DefaultWindowSize+100)
	outputs := make([][]byte, 3)
	for i := range outputs {
		outputs[i] = make([]byte, MaxBlockSize)
	}
	plan, err := planDeflate(input, outputs, Options{})
	require.Nil(t, err)
	require.Len(t, plan.descriptors, 3)
	assert.Equal(t, DefaultWindowSize, len(plan.descriptors[0].Input))
	assert.Equal(t, DefaultWindowSize, len(plan.descriptors[1].Input))
	assert.Equal(t, 100, len(plan.descriptors[2].Input))
}

func TestPlanDeflateEmptyInputProducesOneWindow(t *testing.T) {
	outputs := [][]byte{make([]byte, MaxBlockSize)}
	plan, err := planDeflate(nil, outputs, Options{})
	require.Nil(t, err)
	require.Len(t, plan.descriptors, 1)
	assert.Equal(t, 0, len(plan.descriptors[0].Input))
}

func TestPlanDeflateCappedByOutputs(t *testing.T) {
	input := make([]byte, 5*DefaultWindowSize)
	outputs := [][]byte{make([]byte, MaxBlockSize), make([]byte, MaxBlockSize)}
	plan, err := planDeflate(input, outputs, Options{})
	require.Nil(t, err)
	assert.Len(t, plan.descriptors, 2)
}
