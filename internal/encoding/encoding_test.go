package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelcore/voxelblocks/internal/codec"
	"github.com/voxelcore/voxelblocks/internal/encoding"
)

func sampleChannels() [][]byte {
	return [][]byte{
		{1, 2, 3, 4, 5, 6, 7, 8},
		{9, 9, 9, 9},
		{},
	}
}

func TestFastChannelSplitRoundTrip(t *testing.T) {
	extentMin := [3]int32{0, 0, 0}
	extentShape := [3]int32{2, 2, 2}
	blob, err := encoding.EncodeFastChannelSplit(codec.Snappy{}, sampleChannels(), extentMin, extentShape)
	require.NoError(t, err)

	h, channels, err := encoding.DecodeFastChannelSplit(blob)
	require.NoError(t, err)
	assert.Equal(t, encoding.StrategyFastChannelSplit, h.Encoding)
	assert.Equal(t, extentMin, h.ExtentMin)
	assert.Equal(t, extentShape, h.ExtentShape)
	assert.Equal(t, sampleChannels(), channels)
}

func TestGenericRoundTrip(t *testing.T) {
	extentMin := [3]int32{1, -1, 0}
	extentShape := [3]int32{4, 4, 4}
	blob, err := encoding.EncodeGeneric(codec.LZ4{}, sampleChannels(), extentMin, extentShape)
	require.NoError(t, err)

	h, channels, err := encoding.DecodeGeneric(blob)
	require.NoError(t, err)
	assert.Equal(t, encoding.StrategyGenericSerialized, h.Encoding)
	assert.Equal(t, sampleChannels(), channels)
}

func TestFastChannelSplitRejectsGenericBlob(t *testing.T) {
	blob, err := encoding.EncodeGeneric(codec.Passthrough{}, sampleChannels(), [3]int32{}, [3]int32{})
	require.NoError(t, err)
	_, _, err = encoding.DecodeFastChannelSplit(blob)
	assert.Error(t, err)
}

func TestDeterministicEncoding(t *testing.T) {
	a, err := encoding.EncodeFastChannelSplit(codec.Snappy{}, sampleChannels(), [3]int32{}, [3]int32{1, 1, 1})
	require.NoError(t, err)
	b, err := encoding.EncodeFastChannelSplit(codec.Snappy{}, sampleChannels(), [3]int32{}, [3]int32{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
