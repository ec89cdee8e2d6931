package voxelblocks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vb "github.com/voxelcore/voxelblocks"
)

func TestChunkDBKeyRoundTrip(t *testing.T) {
	key := vb.ChunkKey{LOD: 3, ChunkMin: vb.P3i(5, -2, 17)}
	buf := vb.ChunkDBKey(key)
	assert.Len(t, buf, 9)

	lod, morton, ok := vb.ParseChunkDBKey(buf)
	assert.True(t, ok)
	assert.Equal(t, key.LOD, lod)
	assert.Equal(t, vb.Morton64(key.ChunkMin), morton)
}

func TestChunkDBKeyOrdersLODMajorThenMorton(t *testing.T) {
	lower := vb.ChunkDBKey(vb.ChunkKey{LOD: 0, ChunkMin: vb.P3i(100, 100, 100)})
	higher := vb.ChunkDBKey(vb.ChunkKey{LOD: 1, ChunkMin: vb.P3i(0, 0, 0)})
	assert.Less(t, string(lower), string(higher), "LOD byte dominates lexicographic ordering")
}

func TestParseChunkDBKeyRejectsWrongLength(t *testing.T) {
	_, _, ok := vb.ParseChunkDBKey([]byte{1, 2, 3})
	assert.False(t, ok)
}
