package voxelblocks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vb "github.com/voxelcore/voxelblocks"
	"github.com/voxelcore/voxelblocks/internal/codec"
)

func testKey(x, y, z int32) vb.ChunkKey {
	return vb.ChunkKey{LOD: 0, ChunkMin: vb.P3i(x, y, z)}
}

func TestHashBackendInsertGetRemove(t *testing.T) {
	b := vb.NewHashBackend[testVoxel]()
	key := testKey(0, 0, 0)

	_, ok := b.Get(key)
	assert.False(t, ok)

	a := sampleVoxelArray()
	b.Insert(key, a)
	got, ok := b.Get(key)
	require.True(t, ok)
	assert.Equal(t, a, got)

	removed, ok := b.Remove(key)
	require.True(t, ok)
	assert.Equal(t, a, removed)
	_, ok = b.Get(key)
	assert.False(t, ok)
}

func TestCompressibleBackendRejectsZeroCapacity(t *testing.T) {
	_, err := vb.NewCompressibleBackendFastChannelSplit[testVoxel](0, codec.Snappy{}, testVoxelCodec{}, nil)
	assert.Error(t, err)
}

func TestCompressibleBackendEvictsToColdStore(t *testing.T) {
	b, err := vb.NewCompressibleBackendFastChannelSplit[testVoxel](2, codec.Snappy{}, testVoxelCodec{}, nil)
	require.NoError(t, err)

	k0, k1, k2 := testKey(0, 0, 0), testKey(1, 0, 0), testKey(2, 0, 0)
	a0, a1, a2 := sampleVoxelArray(), sampleVoxelArray(), sampleVoxelArray()

	b.Insert(k0, a0)
	b.Insert(k1, a1)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 0, b.ColdLen())

	// k0 is now LRU; inserting a third key evicts it to the cold store.
	b.Insert(k2, a2)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 1, b.ColdLen())

	got, ok := b.Get(k0)
	require.True(t, ok)
	assert.Equal(t, a0.Extent, got.Extent)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 1, b.ColdLen(), "promoting k0 evicted the new LRU entry back to cold")
}

func TestCompressibleBackendRemoveDoesNotPopulateColdStore(t *testing.T) {
	b, err := vb.NewCompressibleBackendFastChannelSplit[testVoxel](1, codec.Snappy{}, testVoxelCodec{}, nil)
	require.NoError(t, err)

	key := testKey(0, 0, 0)
	b.Insert(key, sampleVoxelArray())
	_, ok := b.Remove(key)
	require.True(t, ok)

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.ColdLen())
	_, ok = b.Get(key)
	assert.False(t, ok)
}

func TestCompressibleBackendGenericStrategy(t *testing.T) {
	b, err := vb.NewCompressibleBackendGeneric[testVoxel](1, codec.LZ4{}, testVoxelCodec{}, nil)
	require.NoError(t, err)

	key := testKey(0, 0, 0)
	a := sampleVoxelArray()
	b.Insert(key, a)
	b.Insert(testKey(1, 0, 0), sampleVoxelArray()) // evicts key to cold

	got, ok := b.Get(key)
	require.True(t, ok)
	a.ForEach(a.Extent, func(p vb.Point3i, v testVoxel) {
		assert.Equal(t, v, got.Get(p))
	})
}

func TestCompressibleBackendFlushAllToCold(t *testing.T) {
	b, err := vb.NewCompressibleBackendFastChannelSplit[testVoxel](4, codec.Snappy{}, testVoxelCodec{}, nil)
	require.NoError(t, err)

	b.Insert(testKey(0, 0, 0), sampleVoxelArray())
	b.Insert(testKey(1, 0, 0), sampleVoxelArray())
	assert.Equal(t, 2, b.Len())

	b.FlushAllToCold()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 2, b.ColdLen())
}
