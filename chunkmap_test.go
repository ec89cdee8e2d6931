package voxelblocks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vb "github.com/voxelcore/voxelblocks"
	"github.com/voxelcore/voxelblocks/internal/codec"
)

func TestChunkMapGetPointReturnsAmbientForAbsentChunk(t *testing.T) {
	m, err := vb.NewChunkMapBuilder[int32](4, -1).WithHashBackend().Build()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), m.GetPoint(0, vb.P3i(100, 100, 100)))
}

func TestChunkMapGetMutPointMaterializesChunk(t *testing.T) {
	m, err := vb.NewChunkMapBuilder[int32](4, 0).WithHashBackend().Build()
	require.NoError(t, err)

	key := vb.ChunkKeyFromVoxel(0, 4, vb.P3i(1, 1, 1))
	assert.True(t, m.IsAmbient(key))

	*m.GetMutPoint(0, vb.P3i(1, 1, 1)) = 42
	assert.False(t, m.IsAmbient(key))
	assert.Equal(t, int32(42), m.GetPoint(0, vb.P3i(1, 1, 1)))
	assert.Equal(t, int32(0), m.GetPoint(0, vb.P3i(2, 1, 1)), "sibling cell in the same chunk stays ambient")
}

// TestCrossChunkFill checks that filling a 2x2x2 extent straddling the
// corner where 8 chunks meet (chunk_exponent 4, ambient 0) materializes
// exactly 8 chunks, each with exactly one non-ambient cell.
func TestCrossChunkFill(t *testing.T) {
	m, err := vb.NewChunkMapBuilder[int32](4, 0).WithHashBackend().Build()
	require.NoError(t, err)

	e := vb.ExtentFromMinAndShape(vb.P3i(15, 15, 15), vb.P3i(2, 2, 2))
	m.FillExtent(0, e, 7)

	touched := map[vb.ChunkKey]int{}
	m.VisitExtent(0, vb.ExtentFromMinAndShape(vb.P3i(0, 0, 0), vb.P3i(32, 32, 32)), func(p vb.Point3i, v int32) vb.PointVisitStatus {
		if v == 7 {
			key := vb.ChunkKeyFromVoxel(0, 4, p)
			touched[key]++
		}
		return vb.VisitContinue
	})
	assert.Len(t, touched, 8)
	for _, count := range touched {
		assert.Equal(t, 1, count)
	}
}

func TestChunkMapVisitExtentStopsPromptly(t *testing.T) {
	m, err := vb.NewChunkMapBuilder[int32](2, 0).WithHashBackend().Build()
	require.NoError(t, err)

	visited := 0
	m.VisitExtent(0, vb.ExtentFromMinAndShape(vb.P3i(0, 0, 0), vb.P3i(8, 8, 8)), func(p vb.Point3i, v int32) vb.PointVisitStatus {
		visited++
		return vb.VisitStop
	})
	assert.Equal(t, 1, visited)
}

func TestChunkMapRemoveChunk(t *testing.T) {
	m, err := vb.NewChunkMapBuilder[int32](4, 0).WithHashBackend().Build()
	require.NoError(t, err)

	key := vb.ChunkKeyFromVoxel(0, 4, vb.P3i(0, 0, 0))
	*m.GetMutPoint(0, vb.P3i(0, 0, 0)) = 9
	require.False(t, m.IsAmbient(key))

	m.RemoveChunk(key)
	assert.True(t, m.IsAmbient(key))
	assert.Equal(t, int32(0), m.GetPoint(0, vb.P3i(0, 0, 0)))
}

func TestChunkMapCopyExtentFrom(t *testing.T) {
	m, err := vb.NewChunkMapBuilder[testVoxel](4, testVoxel{}).WithHashBackend().Build()
	require.NoError(t, err)

	src := sampleVoxelArray()
	m.CopyExtentFrom(0, src.Extent, src)
	src.ForEach(src.Extent, func(p vb.Point3i, v testVoxel) {
		assert.Equal(t, v, m.GetPoint(0, p))
	})
}

func TestChunkMapWithCompressibleBackendBuildsAndRoundTrips(t *testing.T) {
	m, err := vb.NewChunkMapBuilder[testVoxel](1, testVoxel{}).
		WithCompressibleBackendFastChannelSplit(2, codec.Snappy{}, testVoxelCodec{}, nil).
		Build()
	require.NoError(t, err)

	p := vb.P3i(0, 0, 0)
	*m.GetMutPoint(0, p) = testVoxel{Density: 1.5, Material: 3}
	assert.Equal(t, testVoxel{Density: 1.5, Material: 3}, m.GetPoint(0, p))
}

func TestChunkMapBuilderPropagatesBackendError(t *testing.T) {
	_, err := vb.NewChunkMapBuilder[testVoxel](4, testVoxel{}).
		WithCompressibleBackendFastChannelSplit(0, codec.Snappy{}, testVoxelCodec{}, nil).
		Build()
	assert.Error(t, err)
}
