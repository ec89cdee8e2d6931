package voxelblocks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vb "github.com/voxelcore/voxelblocks"
)

func testChunkIndex(numLODs uint8, clipRadius int32) *vb.ChunkIndex {
	return vb.NewChunkIndex(vb.OctreeConfig{
		WorldExtent:   vb.ExtentFromMinAndShape(vb.ZeroPoint3i, vb.P3i(1024, 1024, 1024)),
		ChunkExponent: 4,
		NumLODs:       numLODs,
		ClipBoxRadius: clipRadius,
	})
}

func TestOctreeAddRemoveExtentRoundTrip(t *testing.T) {
	idx := testChunkIndex(1, 2)
	extent := vb.ExtentFromMinAndShape(vb.ZeroPoint3i, vb.P3i(32, 32, 32))

	idx.AddExtent(0, extent)
	count := 0
	idx.LOD(0).Visit(func(_ vb.Point3i, height uint8) vb.OctreeVisitStatus {
		if height == 0 {
			count++
		}
		return vb.OctreeContinue
	})
	assert.Equal(t, 8, count)

	idx.RemoveExtent(0, extent)
	assert.True(t, idx.LOD(0).IsEmpty())
}

func TestFindClipmapChunkUpdatesEmptyWhenUnchanged(t *testing.T) {
	idx := testChunkIndex(2, 2)
	c := vb.P3i(10, 10, 10)

	var updates []vb.ClipmapUpdate
	vb.FindClipmapChunkUpdates(idx, c, c, func(u vb.ClipmapUpdate) { updates = append(updates, u) })
	assert.Empty(t, updates)
}

func TestFindClipmapChunkUpdatesSplitThenMergeRoundTrips(t *testing.T) {
	idx := testChunkIndex(2, 2)
	near := vb.P3i(0, 0, 0)
	far := vb.P3i(100, 100, 100)

	var toFar []vb.ClipmapUpdate
	vb.FindClipmapChunkUpdates(idx, near, far, func(u vb.ClipmapUpdate) { toFar = append(toFar, u) })
	require.Len(t, toFar, 1)
	assert.Equal(t, vb.ClipmapMerge, toFar[0].Kind)

	var toNear []vb.ClipmapUpdate
	vb.FindClipmapChunkUpdates(idx, far, near, func(u vb.ClipmapUpdate) { toNear = append(toNear, u) })
	require.Len(t, toNear, 1)
	assert.Equal(t, vb.ClipmapSplit, toNear[0].Kind)
}
