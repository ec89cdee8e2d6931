package clipmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelcore/voxelblocks/internal/clipmap"
	"github.com/voxelcore/voxelblocks/internal/octree"
	"github.com/voxelcore/voxelblocks/internal/spatial"
)

func testIndex(numLODs uint8, radius int32) *octree.ChunkIndex {
	return octree.NewChunkIndex(octree.Config{
		WorldExtent:   spatial.ExtentFromMinAndShape(spatial.P3i(0, 0, 0), spatial.P3i(1024, 1024, 1024)),
		ChunkExponent: 4,
		NumLODs:       numLODs,
		ClipBoxRadius: radius,
	})
}

func TestFindUpdatesEmptyWhenViewerUnchanged(t *testing.T) {
	idx := testIndex(2, 2)
	c := spatial.P3i(10, 10, 10)

	var updates []clipmap.Update
	clipmap.FindUpdates(idx, c, c, func(u clipmap.Update) { updates = append(updates, u) })
	assert.Empty(t, updates)
}

func TestFindUpdatesEmitsMergeWhenViewerMovesAway(t *testing.T) {
	idx := testIndex(2, 2)
	cOld := spatial.P3i(0, 0, 0)
	cNew := spatial.P3i(100, 100, 100)

	var updates []clipmap.Update
	clipmap.FindUpdates(idx, cOld, cNew, func(u clipmap.Update) { updates = append(updates, u) })

	require.Len(t, updates, 1)
	assert.Equal(t, clipmap.MergeKind, updates[0].Kind)
	assert.Equal(t, spatial.ChunkKey{LOD: 1, ChunkMin: spatial.P3i(0, 0, 0)}, updates[0].NewChunk)
	assert.True(t, idx.ContainsChunk(spatial.ChunkKey{LOD: 1, ChunkMin: spatial.P3i(0, 0, 0)}))
	for _, c := range updates[0].OldChunks {
		assert.False(t, idx.ContainsChunk(c))
	}
}

func TestFindUpdatesEmitsSplitWhenViewerMovesCloser(t *testing.T) {
	idx := testIndex(2, 2)
	cOld := spatial.P3i(100, 100, 100)
	cNew := spatial.P3i(0, 0, 0)

	var updates []clipmap.Update
	clipmap.FindUpdates(idx, cOld, cNew, func(u clipmap.Update) { updates = append(updates, u) })

	require.Len(t, updates, 1)
	assert.Equal(t, clipmap.SplitKind, updates[0].Kind)
	assert.Equal(t, spatial.ChunkKey{LOD: 1, ChunkMin: spatial.P3i(0, 0, 0)}, updates[0].OldChunk)
	assert.False(t, idx.ContainsChunk(spatial.ChunkKey{LOD: 1, ChunkMin: spatial.P3i(0, 0, 0)}))
	for _, c := range updates[0].NewChunks {
		assert.True(t, idx.ContainsChunk(c))
	}
}

func TestFindUpdatesRoundTripReturnsToOriginalState(t *testing.T) {
	idx := testIndex(2, 2)
	cOld := spatial.P3i(0, 0, 0)
	cNew := spatial.P3i(100, 100, 100)

	clipmap.FindUpdates(idx, cOld, cNew, func(clipmap.Update) {})
	require.True(t, idx.ContainsChunk(spatial.ChunkKey{LOD: 1, ChunkMin: spatial.P3i(0, 0, 0)}))

	var back []clipmap.Update
	clipmap.FindUpdates(idx, cNew, cOld, func(u clipmap.Update) { back = append(back, u) })
	require.Len(t, back, 1)
	assert.Equal(t, clipmap.SplitKind, back[0].Kind)
}
