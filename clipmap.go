package voxelblocks

import "github.com/voxelcore/voxelblocks/internal/clipmap"

// ClipmapUpdate and ClipmapUpdateKind are defined in internal/clipmap and
// re-exported here as the public Chunk Index API's find-clipmap-chunk-updates
// result type.
type (
	ClipmapUpdate     = clipmap.Update
	ClipmapUpdateKind = clipmap.UpdateKind
)

const (
	ClipmapSplit ClipmapUpdateKind = clipmap.SplitKind
	ClipmapMerge ClipmapUpdateKind = clipmap.MergeKind
)

// FindClipmapChunkUpdates computes the Split/Merge stream that moves idx's
// active chunk set from being centered at cOld to being centered at cNew,
// applying each event to idx as it's emitted. The stream is empty when cOld
// equals cNew. Only the top-LOD chunk at coordinate zero and its
// descendants are examined; other top-LOD chunks produce no events.
func FindClipmapChunkUpdates(idx *ChunkIndex, cOld, cNew Point3i, visit func(ClipmapUpdate)) {
	clipmap.FindUpdates(idx, cOld, cNew, visit)
}
