package octree

import (
	"github.com/voxelcore/voxelblocks/internal/spatial"
	"github.com/voxelcore/voxelblocks/internal/voxelerr"
)

// Config bundles the parameters shared by every LOD's octree set.
type Config struct {
	WorldExtent   spatial.Extent3i
	ChunkExponent uint8
	NumLODs       uint8
	ClipBoxRadius int32
}

// ChunkIndex holds one Set per LOD plus the shared config. It is standalone:
// no ChunkMap operation adds or removes keys here, so its contents change
// only through its own methods (and FindUpdates, which calls them).
type ChunkIndex struct {
	Config Config
	lods   []*Set
}

// NewChunkIndex builds an empty index sized for cfg.NumLODs.
func NewChunkIndex(cfg Config) *ChunkIndex {
	maxHeight := heightCovering(cfg.WorldExtent, cfg.ChunkExponent)
	lods := make([]*Set, cfg.NumLODs)
	for i := range lods {
		lods[i] = NewSet(maxHeight)
	}
	return &ChunkIndex{Config: cfg, lods: lods}
}

// heightCovering returns the smallest height h, but never less than 1, such
// that a single node of side 1<<h (in chunk units) covers the world
// extent's largest axis.
func heightCovering(world spatial.Extent3i, chunkExponent uint8) uint8 {
	chunksPerAxis := int64(1)
	for _, axis := range []int32{world.Shape.X, world.Shape.Y, world.Shape.Z} {
		n := (int64(axis) + (1 << chunkExponent) - 1) >> chunkExponent
		if n > chunksPerAxis {
			chunksPerAxis = n
		}
	}
	var h uint8
	for (int64(1) << h) < chunksPerAxis {
		h++
	}
	if h == 0 {
		h = 1
	}
	return h
}

// LOD returns the octree Set for the given LOD. Panics with a
// voxelerr.OutOfBounds error if lod >= Config.NumLODs: LOD range is a
// construction-time invariant, not a runtime condition callers are expected
// to recover from.
func (idx *ChunkIndex) LOD(lod uint8) *Set {
	if int(lod) >= len(idx.lods) {
		panic(voxelerr.New(voxelerr.OutOfBounds, "lod out of range"))
	}
	return idx.lods[lod]
}

// AddExtent inserts all leaf chunks intersecting e at the given LOD.
func (idx *ChunkIndex) AddExtent(lod uint8, e spatial.Extent3i) {
	idx.LOD(lod).AddExtent(e, idx.Config.ChunkExponent)
}

// RemoveExtent removes all leaf chunks intersecting e at the given LOD.
func (idx *ChunkIndex) RemoveExtent(lod uint8, e spatial.Extent3i) {
	idx.LOD(lod).RemoveExtent(e, idx.Config.ChunkExponent)
}

// AddChunk marks a single chunk key as present.
func (idx *ChunkIndex) AddChunk(key spatial.ChunkKey) {
	idx.LOD(key.LOD).AddLeaf(key.ChunkMin)
}

// RemoveChunk marks a single chunk key as absent.
func (idx *ChunkIndex) RemoveChunk(key spatial.ChunkKey) {
	idx.LOD(key.LOD).RemoveLeaf(key.ChunkMin)
}

// ContainsChunk reports whether key is present in the index.
func (idx *ChunkIndex) ContainsChunk(key spatial.ChunkKey) bool {
	return idx.LOD(key.LOD).ContainsLeaf(key.ChunkMin)
}
