// Package clipmap computes the Split/Merge update stream that keeps a
// chunk octree's active leaf set focused around a moving viewer. A single
// small function, given only the inputs the decision legitimately needs,
// classifies each octree node as leaf or split for a given viewer position.
package clipmap

import (
	"github.com/voxelcore/voxelblocks/internal/octree"
	"github.com/voxelcore/voxelblocks/internal/spatial"
)

// UpdateKind distinguishes the two events in the clipmap update stream.
type UpdateKind uint8

const (
	// SplitKind means one coarser chunk was replaced by its 8 finer children.
	SplitKind UpdateKind = iota
	// MergeKind means 8 finer children were replaced by their coarser parent.
	MergeKind
)

// Update is one Split or Merge event. Only the fields relevant to Kind are
// meaningful.
type Update struct {
	Kind      UpdateKind
	OldChunk  spatial.ChunkKey    // Split: the chunk that stopped existing.
	NewChunks [8]spatial.ChunkKey // Split: its 8 replacements, one LOD finer.
	OldChunks [8]spatial.ChunkKey // Merge: the 8 chunks that stopped existing.
	NewChunk  spatial.ChunkKey    // Merge: their replacement, one LOD coarser.
}

// FindUpdates computes the Split/Merge events that move idx's active chunk
// set from being centered at cOld to being centered at cNew (both in LOD-0
// chunk units), applying each event to idx as it's emitted. The stream is
// empty if cOld equals cNew. The walk starts from the single top-LOD chunk
// at coordinate zero and covers only that chunk and its descendants; other
// top-LOD chunks of the world extent are not visited and produce no events.
func FindUpdates(idx *octree.ChunkIndex, cOld, cNew spatial.Point3i, visit func(Update)) {
	cfg := idx.Config
	if cfg.NumLODs == 0 {
		return
	}
	walk(cfg, idx, cfg.NumLODs-1, spatial.ZeroPoint3i, cOld, cNew, visit)
}

// isLeaf decides whether the chunk at (lod, coord) is fine-grained enough
// to be a leaf under viewer center c: true at LOD 0 (no finer level
// exists), or when the chunk's L∞ distance from the viewer (both
// expressed in LOD-l chunk units) exceeds the clip radius scaled to that
// LOD. A chunk within radius wants finer detail and is therefore split.
func isLeaf(cfg octree.Config, lod uint8, coord, center spatial.Point3i) bool {
	if lod == 0 {
		return true
	}
	radius := cfg.ClipBoxRadius >> lod
	centerAtLOD := center.Shr(lod)
	return coord.LInfDistance(centerAtLOD) > radius
}

func inWorld(cfg octree.Config, lod uint8, coord spatial.Point3i) bool {
	key := spatial.ChunkKey{LOD: lod, ChunkMin: coord}
	return !cfg.WorldExtent.Intersection(key.Extent(cfg.ChunkExponent)).IsEmpty()
}

// allChildrenInWorld reports whether every one of children actually
// overlaps the world extent. A merge candidate with any child permanently
// outside the world can never have had all 8 children materialize as
// leaves, so it can't merge — its in-bounds children stay split forever.
func allChildrenInWorld(cfg octree.Config, childLOD uint8, children [8]spatial.ChunkKey) bool {
	for _, c := range children {
		if !inWorld(cfg, childLOD, c.ChunkMin) {
			return false
		}
	}
	return true
}

// walk classifies the node at (lod, coord) under cOld and cNew and emits
// the corresponding event, recursing into children whenever either
// classification needs finer detail. Because the leaf-distance test scales
// consistently with LOD (both the coordinate grid and the radius halve
// each level), a node found to be a leaf under one viewer position is
// overwhelmingly likely to classify the same way one level finer, which is
// what keeps this recursion from re-deriving spurious chains of events for
// ordinary single-step viewer motion; only nodes whose classification
// actually changes between cOld and cNew, or that currently straddle the
// split/leaf boundary, recurse further.
func walk(cfg octree.Config, idx *octree.ChunkIndex, lod uint8, coord, cOld, cNew spatial.Point3i, visit func(Update)) {
	if !inWorld(cfg, lod, coord) {
		return
	}
	key := spatial.ChunkKey{LOD: lod, ChunkMin: coord}
	wasLeaf := isLeaf(cfg, lod, coord, cOld)
	isLeafNow := isLeaf(cfg, lod, coord, cNew)

	switch {
	case wasLeaf && isLeafNow:
		return
	case wasLeaf && !isLeafNow:
		children := childKeys(lod, coord)
		visit(Update{Kind: SplitKind, OldChunk: key, NewChunks: children})
		idx.RemoveChunk(key)
		for _, c := range children {
			idx.AddChunk(c)
		}
		for _, c := range children {
			walk(cfg, idx, lod-1, c.ChunkMin, cOld, cNew, visit)
		}
	case !wasLeaf && isLeafNow:
		children := childKeys(lod, coord)
		if !allChildrenInWorld(cfg, lod-1, children) {
			// Can't merge into a single leaf when some children are
			// permanently outside the world: fall through and keep
			// descending into whichever children do exist.
			for _, c := range children {
				walk(cfg, idx, lod-1, c.ChunkMin, cOld, cNew, visit)
			}
			return
		}
		visit(Update{Kind: MergeKind, OldChunks: children, NewChunk: key})
		for _, c := range children {
			idx.RemoveChunk(c)
		}
		idx.AddChunk(key)
	default:
		for _, c := range childKeys(lod, coord) {
			walk(cfg, idx, lod-1, c.ChunkMin, cOld, cNew, visit)
		}
	}
}

// childKeys returns the 8 LOD-(lod-1) chunks covering the same footprint
// as (lod, coord), in Morton/octant order (x fastest), matching the
// octree package's traversal order.
func childKeys(lod uint8, coord spatial.Point3i) [8]spatial.ChunkKey {
	var out [8]spatial.ChunkKey
	base := coord.Shl(1)
	i := 0
	for dz := int32(0); dz < 2; dz++ {
		for dy := int32(0); dy < 2; dy++ {
			for dx := int32(0); dx < 2; dx++ {
				out[i] = spatial.ChunkKey{
					LOD:      lod - 1,
					ChunkMin: base.Add(spatial.Point3i{X: dx, Y: dy, Z: dz}),
				}
				i++
			}
		}
	}
	return out
}
