package octree

import (
	"sort"

	"github.com/voxelcore/voxelblocks/internal/spatial"
)

// VisitStatus is returned by an OctreeVisitor to control traversal.
type VisitStatus uint8

const (
	// Continue descends into this subtree.
	Continue VisitStatus = iota
	// ExitEarly skips this subtree but continues with siblings.
	ExitEarly
	// Stop aborts the entire traversal.
	Stop
)

// Visitor is called once per visited node, depth-first, children in Morton
// order (x fastest). height is 0 for leaf chunks.
type Visitor func(coord spatial.Point3i, height uint8) VisitStatus

// Set is a sparse set of occupied leaf chunks, represented as recursive
// 8-child bitmasks from a bounded height down to leaves (height 0).
// Coordinates are in chunk units for whichever LOD owns this Set. Every
// level uses a uniform 8-child NodeBits; only membership and presence-bit
// semantics are load-bearing, not the internal branching factor.
type Set struct {
	maxHeight uint8
	leaves    map[uint64]struct{}
	levels    []map[uint64]NodeBits // levels[h-1] for h in 1..=maxHeight
}

// NewSet creates an empty octree set whose top level is maxHeight: the
// highest node spans 1<<maxHeight chunks per axis, chosen large enough to
// cover the owning ChunkIndex's configured world extent.
func NewSet(maxHeight uint8) *Set {
	s := &Set{
		maxHeight: maxHeight,
		leaves:    make(map[uint64]struct{}),
		levels:    make([]map[uint64]NodeBits, maxHeight),
	}
	for i := range s.levels {
		s.levels[i] = make(map[uint64]NodeBits)
	}
	return s
}

func (s *Set) levelMap(height uint8) map[uint64]NodeBits {
	return s.levels[height-1]
}

// AddLeaf marks chunkCoord as occupied, propagating presence bits up to the
// root. Idempotent.
func (s *Set) AddLeaf(chunkCoord spatial.Point3i) {
	leafKey := spatial.Morton64(chunkCoord)
	if _, ok := s.leaves[leafKey]; ok {
		return
	}
	s.leaves[leafKey] = struct{}{}

	child := chunkCoord
	for height := uint8(1); height <= s.maxHeight; height++ {
		parent := child.Shr(1)
		octant := childOctant(parent.Shl(1), 1, child)
		lvl := s.levelMap(height)
		key := spatial.Morton64(parent)
		bits := lvl[key]
		if bits.HasChild(octant) {
			return
		}
		lvl[key] = bits.WithChild(octant)
		child = parent
	}
}

// RemoveLeaf clears chunkCoord's occupancy, removing ancestor nodes whose
// child mask becomes empty and clearing the corresponding parent bit.
// No-op if chunkCoord wasn't present.
func (s *Set) RemoveLeaf(chunkCoord spatial.Point3i) {
	leafKey := spatial.Morton64(chunkCoord)
	if _, ok := s.leaves[leafKey]; !ok {
		return
	}
	delete(s.leaves, leafKey)

	child := chunkCoord
	for height := uint8(1); height <= s.maxHeight; height++ {
		parent := child.Shr(1)
		octant := childOctant(parent.Shl(1), 1, child)
		lvl := s.levelMap(height)
		key := spatial.Morton64(parent)
		bits := lvl[key].WithoutChild(octant)
		if bits.IsEmpty() {
			delete(lvl, key)
		} else {
			lvl[key] = bits
			return
		}
		child = parent
	}
}

// AddExtent inserts all leaf chunks intersecting e (a voxel-unit extent),
// given chunkExponent.
func (s *Set) AddExtent(e spatial.Extent3i, chunkExponent uint8) {
	s.forEachChunkCoord(e, chunkExponent, s.AddLeaf)
}

// RemoveExtent removes all leaf chunks intersecting e.
func (s *Set) RemoveExtent(e spatial.Extent3i, chunkExponent uint8) {
	s.forEachChunkCoord(e, chunkExponent, s.RemoveLeaf)
}

func (s *Set) forEachChunkCoord(e spatial.Extent3i, chunkExponent uint8, f func(spatial.Point3i)) {
	if e.IsEmpty() {
		return
	}
	minChunk := e.Minimum.Shr(chunkExponent)
	maxChunk := e.Max().Sub(spatial.Point3i{X: 1, Y: 1, Z: 1}).Shr(chunkExponent)
	for z := minChunk.Z; z <= maxChunk.Z; z++ {
		for y := minChunk.Y; y <= maxChunk.Y; y++ {
			for x := minChunk.X; x <= maxChunk.X; x++ {
				f(spatial.Point3i{X: x, Y: y, Z: z})
			}
		}
	}
}

// ContainsLeaf reports whether chunkCoord is currently occupied. O(1).
func (s *Set) ContainsLeaf(chunkCoord spatial.Point3i) bool {
	_, ok := s.leaves[spatial.Morton64(chunkCoord)]
	return ok
}

// IsEmpty reports whether the set has no occupied leaves at all.
func (s *Set) IsEmpty() bool {
	return len(s.leaves) == 0
}

// Visit walks the set depth-first starting from the configured top height,
// children in Morton order, honoring v's VisitStatus at each node.
func (s *Set) Visit(v Visitor) {
	top := s.levelMap(s.maxHeight)
	keys := make([]uint64, 0, len(top))
	for key := range top {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, key := range keys {
		if s.visitNode(spatial.UnMorton64(key), s.maxHeight, v) == Stop {
			return
		}
	}
}

func (s *Set) visitNode(coord spatial.Point3i, height uint8, v Visitor) VisitStatus {
	status := v(coord, height)
	if status != Continue {
		return status
	}
	if height == 0 {
		return Continue
	}
	bits := s.levelMap(height)[spatial.Morton64(coord)]
	for octant := uint8(0); octant < 8; octant++ {
		if !bits.HasChild(octant) {
			continue
		}
		childCoord := childMin(coord.Shl(1), 1, octant)
		var childStatus VisitStatus
		if height == 1 {
			childStatus = s.visitLeafNode(childCoord, v)
		} else {
			childStatus = s.visitNode(childCoord, height-1, v)
		}
		if childStatus == Stop {
			return Stop
		}
	}
	return Continue
}

func (s *Set) visitLeafNode(coord spatial.Point3i, v Visitor) VisitStatus {
	if !s.ContainsLeaf(coord) {
		return Continue
	}
	return v(coord, 0)
}
