// Package octree implements the sparse octree set and chunk index: a
// Morton-coded sparse octree of occupied chunks with 8-bit per-node
// child-presence bitmasks, keyed by (morton, height) in a plain Go map per
// height level.
package octree

import "github.com/voxelcore/voxelblocks/internal/spatial"

// NodeBits is an 8-bit mask of which of a node's 8 children are occupied.
// Bit i corresponds to Morton-ordered child i (x fastest).
type NodeBits uint8

// HasChild reports whether child i (0..7) is set.
func (b NodeBits) HasChild(i uint8) bool {
	return b&(1<<i) != 0
}

// WithChild returns b with child i set.
func (b NodeBits) WithChild(i uint8) NodeBits {
	return b | (1 << i)
}

// WithoutChild returns b with child i cleared.
func (b NodeBits) WithoutChild(i uint8) NodeBits {
	return b &^ (1 << i)
}

// IsEmpty reports whether no children are present.
func (b NodeBits) IsEmpty() bool {
	return b == 0
}

// childOctant returns the Morton-order octant index (0..7) of child within
// parent, given parent spans 2*childSide per axis.
func childOctant(parentMin spatial.Point3i, childSide int32, child spatial.Point3i) uint8 {
	d := child.Sub(parentMin)
	var i uint8
	if d.X >= childSide {
		i |= 1
	}
	if d.Y >= childSide {
		i |= 2
	}
	if d.Z >= childSide {
		i |= 4
	}
	return i
}

// childMin returns the chunk-unit minimum of octant i (0..7) of a node whose
// own minimum is parentMin and whose children each span childSide.
func childMin(parentMin spatial.Point3i, childSide int32, i uint8) spatial.Point3i {
	d := spatial.Point3i{}
	if i&1 != 0 {
		d.X = childSide
	}
	if i&2 != 0 {
		d.Y = childSide
	}
	if i&4 != 0 {
		d.Z = childSide
	}
	return parentMin.Add(d)
}
