package spatial

// ChunkKey addresses one chunk within one LOD. ChunkMin is the chunk-unit
// coordinate: for a voxel-unit point p, ChunkMin = p.Shr(chunkExponent).
type ChunkKey struct {
	LOD      uint8
	ChunkMin Point3i
}

// ChunkKeyFromVoxel derives the key that owns voxel p at the given LOD and
// chunk exponent.
func ChunkKeyFromVoxel(lod uint8, chunkExponent uint8, p Point3i) ChunkKey {
	return ChunkKey{LOD: lod, ChunkMin: p.Shr(chunkExponent)}
}

// Extent returns the chunk's voxel-unit extent: a cube of side
// 1<<chunkExponent, aligned on that grid.
func (k ChunkKey) Extent(chunkExponent uint8) Extent3i {
	side := int32(1) << chunkExponent
	return Extent3i{
		Minimum: k.ChunkMin.Shl(chunkExponent),
		Shape:   Point3i{side, side, side},
	}
}

// Eq reports value equality.
func (k ChunkKey) Eq(other ChunkKey) bool {
	return k.LOD == other.LOD && k.ChunkMin.Eq(other.ChunkMin)
}
