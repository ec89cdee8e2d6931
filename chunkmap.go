package voxelblocks

// ChunkMap is a chunked sparse voxel grid over one Backend implementation.
// Absent chunks read as the map's ambient value without
// allocating; GetMutPoint materializes a chunk on first write. Every
// operation over an extent decomposes it into the chunk-clipped
// sub-extents it touches via forEachTouchedChunk, so cost is proportional
// to the number of chunks touched, never to the extent's volume.
type ChunkMap[T any] struct {
	backend       Backend[T]
	chunkExponent uint8
	ambient       T
}

// ChunkExponent returns the configured chunk side exponent: chunk side is
// 1<<ChunkExponent voxels per axis.
func (m *ChunkMap[T]) ChunkExponent() uint8 { return m.chunkExponent }

// Ambient returns the map's fixed ambient (absent-chunk) value.
func (m *ChunkMap[T]) Ambient() T { return m.ambient }

// GetPoint returns the value at voxel p for the given lod, or the map's
// ambient value if the containing chunk is absent. Never fails.
func (m *ChunkMap[T]) GetPoint(lod uint8, p Point3i) T {
	key := ChunkKeyFromVoxel(lod, m.chunkExponent, p)
	a, ok := m.backend.Get(key)
	if !ok {
		return m.ambient
	}
	return a.Get(p)
}

// IsAmbient reports whether no chunk currently exists for key.
func (m *ChunkMap[T]) IsAmbient(key ChunkKey) bool {
	_, ok := m.backend.Get(key)
	return !ok
}

// GetMutPoint ensures the chunk containing p exists, materializing it with
// the map's ambient value if needed (allocation may occur), then returns a
// pointer to the cell.
func (m *ChunkMap[T]) GetMutPoint(lod uint8, p Point3i) *T {
	key := ChunkKeyFromVoxel(lod, m.chunkExponent, p)
	a, ok := m.backend.GetMut(key)
	if !ok {
		a = FillArray[T](key.Extent(m.chunkExponent), m.ambient)
		m.backend.Insert(key, a)
	}
	return a.Channels.GetMut(NewStride(a.Extent).Index(p))
}

// RemoveChunk deletes the chunk at key, if present.
func (m *ChunkMap[T]) RemoveChunk(key ChunkKey) {
	m.backend.Remove(key)
}

// VisitExtent walks every point of e at lod in row-major chunk order and
// row-major cell order within each chunk, delivering the chunk's stored
// value or the ambient value for chunks that don't exist. Honors v's
// VisitStop promptly at the next chunk boundary.
func (m *ChunkMap[T]) VisitExtent(lod uint8, e Extent3i, v PointVisitor[T]) {
	m.forEachTouchedChunk(lod, e, func(key ChunkKey, clipped Extent3i) bool {
		a, ok := m.backend.Get(key)
		status := VisitContinue
		clipped.ForEachPoint(func(p Point3i) {
			if status == VisitStop {
				return
			}
			val := m.ambient
			if ok {
				val = a.Get(p)
			}
			status = v(p, val)
		})
		return status != VisitStop
	})
}

// FillExtent writes val to every point in e at lod, materializing touched
// chunks.
func (m *ChunkMap[T]) FillExtent(lod uint8, e Extent3i, val T) {
	m.forEachTouchedChunk(lod, e, func(key ChunkKey, clipped Extent3i) bool {
		a := m.materialize(key)
		stride := NewStride(a.Extent)
		clipped.ForEachPoint(func(p Point3i) {
			a.Channels.Set(stride.Index(p), val)
		})
		return true
	})
}

// CopyExtentFrom bulk-copies from src (whose extent must cover e) into the
// map at lod, materializing touched chunks.
func (m *ChunkMap[T]) CopyExtentFrom(lod uint8, e Extent3i, src *Array[T]) {
	m.forEachTouchedChunk(lod, e, func(key ChunkKey, clipped Extent3i) bool {
		a := m.materialize(key)
		CopyExtent[T](clipped, src, a)
		return true
	})
}

func (m *ChunkMap[T]) materialize(key ChunkKey) *Array[T] {
	if a, ok := m.backend.GetMut(key); ok {
		return a
	}
	a := FillArray[T](key.Extent(m.chunkExponent), m.ambient)
	m.backend.Insert(key, a)
	return a
}

// forEachTouchedChunk decomposes e into the chunk keys it touches, in
// row-major chunk order, calling f with each key and e clipped to that
// chunk's voxel extent. f returning false stops the decomposition early.
func (m *ChunkMap[T]) forEachTouchedChunk(lod uint8, e Extent3i, f func(key ChunkKey, clipped Extent3i) bool) {
	if e.IsEmpty() {
		return
	}
	minChunk := e.Minimum.Shr(m.chunkExponent)
	maxChunk := e.Max().Sub(Point3i{X: 1, Y: 1, Z: 1}).Shr(m.chunkExponent)
	for z := minChunk.Z; z <= maxChunk.Z; z++ {
		for y := minChunk.Y; y <= maxChunk.Y; y++ {
			for x := minChunk.X; x <= maxChunk.X; x++ {
				key := ChunkKey{LOD: lod, ChunkMin: Point3i{X: x, Y: y, Z: z}}
				clipped := e.Intersection(key.Extent(m.chunkExponent))
				if clipped.IsEmpty() {
					continue
				}
				if !f(key, clipped) {
					return
				}
			}
		}
	}
}
