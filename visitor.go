package voxelblocks

// PointVisitStatus controls a ChunkMap point traversal: VisitStop aborts
// promptly at the next chunk boundary.
type PointVisitStatus uint8

const (
	// VisitContinue keeps the traversal going.
	VisitContinue PointVisitStatus = iota
	// VisitStop aborts the entire traversal.
	VisitStop
)

// PointVisitor is called once per point visited by VisitExtent, receiving
// either the chunk's stored value or the map's ambient value for points in
// chunks that don't exist.
type PointVisitor[T any] func(p Point3i, v T) PointVisitStatus
