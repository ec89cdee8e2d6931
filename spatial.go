package voxelblocks

import "github.com/voxelcore/voxelblocks/internal/spatial"

// Point3i, Extent3i and ChunkKey are defined in internal/spatial (see that
// package's doc comment for why) and re-exported here as the public API.
type (
	Point3i  = spatial.Point3i
	Point3f  = spatial.Point3f
	Point2i  = spatial.Point2i
	Point2f  = spatial.Point2f
	Extent3i = spatial.Extent3i
	ChunkKey = spatial.ChunkKey
)

// P3i, P2i, ExtentFromMinAndShape, ExtentFromMinAndMax, ChunkKeyFromVoxel and
// ZeroPoint3i are re-exported constructors; see internal/spatial for docs.
var (
	P3i                   = spatial.P3i
	P2i                   = spatial.P2i
	ExtentFromMinAndShape = spatial.ExtentFromMinAndShape
	ExtentFromMinAndMax   = spatial.ExtentFromMinAndMax
	ChunkKeyFromVoxel     = spatial.ChunkKeyFromVoxel
	ZeroPoint3i           = spatial.ZeroPoint3i
	Morton64              = spatial.Morton64
	UnMorton64            = spatial.UnMorton64
)
