// Package spatial holds the point/extent/chunk-key algebra shared by the
// public voxelblocks package and the internal octree/clipmap packages. It is
// split out from the public package purely to break the import cycle that
// would otherwise exist between the chunk map (which needs the octree) and
// the octree (which needs chunk keys); the root package re-exports these
// types as aliases.
package spatial

// Point3i is an integer 3-tuple. It supports componentwise arithmetic,
// integer right-shift (LOD-to-chunk conversion) and per-axis min/max.
type Point3i struct {
	X, Y, Z int32
}

// Point3f is a floating-point 3-tuple, used for camera/viewer positions
// before they're snapped to chunk units.
type Point3f struct {
	X, Y, Z float64
}

// Point2i is an integer 2-tuple, used where a component only needs the
// horizontal axes (e.g. a heightmap or a 2-D clip region).
type Point2i struct {
	X, Y int32
}

// Point2f is a floating-point 2-tuple, the 2-D counterpart of Point3f.
type Point2f struct {
	X, Y float64
}

func (p Point2i) Add(q Point2i) Point2i { return Point2i{p.X + q.X, p.Y + q.Y} }
func (p Point2i) Sub(q Point2i) Point2i { return Point2i{p.X - q.X, p.Y - q.Y} }
func (p Point2i) Mul(q Point2i) Point2i { return Point2i{p.X * q.X, p.Y * q.Y} }

func (p Point2i) Scale(s int32) Point2i { return Point2i{p.X * s, p.Y * s} }

func (p Point2i) Min(q Point2i) Point2i {
	return Point2i{minI32(p.X, q.X), minI32(p.Y, q.Y)}
}

func (p Point2i) Max(q Point2i) Point2i {
	return Point2i{maxI32(p.X, q.X), maxI32(p.Y, q.Y)}
}

func (p Point2i) Eq(q Point2i) bool { return p.X == q.X && p.Y == q.Y }

func (p Point2f) Add(q Point2f) Point2f   { return Point2f{p.X + q.X, p.Y + q.Y} }
func (p Point2f) Sub(q Point2f) Point2f   { return Point2f{p.X - q.X, p.Y - q.Y} }
func (p Point2f) Scale(s float64) Point2f { return Point2f{p.X * s, p.Y * s} }

// P3i is a convenience constructor.
func P3i(x, y, z int32) Point3i { return Point3i{x, y, z} }

// P2i is a convenience constructor.
func P2i(x, y int32) Point2i { return Point2i{x, y} }

// ZeroPoint3i is the additive identity.
var ZeroPoint3i = Point3i{}

func (p Point3i) Add(q Point3i) Point3i {
	return Point3i{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

func (p Point3i) Sub(q Point3i) Point3i {
	return Point3i{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

func (p Point3i) Mul(q Point3i) Point3i {
	return Point3i{p.X * q.X, p.Y * q.Y, p.Z * q.Z}
}

// Scale multiplies every component by a scalar.
func (p Point3i) Scale(s int32) Point3i {
	return Point3i{p.X * s, p.Y * s, p.Z * s}
}

// Shr is an arithmetic right shift on every component, used to convert a
// voxel-unit point into a chunk-unit point: chunk_min = point >> chunk_exponent.
func (p Point3i) Shr(exponent uint8) Point3i {
	return Point3i{p.X >> exponent, p.Y >> exponent, p.Z >> exponent}
}

// Shl is a left shift on every component, the inverse of Shr.
func (p Point3i) Shl(exponent uint8) Point3i {
	return Point3i{p.X << exponent, p.Y << exponent, p.Z << exponent}
}

func (p Point3i) Min(q Point3i) Point3i {
	return Point3i{minI32(p.X, q.X), minI32(p.Y, q.Y), minI32(p.Z, q.Z)}
}

func (p Point3i) Max(q Point3i) Point3i {
	return Point3i{maxI32(p.X, q.X), maxI32(p.Y, q.Y), maxI32(p.Z, q.Z)}
}

// LInfDistance returns the Chebyshev (L-infinity) distance between two
// points, used by the clipmap algorithm to decide chunk activity radius.
func (p Point3i) LInfDistance(q Point3i) int32 {
	dx, dy, dz := absI32(p.X-q.X), absI32(p.Y-q.Y), absI32(p.Z-q.Z)
	return maxI32(dx, maxI32(dy, dz))
}

func (p Point3i) Eq(q Point3i) bool {
	return p.X == q.X && p.Y == q.Y && p.Z == q.Z
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func absI32(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}
