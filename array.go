package voxelblocks

// Stride precomputes the linear-offset arithmetic for walking a sub-extent
// of an Array without recomputing x/y/z strides on every cell.
type Stride struct {
	extent  Extent3i
	xStride int
	yStride int
	zStride int
}

// NewStride precomputes strides for an array whose full extent is
// arrayExtent. x is always the fastest-varying axis (row-major, x
// innermost).
func NewStride(arrayExtent Extent3i) Stride {
	return Stride{
		extent:  arrayExtent,
		xStride: 1,
		yStride: int(arrayExtent.Shape.X),
		zStride: int(arrayExtent.Shape.X) * int(arrayExtent.Shape.Y),
	}
}

// Index returns the linear index of p within the strided array. p must lie
// within the array's extent; the caller is expected to have clipped to it.
func (s Stride) Index(p Point3i) int {
	local := p.Sub(s.extent.Minimum)
	return int(local.X)*s.xStride + int(local.Y)*s.yStride + int(local.Z)*s.zStride
}

// Array is a channel storage plus an extent: channels.Len() always equals
// extent.Volume().
type Array[T any] struct {
	Extent   Extent3i
	Channels ChannelStorage[T]
}

// NewArray allocates an Array of the given extent, zero-valued.
func NewArray[T any](extent Extent3i) *Array[T] {
	return &Array[T]{
		Extent:   extent,
		Channels: NewChannelStorage[T](int(extent.Volume())),
	}
}

// FillArray allocates an Array of the given extent with every cell set to
// value.
func FillArray[T any](extent Extent3i, value T) *Array[T] {
	return &Array[T]{
		Extent:   extent,
		Channels: FillChannelStorage[T](int(extent.Volume()), value),
	}
}

// FillArrayWith materializes each cell from a point-to-value function.
func FillArrayWith[T any](extent Extent3i, f func(p Point3i) T) *Array[T] {
	a := NewArray[T](extent)
	stride := NewStride(extent)
	extent.ForEachPoint(func(p Point3i) {
		a.Channels.Set(stride.Index(p), f(p))
	})
	return a
}

// Get returns the value at voxel-unit point p. Panics if p is outside the
// array's extent.
func (a *Array[T]) Get(p Point3i) T {
	return a.Channels.Get(NewStride(a.Extent).Index(p))
}

// Set overwrites the value at voxel-unit point p. Panics if p is outside the
// array's extent.
func (a *Array[T]) Set(p Point3i, v T) {
	a.Channels.Set(NewStride(a.Extent).Index(p), v)
}

// SetMinimum translates the logical origin without reallocating.
func (a *Array[T]) SetMinimum(p Point3i) {
	a.Extent = a.Extent.WithMinimum(p)
}

// ForEach visits every point in extent (clipped to a.Extent), delivering its
// current value in row-major order.
func (a *Array[T]) ForEach(extent Extent3i, f func(p Point3i, v T)) {
	clipped := extent.Intersection(a.Extent)
	if clipped.IsEmpty() {
		return
	}
	stride := NewStride(a.Extent)
	clipped.ForEachPoint(func(p Point3i) {
		f(p, a.Channels.Get(stride.Index(p)))
	})
}

// CopyExtent copies the intersection of srcExtent with both array's extents
// from src into dst, cell by cell. The source and destination must not
// overlap in memory; behavior is undefined if they do.
func CopyExtent[T any](srcExtent Extent3i, src, dst *Array[T]) {
	clipped := srcExtent.Intersection(src.Extent).Intersection(dst.Extent)
	if clipped.IsEmpty() {
		return
	}
	srcStride := NewStride(src.Extent)
	dstStride := NewStride(dst.Extent)
	clipped.ForEachPoint(func(p Point3i) {
		dst.Channels.Set(dstStride.Index(p), src.Channels.Get(srcStride.Index(p)))
	})
}
