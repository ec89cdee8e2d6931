package spatial

// Extent3i is a half-open axis-aligned box: all points p such that
// Minimum <= p < Minimum+Shape componentwise. Intersection and
// ExtentFromMinAndMax can produce Shape components <= 0; IsEmpty treats such
// an extent as empty. Equality is by value.
type Extent3i struct {
	Minimum Point3i
	Shape   Point3i
}

// ExtentFromMinAndShape builds an Extent3i from its minimum corner and shape.
func ExtentFromMinAndShape(minimum, shape Point3i) Extent3i {
	return Extent3i{Minimum: minimum, Shape: shape}
}

// ExtentFromMinAndMax builds the smallest Extent3i containing both corners,
// max exclusive.
func ExtentFromMinAndMax(minimum, maxExclusive Point3i) Extent3i {
	return Extent3i{Minimum: minimum, Shape: maxExclusive.Sub(minimum)}
}

// Max returns the exclusive upper corner: Minimum + Shape.
func (e Extent3i) Max() Point3i {
	return e.Minimum.Add(e.Shape)
}

// Volume returns shape.x * shape.y * shape.z.
func (e Extent3i) Volume() int64 {
	return int64(e.Shape.X) * int64(e.Shape.Y) * int64(e.Shape.Z)
}

// IsEmpty reports whether the extent contains zero cells.
func (e Extent3i) IsEmpty() bool {
	return e.Shape.X <= 0 || e.Shape.Y <= 0 || e.Shape.Z <= 0
}

// Contains reports whether p lies within the half-open extent.
func (e Extent3i) Contains(p Point3i) bool {
	max := e.Max()
	return p.X >= e.Minimum.X && p.X < max.X &&
		p.Y >= e.Minimum.Y && p.Y < max.Y &&
		p.Z >= e.Minimum.Z && p.Z < max.Z
}

// ContainsExtent reports whether other is fully contained within e.
func (e Extent3i) ContainsExtent(other Extent3i) bool {
	if other.IsEmpty() {
		return true
	}
	eMax, oMax := e.Max(), other.Max()
	return other.Minimum.X >= e.Minimum.X && oMax.X <= eMax.X &&
		other.Minimum.Y >= e.Minimum.Y && oMax.Y <= eMax.Y &&
		other.Minimum.Z >= e.Minimum.Z && oMax.Z <= eMax.Z
}

// Intersection returns the overlap of e and other. The result may be empty
// (Shape components <= 0) if the extents don't overlap.
func (e Extent3i) Intersection(other Extent3i) Extent3i {
	minP := e.Minimum.Max(other.Minimum)
	maxP := e.Max().Min(other.Max())
	return ExtentFromMinAndMax(minP, maxP)
}

// Translate shifts the extent by delta, keeping its shape.
func (e Extent3i) Translate(delta Point3i) Extent3i {
	return Extent3i{Minimum: e.Minimum.Add(delta), Shape: e.Shape}
}

// Padded grows the extent by amount on every side (amount may be negative
// to shrink).
func (e Extent3i) Padded(amount int32) Extent3i {
	a := Point3i{amount, amount, amount}
	return Extent3i{
		Minimum: e.Minimum.Sub(a),
		Shape:   e.Shape.Add(a.Scale(2)),
	}
}

// WithMinimum translates the logical origin to newMin without changing shape.
func (e Extent3i) WithMinimum(newMin Point3i) Extent3i {
	return Extent3i{Minimum: newMin, Shape: e.Shape}
}

// Eq reports value equality.
func (e Extent3i) Eq(other Extent3i) bool {
	return e.Minimum.Eq(other.Minimum) && e.Shape.Eq(other.Shape)
}

// ForEachPoint visits every point in e in row-major order (x fastest, then
// y, then z), matching the Array linearization.
func (e Extent3i) ForEachPoint(f func(p Point3i)) {
	max := e.Max()
	for z := e.Minimum.Z; z < max.Z; z++ {
		for y := e.Minimum.Y; y < max.Y; y++ {
			for x := e.Minimum.X; x < max.X; x++ {
				f(Point3i{x, y, z})
			}
		}
	}
}
