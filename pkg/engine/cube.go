package engine

import "math"

// Intersect describes a ray-surface hit. The zero value is the miss
// sentinel: IsIntersecting false, zero distance, zero normal.
type Intersect struct {
	Point          Vector3
	Normal         Vector3
	Distance       float64
	Material       Material
	IsIntersecting bool
}

// Geometry is anything a ray can hit. The cube is the only implementation
// today, but the scene and tracer only ever see this interface.
type Geometry interface {
	// RayIntersect tests the geometry against a ray. Direction must be
	// normalized by the caller.
	RayIntersect(origin, direction Vector3) Intersect
}

// Object pairs a geometry with its light-source flag
type Object struct {
	Geometry Geometry
	IsLight  bool
}

// Cube is an axis-aligned cube defined by its center and edge length
type Cube struct {
	Center   Vector3
	Size     float64 // Edge length, uniform on all axes
	Material Material
}

func axisNormal(axis int, sign float64) Vector3 {
	switch axis {
	case 0:
		return Vector3{X: sign}
	case 1:
		return Vector3{Y: sign}
	default:
		return Vector3{Z: sign}
	}
}

// RayIntersect runs the slab method over the cube's three axis-aligned
// slabs. An origin inside the cube reports the exit face: distance is the
// far interval bound and the normal faces back toward the origin.
func (c Cube) RayIntersect(origin, direction Vector3) Intersect {
	half := c.Size / 2
	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{direction.X, direction.Y, direction.Z}
	center := [3]float64{c.Center.X, c.Center.Y, c.Center.Z}

	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	entryAxis := -1
	exitAxis := -1

	for axis := 0; axis < 3; axis++ {
		lo := center[axis] - half
		hi := center[axis] + half

		if d[axis] == 0 {
			// Parallel to this slab: either unconstrained or no hit at all
			if o[axis] < lo || o[axis] > hi {
				return Intersect{}
			}
			continue
		}

		t0 := (lo - o[axis]) / d[axis]
		t1 := (hi - o[axis]) / d[axis]
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
			entryAxis = axis
		}
		if t1 < tMax {
			tMax = t1
			exitAxis = axis
		}
	}

	if tMin > tMax || tMax < 0 {
		return Intersect{}
	}

	distance := tMin
	axis := entryAxis
	if tMin < 0 {
		// Origin is inside the cube
		distance = tMax
		axis = exitAxis
	}
	if axis < 0 {
		// Degenerate direction: every axis was parallel
		return Intersect{}
	}

	sign := 1.0
	if d[axis] > 0 {
		sign = -1.0
	}

	point := origin.Add(direction.Mul(distance))
	return Intersect{
		Point:          point,
		Normal:         axisNormal(axis, sign),
		Distance:       distance,
		Material:       c.Material,
		IsIntersecting: true,
	}
}
