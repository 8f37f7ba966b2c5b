package spatial

import (
	"math"

	"github.com/five82/facet/internal/backend"
)

// BoundingBox3D is an axis aligned box.
type BoundingBox3D struct {
	Min backend.Vec3 `json:"min" yaml:"min"`
	Max backend.Vec3 `json:"max" yaml:"max"`
}

// FromSize returns a box of the given dimensions centered on the origin.
func FromSize(width, height, depth float64) BoundingBox3D {
	half := backend.Vec3{X: width / 2, Y: height / 2, Z: depth / 2}
	return BoundingBox3D{Min: half.Scale(-1), Max: half}
}

// Size returns the box extent on each axis.
func (b BoundingBox3D) Size() backend.Vec3 { return b.Max.Sub(b.Min) }

// Center returns the midpoint of the box.
func (b BoundingBox3D) Center() backend.Vec3 { return b.Min.Add(b.Size().Scale(0.5)) }

// IsZero reports whether the box has no volume and sits on the origin.
func (b BoundingBox3D) IsZero() bool { return b == BoundingBox3D{} }

// Contains reports whether p lies inside or on the box.
func (b BoundingBox3D) Contains(p backend.Vec3) bool {
	for i := range 3 {
		v := p.Axis(i)
		if v < b.Min.Axis(i) || v > b.Max.Axis(i) {
			return false
		}
	}
	return true
}

// IntersectRay returns the distance along r to the nearest intersection in
// front of the origin. A ray starting inside the box reports the exit
// distance.
func (b BoundingBox3D) IntersectRay(r Ray) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for i := range 3 {
		o, d := r.Origin.Axis(i), r.Direction.Axis(i)
		lo, hi := b.Min.Axis(i), b.Max.Axis(i)
		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t0 := (lo - o) / d
		t1 := (hi - o) / d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax <= tMin {
			return 0, false
		}
	}

	switch {
	case tMin > 0:
		return tMin, true
	case tMax > 0:
		return tMax, true
	default:
		return 0, false
	}
}

// Ray is a half line. The direction is normalized on construction.
type Ray struct {
	Origin    backend.Vec3 `json:"origin" yaml:"origin"`
	Direction backend.Vec3 `json:"direction" yaml:"direction"`
}

// NewRay returns a ray from origin towards dir.
func NewRay(origin, dir backend.Vec3) Ray {
	return Ray{Origin: origin, Direction: dir.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) backend.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
