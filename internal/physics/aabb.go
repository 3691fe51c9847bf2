package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Box is an immovable axis-aligned obstacle.
type Box struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewBox creates a Box from a center point and full size dimensions.
func NewBox(center, size rl.Vector3) Box {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return Box{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (b Box) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(b.Min, b.Max), 0.5)
}

func (b Box) Size() rl.Vector3 {
	return rl.Vector3Subtract(b.Max, b.Min)
}

// ContainsXZ reports whether p lies inside the box footprint on the field plane.
func (b Box) ContainsXZ(p rl.Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ClosestPoint returns the point of the box footprint nearest to p, at p's height.
func (b Box) ClosestPoint(p rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: clamp(p.X, b.Min.X, b.Max.X),
		Y: p.Y,
		Z: clamp(p.Z, b.Min.Z, b.Max.Z),
	}
}

// Overlaps reports whether a circle of radius r at p touches the box footprint.
func (b Box) Overlaps(p rl.Vector3, r float32) bool {
	closest := b.ClosestPoint(p)
	return rl.Vector3Length(Flatten(rl.Vector3Subtract(p, closest))) < r
}

// Resolve returns the outward normal and push distance that moves a circle of
// radius r at p clear of the box. ok is false when there is no overlap.
func (b Box) Resolve(p rl.Vector3, r float32) (normal rl.Vector3, depth float32, ok bool) {
	closest := b.ClosestPoint(p)
	diff := Flatten(rl.Vector3Subtract(p, closest))
	dist := rl.Vector3Length(diff)

	if dist >= r {
		return rl.Vector3{}, 0, false
	}
	if dist > 0.0001 {
		return rl.Vector3Scale(diff, 1/dist), r - dist, true
	}

	// Center is inside the footprint: leave through the nearest face
	dx1 := p.X - b.Min.X // push in -X
	dx2 := b.Max.X - p.X // push in +X
	dz1 := p.Z - b.Min.Z // push in -Z
	dz2 := b.Max.Z - p.Z // push in +Z

	min := dx1
	normal = rl.Vector3{X: -1}

	if dx2 < min {
		min = dx2
		normal = rl.Vector3{X: 1}
	}
	if dz1 < min {
		min = dz1
		normal = rl.Vector3{Z: -1}
	}
	if dz2 < min {
		min = dz2
		normal = rl.Vector3{Z: 1}
	}

	return normal, min + r, true
}
