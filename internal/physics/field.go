package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Field is the static playing area: rectangular bounds centred on the origin
// plus immovable obstacles. The simulation only reads it.
type Field struct {
	Width     float32
	Depth     float32
	Obstacles []Box
}

// Bounds returns the field extents on the x/z plane.
func (f Field) Bounds() (minX, maxX, minZ, maxZ float32) {
	return -f.Width / 2, f.Width / 2, -f.Depth / 2, f.Depth / 2
}

// InBounds reports whether a circle of radius r at p lies fully inside the walls.
func (f Field) InBounds(p rl.Vector3, r float32) bool {
	minX, maxX, minZ, maxZ := f.Bounds()
	return p.X-r >= minX && p.X+r <= maxX && p.Z-r >= minZ && p.Z+r <= maxZ
}

// Fits reports whether a circle of radius r can be placed at p without leaving
// the field or touching an obstacle.
func (f Field) Fits(p rl.Vector3, r float32) bool {
	if !f.InBounds(p, r) {
		return false
	}
	for _, box := range f.Obstacles {
		if box.Overlaps(p, r) {
			return false
		}
	}
	return true
}

// Blocked reports whether p lies inside any obstacle footprint.
func (f Field) Blocked(p rl.Vector3) bool {
	for _, box := range f.Obstacles {
		if box.ContainsXZ(p) {
			return true
		}
	}
	return false
}

// SegmentClear samples the straight segment from -> to at samplesPerUnit points
// per unit length and reports whether none of the samples is inside an obstacle.
func (f Field) SegmentClear(from, to rl.Vector3, samplesPerUnit float32) bool {
	length := HorizontalDistance(from, to)
	steps := int(math.Ceil(float64(length * samplesPerUnit)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		p := rl.Vector3{
			X: from.X + (to.X-from.X)*t,
			Z: from.Z + (to.Z-from.Z)*t,
		}
		if f.Blocked(p) {
			return false
		}
	}
	return true
}
