package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Obstacle int // index into Field.Obstacles, -1 for a wall
	Point    rl.Vector3
	Distance float32
}

// Raycast walks a horizontal ray from origin and returns the first obstacle or
// wall it meets within maxDistance.
func (f Field) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(Flatten(direction))
	if direction.X == 0 && direction.Z == 0 {
		return RaycastHit{}, false
	}

	closest := RaycastHit{Obstacle: -1, Distance: maxDistance}
	hit := false

	for i, box := range f.Obstacles {
		if dist, ok := raycastBox(origin, direction, box, maxDistance); ok && dist < closest.Distance {
			closest = RaycastHit{Obstacle: i, Distance: dist}
			hit = true
		}
	}

	// Walls: exit distance from the inside of the bounds box
	minX, maxX, minZ, maxZ := f.Bounds()
	if dist, ok := exitDistance(origin, direction, minX, maxX, minZ, maxZ); ok && dist < closest.Distance {
		closest = RaycastHit{Obstacle: -1, Distance: dist}
		hit = true
	}

	if hit {
		closest.Point = rl.Vector3Add(origin, rl.Vector3Scale(direction, closest.Distance))
	}
	return closest, hit
}

// raycastBox is a slab test over the x and z axes of a box footprint.
func raycastBox(origin, direction rl.Vector3, box Box, maxDistance float32) (float32, bool) {
	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (box.Min.X - origin.X) / direction.X
		t2 := (box.Max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < box.Min.X || origin.X > box.Max.X {
		return 0, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (box.Min.Z - origin.Z) / direction.Z
		t2 := (box.Max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < box.Min.Z || origin.Z > box.Max.Z {
		return 0, false
	}

	if tmin > tmax || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		tmin = 0 // origin inside the box
	}
	if tmin > maxDistance {
		return 0, false
	}
	return tmin, true
}

func exitDistance(origin, direction rl.Vector3, minX, maxX, minZ, maxZ float32) (float32, bool) {
	t := float32(1e30)
	if direction.X > 0 {
		t = min(t, (maxX-origin.X)/direction.X)
	} else if direction.X < 0 {
		t = min(t, (minX-origin.X)/direction.X)
	}
	if direction.Z > 0 {
		t = min(t, (maxZ-origin.Z)/direction.Z)
	} else if direction.Z < 0 {
		t = min(t, (minZ-origin.Z)/direction.Z)
	}
	if t < 0 || t >= 1e30 {
		return 0, false
	}
	return t, true
}
