package viewer

import (
	"discarena/internal/disc"
	"discarena/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// groundPoint intersects ray with the field plane (y = 0).
func groundPoint(ray rl.Ray) (rl.Vector3, bool) {
	if ray.Direction.Y > -1e-6 {
		return rl.Vector3{}, false
	}
	t := -ray.Position.Y / ray.Direction.Y
	p := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t))
	p.Y = 0
	return p, true
}

// pull turns a drag from anchor to release into a throw. The disc flies away
// from the release point, slingshot style. Magnitude is the drag length over
// maxDrag, capped at 1.
func pull(anchor, release rl.Vector3, maxDrag float32) (rl.Vector3, float32) {
	d := rl.Vector3{X: anchor.X - release.X, Z: anchor.Z - release.Z}
	length := rl.Vector3Length(d)
	if length == 0 || maxDrag <= 0 {
		return rl.Vector3{}, 0
	}
	return rl.Vector3Scale(d, 1/length), min(length/maxDrag, 1)
}

// aimEnd is where the aim guide stops: length along dir from start, or the
// first obstacle or wall in the way. blocked is set when the guide was cut.
func aimEnd(field physics.Field, start, dir rl.Vector3, length float32) (end rl.Vector3, blocked bool) {
	end = rl.Vector3Add(start, rl.Vector3Scale(dir, length))
	if length <= 0 {
		return end, false
	}
	hit, ok := field.Raycast(start, dir, length)
	if !ok {
		return end, false
	}
	hit.Point.Y = start.Y
	return hit.Point, true
}

// pick returns the topmost living disc whose footprint contains p. Later
// discs win so orbs are picked over the wizard they sit next to.
func pick(roster []*disc.Disc, p rl.Vector3) *disc.Disc {
	for i := len(roster) - 1; i >= 0; i-- {
		d := roster[i]
		if !d.Alive() {
			continue
		}
		dx := d.Position.X - p.X
		dz := d.Position.Z - p.Z
		if dx*dx+dz*dz <= d.Radius*d.Radius {
			return d
		}
	}
	return nil
}
