package physics

import (
	"discarena/internal/disc"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// resolveWalls keeps d inside the field, reflecting the velocity component
// that pointed into the wall.
func (e *Engine) resolveWalls(d *disc.Disc, field Field) {
	minX, maxX, minZ, maxZ := field.Bounds()
	r := d.Radius
	damp := e.Config.WallDamping
	margin := e.Config.WallMargin

	if d.Position.X-r < minX {
		d.Position.X = minX + r + margin
		if d.Velocity.X < 0 {
			d.Velocity.X = -d.Velocity.X * damp
		}
	} else if d.Position.X+r > maxX {
		d.Position.X = maxX - r - margin
		if d.Velocity.X > 0 {
			d.Velocity.X = -d.Velocity.X * damp
		}
	}

	if d.Position.Z-r < minZ {
		d.Position.Z = minZ + r + margin
		if d.Velocity.Z < 0 {
			d.Velocity.Z = -d.Velocity.Z * damp
		}
	} else if d.Position.Z+r > maxZ {
		d.Position.Z = maxZ - r - margin
		if d.Velocity.Z > 0 {
			d.Velocity.Z = -d.Velocity.Z * damp
		}
	}
}

// resolveDiscVsBox handles a disc hitting a static box (walls, blocks)
func (e *Engine) resolveDiscVsBox(d *disc.Disc, box Box) {
	normal, depth, ok := box.Resolve(d.Position, d.Radius)
	if !ok {
		return
	}

	// Push out along the outward normal
	d.Position = rl.Vector3Add(d.Position, rl.Vector3Scale(normal, depth))

	// Reflect the inbound component with damping
	velAlongNormal := rl.Vector3DotProduct(d.Velocity, normal)
	if velAlongNormal < 0 {
		reflect := rl.Vector3Scale(normal, -(1+e.Config.ObstacleDamping)*velAlongNormal)
		d.Velocity = rl.Vector3Add(d.Velocity, reflect)
	}
}

// resolveDiscVsDisc separates overlapping discs and, when they are approaching,
// exchanges an impulse. touched is true whenever the pair was separated;
// approaching only for contacts that exchanged an impulse.
func (e *Engine) resolveDiscVsDisc(a, b *disc.Disc) (c Contact, approaching, touched bool) {
	delta := Flatten(rl.Vector3Subtract(b.Position, a.Position))
	dist := rl.Vector3Length(delta)
	minDist := a.Radius + b.Radius

	if dist >= minDist || dist == 0 {
		return Contact{}, false, false
	}

	invA, invB := inverseMass(a), inverseMass(b)
	if invA+invB == 0 {
		return Contact{}, false, false
	}

	// Collision normal points from a to b
	normal := rl.Vector3Scale(delta, 1/dist)
	penetration := minDist - dist

	// Relative velocity
	relVel := rl.Vector3Subtract(b.Velocity, a.Velocity)
	velAlongNormal := rl.Vector3DotProduct(relVel, normal)

	if velAlongNormal <= 0 && (a.Moving || b.Moving) {
		approaching = true

		// Impulse
		j := -(1 + e.Config.Restitution) * velAlongNormal
		j /= invA + invB

		impulse := rl.Vector3Scale(normal, j)
		if invA > 0 {
			a.Velocity = Flatten(rl.Vector3Subtract(a.Velocity, rl.Vector3Scale(impulse, invA)))
			a.Moving = true
		}
		if invB > 0 {
			b.Velocity = Flatten(rl.Vector3Add(b.Velocity, rl.Vector3Scale(impulse, invB)))
			b.Moving = true
		}
		c = Contact{A: a.ID, B: b.ID, Impulse: j}
	}

	// Separate: half each, or all of it on the free disc when one is kinematic
	shareA, shareB := float32(0.5), float32(0.5)
	if invA == 0 {
		shareA, shareB = 0, 1
	} else if invB == 0 {
		shareA, shareB = 1, 0
	}
	a.Position = rl.Vector3Subtract(a.Position, rl.Vector3Scale(normal, penetration*shareA))
	b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(normal, penetration*shareB))

	return c, approaching, true
}
