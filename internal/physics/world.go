package physics

import (
	"discarena/internal/disc"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config holds the integration and collision tuning.
type Config struct {
	Substeps        int     `json:"substeps"`
	Friction        float32 `json:"friction"`        // velocity multiplier per substep
	WallDamping     float32 `json:"wallDamping"`     // fraction of speed kept off a wall
	WallMargin      float32 `json:"wallMargin"`      // distance kept from the wall after a bounce
	ObstacleDamping float32 `json:"obstacleDamping"` // fraction of speed kept off an obstacle
	Restitution     float32 `json:"restitution"`     // disc-disc bounciness, 1 = elastic
	MaxSpeed        float32 `json:"maxSpeed"`        // units per frame
	StopEpsilon     float32 `json:"stopEpsilon"`     // below this a disc comes to rest
}

func DefaultConfig() Config {
	return Config{
		Substeps:        5,
		Friction:        0.97,
		WallDamping:     0.8,
		WallMargin:      0.01,
		ObstacleDamping: 0.8,
		Restitution:     1.0,
		MaxSpeed:        2.5,
		StopEpsilon:     0.005,
	}
}

// ContactHandler receives every approaching disc-disc contact.
type ContactHandler interface {
	OnContact(a, b *disc.Disc)
}

// StopHandler receives a disc the moment it comes to rest.
type StopHandler interface {
	OnStop(d *disc.Disc)
}

// Contact records one approaching disc-disc collision.
type Contact struct {
	A, B    int // disc IDs
	Substep int
	Impulse float32
}

// Report lists what happened during one SimulateFrame call.
type Report struct {
	Contacts []Contact
	Stopped  []int
}

// Engine advances discs with fixed substeps. It keeps no references to the
// discs between calls.
type Engine struct {
	Config   Config
	Contacts ContactHandler // optional
	Stops    StopHandler    // optional
}

func NewEngine(cfg Config) *Engine {
	if cfg.Substeps < 1 {
		cfg.Substeps = 1
	}
	return &Engine{Config: cfg}
}

// SimulateFrame advances every disc by one frame. Pairs are resolved in the
// fixed (i, j>i) order of the slice.
func (e *Engine) SimulateFrame(discs []*disc.Disc, field Field) Report {
	var report Report

	byID := make(map[int]*disc.Disc, len(discs))
	for _, d := range discs {
		byID[d.ID] = d
	}

	dt := 1 / float32(e.Config.Substeps)
	for step := 0; step < e.Config.Substeps; step++ {
		// 1. Integrate moving bodies and resolve the static world
		for _, d := range discs {
			if d.Destroyed || !d.Moving || d.Attached() {
				continue
			}
			e.integrate(d, dt, field)

			if d.Settle(e.Config.StopEpsilon) {
				report.Stopped = append(report.Stopped, d.ID)
				if e.Stops != nil {
					e.Stops.OnStop(d)
				}
			}
		}

		// 2. Orbs that have not been thrown ride along with their owner and
		// carry its velocity into contacts
		for _, d := range discs {
			if !d.Attached() {
				continue
			}
			if owner, ok := byID[d.Owner]; ok {
				d.Position = rl.Vector3Add(owner.Position, d.Offset)
				d.Position.Y = disc.BaseHeight
				d.Velocity = owner.Velocity
				d.Moving = owner.Moving
			}
		}

		// 3. Disc vs disc
		for i := 0; i < len(discs); i++ {
			for j := i + 1; j < len(discs); j++ {
				a, b := discs[i], discs[j]
				if a.Destroyed || b.Destroyed || ownerPair(a, b) {
					continue
				}
				c, approaching, touched := e.resolveDiscVsDisc(a, b)
				if touched {
					// Separation must not leave a free disc in a wall or an obstacle
					e.confine(a, field)
					e.confine(b, field)
				}
				if approaching {
					c.Substep = step
					report.Contacts = append(report.Contacts, c)
					if e.Contacts != nil {
						e.Contacts.OnContact(a, b)
					}
				}
			}
		}
	}

	return report
}

// integrate moves d by one substep and bounces it off walls and obstacles.
func (e *Engine) integrate(d *disc.Disc, dt float32, field Field) {
	d.Position = rl.Vector3Add(d.Position, rl.Vector3Scale(d.Velocity, dt))
	d.Position.Y = disc.BaseHeight

	e.confine(d, field)

	d.Velocity = capSpeed(d.Velocity, e.Config.MaxSpeed)
	d.Velocity = rl.Vector3Scale(d.Velocity, e.Config.Friction)
}

// confine resolves d against the walls and every obstacle. Attached orbs are
// placed by their owner and left alone.
func (e *Engine) confine(d *disc.Disc, field Field) {
	if d.Attached() {
		return
	}
	e.resolveWalls(d, field)
	for _, box := range field.Obstacles {
		e.resolveDiscVsBox(d, box)
	}
}

// ownerPair reports whether one disc is an orb owned by the other.
func ownerPair(a, b *disc.Disc) bool {
	return (a.Owner != 0 && a.Owner == b.ID) || (b.Owner != 0 && b.Owner == a.ID)
}

// inverseMass treats attached orbs as kinematic.
func inverseMass(d *disc.Disc) float32 {
	if d.Attached() || d.Mass <= 0 {
		return 0
	}
	return 1 / d.Mass
}
