package disc

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// BaseHeight is the fixed y of every disc centre on the field plane.
const BaseHeight = 0.5

// Disc is a playing piece: physical body plus combat state.
type Disc struct {
	ID   int
	Name string
	Kind Kind
	Type Type

	Position rl.Vector3
	Velocity rl.Vector3 // units per frame, y always 0
	Radius   float32
	Mass     float32
	Power    float32

	HP     int
	MaxHP  int
	Attack int
	Skill  int

	Moving    bool
	HasThrown bool
	Dead      bool
	Destroyed bool // removed from the roster at the end of the frame

	CanDoReboundDamage bool
	RageArmed          bool // rage is active for the next throw
	RageUsed           bool // rage was used for the current throw
	HasCausedDamage    bool

	// Owner is the ID of the wizard an orb belongs to (0 = none). While the orb
	// has not been thrown it rides along at Owner.Position + Offset.
	Owner  int
	Offset rl.Vector3
}

// New creates a disc of the given kind at (x, z) with the kind's preset stats.
func New(id int, name string, kind Kind, x, z float32) *Disc {
	s := Preset(kind)
	return &Disc{
		ID:       id,
		Name:     name,
		Kind:     kind,
		Type:     s.Type,
		Position: rl.Vector3{X: x, Y: BaseHeight, Z: z},
		Radius:   s.Radius,
		Mass:     s.Mass,
		Power:    s.Power,
		HP:       s.HP,
		MaxHP:    s.HP,
		Attack:   s.Attack,
		Skill:    s.Skill,
	}
}

// IsOrb reports whether d is an ephemeral orb.
func (d *Disc) IsOrb() bool {
	return d.Kind == KindOrb
}

// Alive reports whether d can still act or be damaged.
func (d *Disc) Alive() bool {
	return !d.Dead && !d.Destroyed && d.HP > 0
}

// TurnEligible reports whether d may hold the turn index.
func (d *Disc) TurnEligible() bool {
	return !d.IsOrb() && d.Alive()
}

// Attached reports whether d is an orb still riding along with its owner.
func (d *Disc) Attached() bool {
	return d.IsOrb() && d.Owner != 0 && !d.HasThrown && !d.Destroyed
}

// Speed returns the horizontal speed in units per frame.
func (d *Disc) Speed() float32 {
	return rl.Vector3Length(d.Velocity)
}

// Launch starts a throw with the given velocity.
func (d *Disc) Launch(v rl.Vector3) {
	v.Y = 0
	d.Velocity = v
	d.Moving = true
	d.HasThrown = true
	d.HasCausedDamage = false
}

// Stop zeroes velocity and clears the moving flag.
func (d *Disc) Stop() {
	d.Velocity = rl.Vector3{}
	d.Moving = false
}

// Settle stops the disc once its speed drops below epsilon.
// Returns true only on the call that brought a moving disc to rest.
func (d *Disc) Settle(epsilon float32) bool {
	if d.Speed() >= epsilon {
		return false
	}
	wasMoving := d.Moving
	d.Stop()
	return wasMoving
}

// TakeDamage subtracts n hit points, clamping at zero.
// Returns true if this hit killed the disc.
func (d *Disc) TakeDamage(n int) bool {
	if n <= 0 || d.Dead || d.Destroyed {
		return false
	}
	d.HP -= n
	if d.HP > 0 {
		return false
	}
	return d.Die()
}

// Die marks the disc dead. It is a no-op on an already dead disc and returns
// false in that case.
func (d *Disc) Die() bool {
	if d.Dead {
		return false
	}
	d.Dead = true
	d.HP = 0
	return true
}

// Consume zeroes an orb and flags it for removal.
func (d *Disc) Consume() {
	d.Die()
	d.HP = 0
	d.Destroyed = true
	d.Stop()
}

// EndThrow clears per-throw state once the throw has resolved.
func (d *Disc) EndThrow() {
	d.HasCausedDamage = false
	d.RageUsed = false
	d.CanDoReboundDamage = false
}
