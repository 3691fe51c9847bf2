// Package combat decides who damages whom when discs collide.
package combat

import (
	"discarena/internal/disc"
)

// RageDamage is what a raging Barbarian deals per hit, whatever its attack stat.
const RageDamage = 2

// Arena is the view of the session the resolver needs for one contact.
type Arena interface {
	// Active returns the disc whose throw is being animated, or nil.
	Active() *disc.Disc
	// LiveOrbs returns the owner's orbs that can still absorb a hit, in roster order.
	LiveOrbs(owner int) []*disc.Disc
	// GrantRage adds one rage charge, up to the cap.
	GrantRage()
}

// Hit describes one damaging contact.
type Hit struct {
	Attacker     int
	Victim       int
	AttackerName string
	VictimName   string
	Damage       int
	Absorbed     bool // an orb took the hit instead of the victim
	Absorber     int  // orb ID when Absorbed
	Killed       bool
	RageGranted  bool
}

// Resolver holds the per-throw and per-game damage bookkeeping.
type Resolver struct {
	damaged     map[string]bool // NPC names hit by the current throw
	rageGranted map[string]bool // NPC names that already paid out a rage charge
}

func NewResolver() *Resolver {
	return &Resolver{
		damaged:     make(map[string]bool),
		rageGranted: make(map[string]bool),
	}
}

// BeginThrow clears the per-throw tracking before attacker is launched.
func (r *Resolver) BeginThrow(attacker *disc.Disc) {
	clear(r.damaged)
	if attacker != nil {
		attacker.HasCausedDamage = false
	}
}

// Reset forgets everything, for a new game.
func (r *Resolver) Reset() {
	clear(r.damaged)
	clear(r.rageGranted)
}

// Resolve applies the damage rules to an approaching contact between a and b.
// ok is false when the contact deals no damage.
func (r *Resolver) Resolve(arena Arena, a, b *disc.Disc) (Hit, bool) {
	attacker := arena.Active()
	var victim *disc.Disc
	switch attacker {
	case nil:
		return Hit{}, false
	case a:
		victim = b
	case b:
		victim = a
	default:
		return Hit{}, false
	}

	if !victim.Alive() || attacker.Destroyed {
		return Hit{}, false
	}
	if attacker.Type == disc.TypeNPC && victim.Type == disc.TypeNPC {
		return Hit{}, false
	}

	if attacker.Type == disc.TypePlayer && victim.Type == disc.TypeNPC {
		if r.damaged[victim.Name] && !attacker.CanDoReboundDamage {
			return Hit{}, false
		}
		r.damaged[victim.Name] = true
	} else {
		if attacker.HasCausedDamage && !attacker.CanDoReboundDamage {
			return Hit{}, false
		}
	}
	attacker.HasCausedDamage = true

	hit := Hit{
		Attacker:     attacker.ID,
		Victim:       victim.ID,
		AttackerName: attacker.Name,
		VictimName:   victim.Name,
		Damage:       damageOf(attacker),
	}

	if victim.Kind == disc.KindWizard {
		if orbs := arena.LiveOrbs(victim.ID); len(orbs) > 0 {
			orbs[0].Consume()
			hit.Absorbed = true
			hit.Absorber = orbs[0].ID
			return hit, true
		}
	}

	hit.Killed = victim.TakeDamage(hit.Damage)
	if hit.Killed && victim.IsOrb() {
		victim.Consume()
	}

	if hit.Killed && victim.Type == disc.TypeNPC && attacker.Kind == disc.KindBarbarian &&
		!r.rageGranted[victim.Name] {
		r.rageGranted[victim.Name] = true
		arena.GrantRage()
		hit.RageGranted = true
	}

	return hit, true
}

func damageOf(attacker *disc.Disc) int {
	if attacker.Kind == disc.KindBarbarian && attacker.RageUsed {
		return RageDamage
	}
	return attacker.Attack
}
