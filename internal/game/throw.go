package game

import (
	"fmt"

	"discarena/internal/disc"
	"discarena/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// throwable checks that the player may throw disc id right now: the current
// disc itself, or an attached orb of the current wizard.
func (s *Session) throwable(id int) (*disc.Disc, error) {
	if s.over {
		return nil, ErrGameOver
	}
	if s.state != AwaitingInput {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAction, s.state)
	}
	d := s.Disc(id)
	if d == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDisc, id)
	}
	cur := s.Current()
	if !s.humanControlled(cur) {
		return nil, fmt.Errorf("%w: %s is AI controlled", ErrNotYourTurn, cur.Name)
	}

	if d.IsOrb() {
		if d.Owner != cur.ID {
			return nil, fmt.Errorf("%w: %s", ErrNotYourTurn, d.Name)
		}
		if !d.Attached() || !d.Alive() {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyThrown, d.Name)
		}
		return d, nil
	}

	if d != cur {
		return nil, fmt.Errorf("%w: %s", ErrNotYourTurn, d.Name)
	}
	if !d.Alive() {
		return nil, fmt.Errorf("%w: %s", ErrDiscDead, d.Name)
	}
	if d.HasThrown {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyThrown, d.Name)
	}
	return d, nil
}

// BeginTurnInput starts aiming disc id.
func (s *Session) BeginTurnInput(id int) error {
	if _, err := s.throwable(id); err != nil {
		return err
	}
	s.aiming = true
	s.aimDisc = id
	return nil
}

// CancelAim drops an aim in progress. Simulation state is untouched.
func (s *Session) CancelAim() {
	s.aiming = false
	s.aimDisc = 0
}

// ResolveThrow validates and commits a player throw. dir is flattened onto the
// field plane; magnitude is the normalised drag length.
func (s *Session) ResolveThrow(id int, dir rl.Vector3, magnitude float32) error {
	d, err := s.throwable(id)
	if err != nil {
		return err
	}
	if magnitude <= s.cfg.DragThreshold {
		return fmt.Errorf("%w: %.3f", ErrWeakThrow, magnitude)
	}
	dir = physics.Flatten(dir)
	if rl.Vector3Length(dir) == 0 {
		return fmt.Errorf("%w: zero direction", ErrInvalidAction)
	}
	dir = rl.Vector3Normalize(dir)

	speed := min(magnitude, 1) * s.armedPower(d) / d.Mass
	speed = max(speed, s.cfg.MinThrowSpeed)

	s.launch(d, rl.Vector3Scale(dir, speed))
	return nil
}

// armedPower returns d's throw power, consuming an armed rage.
func (s *Session) armedPower(d *disc.Disc) float32 {
	power := d.Power
	if d.RageArmed && d.Kind == disc.KindBarbarian {
		power *= s.cfg.RageMultiplier
		d.RageArmed = false
		d.RageUsed = true
		d.CanDoReboundDamage = !d.IsOrb()
	}
	return power
}

// launch commits a throw and enters the animating state.
func (s *Session) launch(d *disc.Disc, velocity rl.Vector3) {
	s.combat.BeginThrow(d)
	d.Launch(velocity)
	s.thrown = d
	s.state = Animating
	s.aiming = false
	s.aimDisc = 0
	s.stats.Throws++

	s.log.Debug("throw", "disc", d.Name, "speed", rl.Vector3Length(velocity), "rage", d.RageUsed)
}
