package game

import (
	"fmt"

	"discarena/internal/disc"
)

// ArmRage spends a charge to empower the current Barbarian's next throw.
func (s *Session) ArmRage() error {
	if s.over {
		return ErrGameOver
	}
	if s.state != AwaitingInput {
		return fmt.Errorf("%w: %s", ErrInvalidAction, s.state)
	}
	cur := s.Current()
	if cur == nil || cur.Kind != disc.KindBarbarian {
		return fmt.Errorf("%w: only a Barbarian can rage", ErrInvalidAction)
	}
	if cur.HasThrown {
		return fmt.Errorf("%w: %s", ErrAlreadyThrown, cur.Name)
	}
	if cur.RageArmed {
		return ErrRageArmed
	}
	if s.rage <= 0 {
		return ErrNoCharges
	}

	s.rage--
	cur.RageArmed = true
	s.log.Info("rage armed", "disc", cur.Name, "charges", s.rage)
	s.Events.RageChanged.Invoke(s.rage)
	return nil
}
