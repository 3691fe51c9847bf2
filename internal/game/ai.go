package game

import (
	"fmt"

	"discarena/internal/disc"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AITakeTurn plans and commits a throw for the current disc.
func (s *Session) AITakeTurn(id int) error {
	if s.over {
		return ErrGameOver
	}
	if s.state != AwaitingInput {
		return fmt.Errorf("%w: %s", ErrInvalidAction, s.state)
	}
	cur := s.Current()
	if cur == nil || cur.ID != id {
		return fmt.Errorf("%w: %d", ErrNotYourTurn, id)
	}
	if !cur.Alive() {
		return fmt.Errorf("%w: %s", ErrDiscDead, cur.Name)
	}
	if cur.HasThrown {
		return fmt.Errorf("%w: %s", ErrAlreadyThrown, cur.Name)
	}

	throw, ok := s.planner.Plan(cur, s.roster, s.field)
	if !ok {
		return fmt.Errorf("%w for %s", ErrNoTarget, cur.Name)
	}
	if !throw.Clear {
		s.log.Debug("no clear path, throwing anyway", "disc", cur.Name, "attempts", throw.Attempts)
	}

	// An autopiloted Barbarian spends rage as soon as it has some
	if cur.Kind == disc.KindBarbarian && cur.Type == disc.TypePlayer && !cur.RageArmed && s.rage > 0 {
		if err := s.ArmRage(); err != nil {
			return err
		}
	}
	boost := s.armedPower(cur) / cur.Power

	s.launch(cur, rl.Vector3Scale(throw.Velocity(), boost))
	return nil
}

// driveAI counts down and then throws for an AI-controlled current disc. A
// disc that cannot throw gives up its turn so the game never stalls.
func (s *Session) driveAI() {
	if s.state != AwaitingInput {
		return
	}
	cur := s.Current()
	if !s.aiControlled(cur) || !cur.TurnEligible() {
		return
	}
	if s.aiCountdown > 0 {
		s.aiCountdown--
		return
	}
	if err := s.AITakeTurn(cur.ID); err != nil {
		s.log.Debug("ai passes", "disc", cur.Name, "err", err)
		s.EndTurn()
	}
}
