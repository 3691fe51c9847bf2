package game

import (
	"fmt"

	"discarena/internal/disc"
)

// begin hands the turn to roster[i].
func (s *Session) begin(i int) {
	d := s.roster[i]
	s.current = i
	s.state = AwaitingInput
	s.thrown = nil
	s.aiming = false
	s.turn++
	s.stats.Turns = s.turn

	d.HasThrown = false
	d.HasCausedDamage = false

	if s.aiControlled(d) {
		s.aiCountdown = s.cfg.AIDelayFrames
	}

	s.log.Debug("turn", "n", s.turn, "disc", d.Name, "kind", d.Kind, "type", d.Type)
	s.Events.CurrentChanged.Invoke(TurnChange{Disc: d.ID, Name: d.Name, Turn: s.turn})
}

// advance moves the turn to the next eligible disc after the current one,
// wrapping around. With nobody left it settles the game.
func (s *Session) advance() {
	n := len(s.roster)
	for step := 1; step <= n; step++ {
		i := (s.current + step) % n
		if s.roster[i].TurnEligible() {
			s.begin(i)
			return
		}
	}
	s.CheckGameOver()
}

// EndTurn gives up the rest of the current turn.
func (s *Session) EndTurn() error {
	if s.over {
		return ErrGameOver
	}
	if s.state != AwaitingInput {
		return fmt.Errorf("%w: cannot end turn while %s", ErrInvalidAction, s.state)
	}
	s.state = TurnEnding
	s.aiming = false
	if over, _ := s.CheckGameOver(); over {
		return nil
	}
	s.advance()
	return nil
}

// finishThrow runs once the thrown disc has come to rest.
func (s *Session) finishThrow() {
	thrown := s.thrown
	s.thrown = nil
	s.state = TurnEnding
	if thrown != nil {
		thrown.EndThrow()
	}

	if over, _ := s.CheckGameOver(); over {
		return
	}

	cur := s.Current()
	if thrown != nil && thrown.IsOrb() {
		// Control returns to a living owner within the same turn
		if owner := s.Disc(thrown.Owner); owner != nil && owner == cur && owner.Alive() {
			s.stayOrAdvance(owner)
			return
		}
		s.advance()
		return
	}

	if cur.Kind == disc.KindWizard && s.humanControlled(cur) && cur.Alive() {
		s.stayOrAdvance(cur)
		return
	}
	s.advance()
}

// stayOrAdvance keeps the turn on wizard while it has something left to do.
func (s *Session) stayOrAdvance(wizard *disc.Disc) {
	if s.canAct(wizard) {
		s.state = AwaitingInput
		s.log.Debug("turn continues", "disc", wizard.Name)
		return
	}
	s.advance()
}

// canAct reports whether a wizard still has an action this turn: its own
// throw, an orb to throw, or an unused summon.
func (s *Session) canAct(w *disc.Disc) bool {
	if !w.Alive() {
		return false
	}
	if !w.HasThrown {
		return true
	}
	if w.Kind != disc.KindWizard {
		return false
	}
	for _, orb := range s.LiveOrbs(w.ID) {
		if orb.Attached() {
			return true
		}
	}
	return s.canSummon(w)
}
