package game

import "discarena/internal/disc"

// CheckGameOver evaluates the win/loss rules. The result is sticky: once the
// game is over later calls return the same answer without notifying again.
func (s *Session) CheckGameOver() (over, playerWon bool) {
	if s.over {
		return true, s.playerWon
	}

	var players, playersAlive, npcs, npcsAlive int
	for _, d := range s.roster {
		if d.IsOrb() {
			continue
		}
		if d.Type == disc.TypePlayer {
			players++
			if d.Alive() {
				playersAlive++
			}
		} else {
			npcs++
			if d.Alive() {
				npcsAlive++
			}
		}
	}

	switch {
	case players > 0 && playersAlive == 0:
		s.playerWon = false
	case players == 0:
		s.playerWon = true
	case npcs > 0 && npcsAlive == 0:
		s.playerWon = true
	default:
		return false, false
	}

	s.over = true
	s.state = GameOver
	if s.thrown != nil {
		s.thrown.EndThrow()
	}
	s.thrown = nil
	s.aiming = false
	s.queue = nil

	s.log.Info("game over", "playerWon", s.playerWon, "turns", s.turn, "frames", s.frame)
	s.Events.GameOver.Invoke(Outcome{PlayerWon: s.playerWon, Turns: s.turn, Frames: s.frame})
	return true, s.playerWon
}
