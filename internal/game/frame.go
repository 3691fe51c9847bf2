package game

import (
	"discarena/internal/combat"
	"discarena/internal/physics"
)

// FrameReport summarises one Frame call.
type FrameReport struct {
	Frame    int
	State    State
	Current  int // disc ID, 0 when nobody holds the turn
	Contacts []physics.Contact
	Stopped  []int
	Hits     []combat.Hit
}

// Frame advances the match by one frame: queued inputs, then the AI, then
// physics, then the turn state.
func (s *Session) Frame() FrameReport {
	s.frame++
	s.stats.Frames = s.frame
	s.hits = nil

	s.drainInputs()
	if !s.over {
		s.driveAI()
	}

	rep := s.physics.SimulateFrame(s.roster, s.field)

	if !s.over {
		s.evaluate()
	}
	s.sweep()

	report := FrameReport{
		Frame:    s.frame,
		State:    s.state,
		Contacts: rep.Contacts,
		Stopped:  rep.Stopped,
		Hits:     s.hits,
	}
	if cur := s.Current(); cur != nil {
		report.Current = cur.ID
	}
	return report
}

func (s *Session) evaluate() {
	switch s.state {
	case Animating:
		if s.thrown == nil || !s.thrown.Moving {
			s.finishThrow()
		}
	case AwaitingInput:
		// The current disc can be killed while others move
		if cur := s.Current(); cur == nil || !cur.TurnEligible() {
			s.state = TurnEnding
			if over, _ := s.CheckGameOver(); !over {
				s.advance()
			}
		}
	}
}
