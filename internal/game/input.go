package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// InputKind tags a queued player action.
type InputKind uint8

const (
	InputBeginAim InputKind = iota + 1
	InputCancelAim
	InputThrow
	InputEndTurn
	InputArmRage
	InputSummon
	InputAutopilot
)

func (k InputKind) String() string {
	switch k {
	case InputBeginAim:
		return "begin-aim"
	case InputCancelAim:
		return "cancel-aim"
	case InputThrow:
		return "throw"
	case InputEndTurn:
		return "end-turn"
	case InputArmRage:
		return "arm-rage"
	case InputSummon:
		return "summon"
	case InputAutopilot:
		return "autopilot"
	}
	return "unknown"
}

// Input is one queued action. Direction is on the field plane.
type Input struct {
	Kind      InputKind `msgpack:"k"`
	Disc      int       `msgpack:"d,omitempty"`
	DirX      float32   `msgpack:"x,omitempty"`
	DirZ      float32   `msgpack:"z,omitempty"`
	Magnitude float32   `msgpack:"m,omitempty"`
	On        bool      `msgpack:"on,omitempty"` // InputAutopilot only
}

// Throw builds a throw input for disc id.
func Throw(id int, dir rl.Vector3, magnitude float32) Input {
	return Input{Kind: InputThrow, Disc: id, DirX: dir.X, DirZ: dir.Z, Magnitude: magnitude}
}

// Recorder sees every input as it is drained, with the frame it applied to.
type Recorder interface {
	Record(frame int, in Input)
}

// Push queues an input for the next Frame call.
func (s *Session) Push(in Input) {
	s.queue = append(s.queue, in)
}

// drainInputs applies queued inputs in arrival order. Rejected inputs are
// logged and dropped.
func (s *Session) drainInputs() {
	if len(s.queue) == 0 {
		return
	}
	pending := s.queue
	s.queue = nil

	for _, in := range pending {
		if s.recorder != nil {
			s.recorder.Record(s.frame, in)
		}
		if err := s.apply(in); err != nil {
			s.log.Debug("input rejected", "input", in.Kind, "disc", in.Disc, "err", err)
		}
	}
}

func (s *Session) apply(in Input) error {
	switch in.Kind {
	case InputBeginAim:
		return s.BeginTurnInput(in.Disc)
	case InputCancelAim:
		s.CancelAim()
		return nil
	case InputThrow:
		return s.ResolveThrow(in.Disc, rl.Vector3{X: in.DirX, Z: in.DirZ}, in.Magnitude)
	case InputEndTurn:
		return s.EndTurn()
	case InputArmRage:
		return s.ArmRage()
	case InputSummon:
		_, err := s.Summon()
		return err
	case InputAutopilot:
		s.SetAutopilot(in.On)
		return nil
	}
	return ErrInvalidAction
}
