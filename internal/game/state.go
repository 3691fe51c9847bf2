package game

// State is the phase of the current turn.
type State int

const (
	AwaitingInput State = iota
	Animating
	TurnEnding
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting-input"
	case Animating:
		return "animating"
	case TurnEnding:
		return "turn-ending"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}
