package game

import "errors"

// Rejections returned by the direct Session API. Queue-driven inputs log them
// at debug level and drop the input.
var (
	ErrGameOver      = errors.New("game is over")
	ErrInvalidAction = errors.New("invalid action")
	ErrNotYourTurn   = errors.New("not this disc's turn")
	ErrUnknownDisc   = errors.New("unknown disc")
	ErrDiscDead      = errors.New("disc is dead")
	ErrAlreadyThrown = errors.New("disc already thrown this turn")
	ErrWeakThrow     = errors.New("drag below throw threshold")
	ErrNoCharges     = errors.New("no rage charges")
	ErrRageArmed     = errors.New("rage already armed")
	ErrSummonUsed    = errors.New("summon already used")
	ErrOrbsActive    = errors.New("wizard still has live orbs")
	ErrNoTarget      = errors.New("no target")
	ErrEmptyRoster   = errors.New("roster has no discs")
)
