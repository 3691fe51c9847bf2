package game

import (
	"discarena/internal/combat"
	"discarena/internal/engine"
)

// TurnChange is sent when a new disc becomes current.
type TurnChange struct {
	Disc int
	Name string
	Turn int
}

// Death is sent once per disc when it dies. Killer is 0 when nobody gets the
// credit.
type Death struct {
	Disc   int
	Name   string
	Killer int
}

// Outcome is sent once when the game ends.
type Outcome struct {
	PlayerWon bool
	Turns     int
	Frames    int
}

// Summoned lists the orbs a wizard managed to place.
type Summoned struct {
	Owner int
	Orbs  []int
}

// OrbGone is sent when an orb is used up, by stopping or by absorbing a hit.
type OrbGone struct {
	Orb   int
	Owner int
}

// Events are the notifications a presentation layer can subscribe to. All of
// them fire synchronously from inside Session calls.
type Events struct {
	CurrentChanged engine.EventWithArg[TurnChange]
	DiscDied       engine.EventWithArg[Death]
	GameOver       engine.EventWithArg[Outcome]
	RageChanged    engine.EventWithArg[int]
	Hit            engine.EventWithArg[combat.Hit]
	OrbsSummoned   engine.EventWithArg[Summoned]
	OrbConsumed    engine.EventWithArg[OrbGone]
}
