package game

import (
	"discarena/internal/disc"
)

// DiscState is a plain copy of a disc for presentation and persistence.
type DiscState struct {
	ID     int       `msgpack:"id"`
	Name   string    `msgpack:"name"`
	Kind   disc.Kind `msgpack:"kind"`
	Type   disc.Type `msgpack:"type"`
	X      float32   `msgpack:"x"`
	Z      float32   `msgpack:"z"`
	VX     float32   `msgpack:"vx"`
	VZ     float32   `msgpack:"vz"`
	Radius float32   `msgpack:"r"`
	HP     int       `msgpack:"hp"`
	MaxHP  int       `msgpack:"maxHp"`
	Moving bool      `msgpack:"moving,omitempty"`
	Dead   bool      `msgpack:"dead,omitempty"`
	Owner  int       `msgpack:"owner,omitempty"`
}

// Snapshot copies the roster in order.
func (s *Session) Snapshot() []DiscState {
	out := make([]DiscState, 0, len(s.roster))
	for _, d := range s.roster {
		out = append(out, DiscState{
			ID:     d.ID,
			Name:   d.Name,
			Kind:   d.Kind,
			Type:   d.Type,
			X:      d.Position.X,
			Z:      d.Position.Z,
			VX:     d.Velocity.X,
			VZ:     d.Velocity.Z,
			Radius: d.Radius,
			HP:     d.HP,
			MaxHP:  d.MaxHP,
			Moving: d.Moving,
			Dead:   d.Dead,
			Owner:  d.Owner,
		})
	}
	return out
}
