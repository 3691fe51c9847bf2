package game

import (
	"fmt"
	"math"

	"discarena/internal/disc"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orbs are placed at these angles (degrees) around the wizard.
var summonAngles = [...]float64{0, 120, 240}

func (s *Session) canSummon(w *disc.Disc) bool {
	return w.Kind == disc.KindWizard && !s.summonUsed[w.ID] && len(s.LiveOrbs(w.ID)) == 0
}

// Summon places up to three orbs around the current wizard. Placements that
// would leave the field or touch an obstacle are skipped. It returns the IDs
// of the orbs created.
func (s *Session) Summon() ([]int, error) {
	if s.over {
		return nil, ErrGameOver
	}
	if s.state != AwaitingInput {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAction, s.state)
	}
	w := s.Current()
	if w == nil || w.Kind != disc.KindWizard || !w.Alive() {
		return nil, fmt.Errorf("%w: only a living Wizard can summon", ErrInvalidAction)
	}
	if s.summonUsed[w.ID] {
		return nil, ErrSummonUsed
	}
	if len(s.LiveOrbs(w.ID)) > 0 {
		return nil, ErrOrbsActive
	}

	orbRadius := disc.Preset(disc.KindOrb).Radius
	dist := w.Radius + orbRadius + s.cfg.SummonGap

	var ids []int
	for i, deg := range summonAngles {
		sin, cos := math.Sincos(deg * math.Pi / 180)
		offset := rl.Vector3{X: float32(cos) * dist, Z: float32(sin) * dist}
		pos := rl.Vector3Add(w.Position, offset)
		if !s.field.Fits(pos, orbRadius) {
			s.log.Debug("summon slot blocked", "wizard", w.Name, "slot", i)
			continue
		}

		orb := disc.New(s.nextID, fmt.Sprintf("%s Orb %d", w.Name, i+1), disc.KindOrb, pos.X, pos.Z)
		s.nextID++
		orb.Type = w.Type
		orb.Owner = w.ID
		orb.Offset = offset
		s.roster = append(s.roster, orb)
		ids = append(ids, orb.ID)
	}
	s.summonUsed[w.ID] = true

	s.log.Info("orbs summoned", "wizard", w.Name, "count", len(ids))
	s.Events.OrbsSummoned.Invoke(Summoned{Owner: w.ID, Orbs: ids})

	if !s.canAct(w) {
		s.state = TurnEnding
		s.advance()
	}
	return ids, nil
}
