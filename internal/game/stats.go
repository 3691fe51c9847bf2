package game

import (
	"slices"

	"discarena/internal/combat"
	"discarena/internal/disc"
)

// DiscStats is the running tally for one disc.
type DiscStats struct {
	ID          int
	Name        string
	Kind        disc.Kind
	Type        disc.Type
	DamageDealt int
	DamageTaken int
	Absorbed    int
	Kills       int
	Died        bool
}

// Stats are the match totals.
type Stats struct {
	Turns  int
	Frames int
	Throws int
	Discs  []DiscStats // roster order, orbs excluded

	index map[int]int
}

func (st *Stats) init(roster []*disc.Disc) {
	st.index = make(map[int]int, len(roster))
	for _, d := range roster {
		if d.IsOrb() {
			continue
		}
		st.index[d.ID] = len(st.Discs)
		st.Discs = append(st.Discs, DiscStats{ID: d.ID, Name: d.Name, Kind: d.Kind, Type: d.Type})
	}
}

func (st *Stats) entry(id int) *DiscStats {
	if i, ok := st.index[id]; ok {
		return &st.Discs[i]
	}
	return nil
}

func (st *Stats) hit(h combat.Hit) {
	if a := st.entry(h.Attacker); a != nil {
		if h.Absorbed {
			a.Absorbed++
		} else {
			a.DamageDealt += h.Damage
		}
		if h.Killed && st.entry(h.Victim) != nil {
			a.Kills++
		}
	}
	if v := st.entry(h.Victim); v != nil && !h.Absorbed {
		v.DamageTaken += h.Damage
	}
}

func (st *Stats) death(id int) {
	if e := st.entry(id); e != nil {
		e.Died = true
	}
}

// Stats returns a copy of the match totals.
func (s *Session) Stats() Stats {
	out := s.stats
	out.Discs = slices.Clone(s.stats.Discs)
	out.index = nil
	return out
}
