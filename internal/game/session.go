// Package game owns a match: the roster, the turn state machine, and the glue
// between physics, combat and the AI.
package game

import (
	"fmt"
	"io"
	"math/rand/v2"

	"discarena/internal/ai"
	"discarena/internal/combat"
	"discarena/internal/config"
	"discarena/internal/disc"
	"discarena/internal/level"
	"discarena/internal/physics"

	"github.com/charmbracelet/log"
)

// Options are the optional collaborators of a Session.
type Options struct {
	Logger    *log.Logger
	Recorder  Recorder
	Autopilot bool // the AI plays the Player side too
}

// Session is one match. It is not safe for concurrent use: every method is
// expected to run on the simulation loop.
type Session struct {
	Events Events

	cfg   config.Config
	log   *log.Logger
	field physics.Field

	roster  []*disc.Disc
	current int        // index into roster
	thrown  *disc.Disc // disc whose throw is being animated
	state   State

	over      bool
	playerWon bool

	rage       int
	summonUsed map[int]bool // wizard IDs

	aiming      bool
	aimDisc     int
	autopilot   bool
	aiCountdown int

	nextID int
	frame  int
	turn   int
	queue  []Input
	hits   []combat.Hit

	physics  *physics.Engine
	combat   *combat.Resolver
	planner  *ai.Planner
	recorder Recorder
	stats    Stats
}

// New starts a match on lv.
func New(lv *level.Level, cfg config.Config, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s, err := newSession(lv.Field(), lv.Spawn(), cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", lv.Name, err)
	}
	return s, nil
}

func newSession(field physics.Field, roster []*disc.Disc, cfg config.Config, opts Options) (*Session, error) {
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:        cfg,
		log:        logger.WithPrefix("game"),
		field:      field,
		roster:     roster,
		summonUsed: make(map[int]bool),
		autopilot:  opts.Autopilot,
		recorder:   opts.Recorder,
		physics:    physics.NewEngine(cfg.Physics),
		combat:     combat.NewResolver(),
		planner:    ai.NewPlanner(cfg.AI, rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))),
	}
	s.physics.Contacts = s
	s.physics.Stops = s
	s.stats.init(roster)

	for _, d := range roster {
		s.nextID = max(s.nextID, d.ID)
	}
	s.nextID++

	first := -1
	for i, d := range roster {
		if d.Type == disc.TypePlayer && d.TurnEligible() {
			first = i
			break
		}
	}
	if first < 0 {
		for i, d := range roster {
			if d.TurnEligible() {
				first = i
				break
			}
		}
	}
	if first < 0 {
		s.current = 0
		s.CheckGameOver()
		return s, nil
	}
	s.begin(first)
	return s, nil
}

// --- Accessors ---

func (s *Session) Field() physics.Field { return s.field }
func (s *Session) State() State         { return s.state }
func (s *Session) Rage() int            { return s.rage }
func (s *Session) FrameCount() int      { return s.frame }
func (s *Session) Turn() int            { return s.turn }
func (s *Session) Autopilot() bool      { return s.autopilot }
func (s *Session) Config() config.Config {
	return s.cfg
}

// Roster returns the live roster. Callers must not keep it across frames.
func (s *Session) Roster() []*disc.Disc { return s.roster }

// Current returns the disc holding the turn.
func (s *Session) Current() *disc.Disc {
	if s.current < 0 || s.current >= len(s.roster) {
		return nil
	}
	return s.roster[s.current]
}

// Disc looks a disc up by ID.
func (s *Session) Disc(id int) *disc.Disc {
	for _, d := range s.roster {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// Outcome reports whether the game has ended and who won.
func (s *Session) Outcome() (over, playerWon bool) {
	return s.over, s.playerWon
}

// Aiming reports the disc being aimed by the player, if any.
func (s *Session) Aiming() (int, bool) {
	return s.aimDisc, s.aiming
}

// SetAutopilot hands the Player side to the AI, or back.
func (s *Session) SetAutopilot(on bool) {
	s.autopilot = on
	if on && s.state == AwaitingInput && s.aiControlled(s.Current()) {
		s.aiming = false
		s.aiCountdown = s.cfg.AIDelayFrames
	}
}

// humanControlled reports whether d takes its orders from the input queue.
func (s *Session) humanControlled(d *disc.Disc) bool {
	return d != nil && d.Type == disc.TypePlayer && !s.autopilot
}

func (s *Session) aiControlled(d *disc.Disc) bool {
	return d != nil && !s.humanControlled(d)
}

// --- combat.Arena ---

// Active returns the disc whose throw is in flight.
func (s *Session) Active() *disc.Disc {
	if s.state != Animating {
		return nil
	}
	return s.thrown
}

// LiveOrbs returns owner's orbs that are still in play.
func (s *Session) LiveOrbs(owner int) []*disc.Disc {
	var orbs []*disc.Disc
	for _, d := range s.roster {
		if d.IsOrb() && d.Owner == owner && d.Alive() {
			orbs = append(orbs, d)
		}
	}
	return orbs
}

// GrantRage adds a charge up to the cap.
func (s *Session) GrantRage() {
	if s.rage >= s.cfg.RageCap {
		return
	}
	s.rage++
	s.log.Info("rage charge earned", "charges", s.rage)
	s.Events.RageChanged.Invoke(s.rage)
}

// --- physics callbacks ---

// OnContact runs the combat rules for an approaching contact.
func (s *Session) OnContact(a, b *disc.Disc) {
	hit, ok := s.combat.Resolve(s, a, b)
	if !ok {
		return
	}
	s.hits = append(s.hits, hit)
	s.stats.hit(hit)

	if hit.Absorbed {
		s.log.Debug("orb absorbed hit", "attacker", hit.AttackerName, "victim", hit.VictimName)
	} else {
		s.log.Debug("hit", "attacker", hit.AttackerName, "victim", hit.VictimName, "damage", hit.Damage)
	}
	s.Events.Hit.Invoke(hit)

	if hit.Absorbed {
		s.orbGone(s.Disc(hit.Absorber))
	}
	if hit.Killed {
		victim := s.Disc(hit.Victim)
		if victim.IsOrb() {
			s.orbGone(victim)
		} else {
			s.died(victim, hit.Attacker)
		}
	}
}

// OnStop runs the per-disc bookkeeping when a disc comes to rest.
func (s *Session) OnStop(d *disc.Disc) {
	if d.IsOrb() && d.HasThrown && !d.Destroyed {
		d.Consume()
		s.orbGone(d)
		return
	}
	if d.HP <= 0 && d.Die() {
		s.died(d, 0)
	}
}

func (s *Session) died(d *disc.Disc, killer int) {
	s.stats.death(d.ID)
	s.log.Info("disc died", "disc", d.Name, "kind", d.Kind)
	s.Events.DiscDied.Invoke(Death{Disc: d.ID, Name: d.Name, Killer: killer})
}

func (s *Session) orbGone(orb *disc.Disc) {
	if orb == nil {
		return
	}
	s.log.Debug("orb consumed", "orb", orb.Name)
	s.Events.OrbConsumed.Invoke(OrbGone{Orb: orb.ID, Owner: orb.Owner})
}

// sweep drops destroyed discs from the roster, keeping the current index on
// the same disc.
func (s *Session) sweep() {
	cur := s.Current()
	kept := s.roster[:0]
	for _, d := range s.roster {
		if !d.Destroyed {
			kept = append(kept, d)
		}
	}
	for i := len(kept); i < len(s.roster); i++ {
		s.roster[i] = nil
	}
	s.roster = kept

	for i, d := range s.roster {
		if d == cur {
			s.current = i
			return
		}
	}
}
