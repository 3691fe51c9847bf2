// Package ai picks targets and throws for computer-controlled discs.
package ai

import (
	"math"
	"math/rand/v2"

	"discarena/internal/disc"
	"discarena/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config tunes the throw heuristic.
type Config struct {
	MaxAttempts    int     `json:"maxAttempts"`
	SpreadDegrees  float64 `json:"spreadDegrees"`  // widest miss at skill 0
	SamplesPerUnit float32 `json:"samplesPerUnit"` // path check density
	RangeScale     float32 `json:"rangeScale"`     // distance giving a full-strength throw
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts:    999,
		SpreadDegrees:  15,
		SamplesPerUnit: 10,
		RangeScale:     10,
	}
}

// Throw is a planned shot.
type Throw struct {
	Target    int // disc ID
	Direction rl.Vector3
	Speed     float32
	Attempts  int
	Clear     bool // false when the search gave up and kept the last direction
}

// Velocity returns the launch velocity of the throw.
func (t Throw) Velocity() rl.Vector3 {
	return rl.Vector3Scale(t.Direction, t.Speed)
}

type Planner struct {
	cfg Config
	rng *rand.Rand
}

func NewPlanner(cfg Config, rng *rand.Rand) *Planner {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Planner{cfg: cfg, rng: rng}
}

// NearestTarget returns the closest living non-orb disc on the other side.
func NearestTarget(self *disc.Disc, roster []*disc.Disc) *disc.Disc {
	var best *disc.Disc
	bestDist := float32(math.MaxFloat32)
	for _, d := range roster {
		if d == self || d.IsOrb() || !d.Alive() || d.Type == self.Type {
			continue
		}
		if dist := physics.HorizontalDistance(self.Position, d.Position); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// Plan aims self at its nearest enemy. ok is false when there is nothing to
// aim at.
func (p *Planner) Plan(self *disc.Disc, roster []*disc.Disc, field physics.Field) (Throw, bool) {
	target := NearestTarget(self, roster)
	if target == nil {
		return Throw{}, false
	}

	delta := physics.Flatten(rl.Vector3Subtract(target.Position, self.Position))
	dist := rl.Vector3Length(delta)
	if dist == 0 {
		return Throw{}, false
	}
	ideal := rl.Vector3Scale(delta, 1/dist)

	skill := float64(self.Skill)
	fuzz := (100 - skill) / 100
	spread := fuzz * p.cfg.SpreadDegrees * math.Pi / 180

	throw := Throw{Target: target.ID}
	for throw.Attempts < p.cfg.MaxAttempts {
		throw.Attempts++

		dir := ideal
		if spread > 0 {
			dir = physics.RotateY(ideal, (p.rng.Float64()*2-1)*spread)
		}
		throw.Direction = dir

		end := rl.Vector3Add(self.Position, rl.Vector3Scale(dir, dist))
		if field.SegmentClear(self.Position, end, p.cfg.SamplesPerUnit) {
			throw.Clear = true
			break
		}
		if spread == 0 {
			// every retry would pick the same line
			break
		}
	}

	strength := float32(math.Min(float64(dist/p.cfg.RangeScale), 1))
	accuracy := float32(0.7 + 0.3*skill/100)
	throw.Speed = strength * accuracy * self.Power / self.Mass

	return throw, true
}
