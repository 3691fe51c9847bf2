package ai

import (
	"math"
	"math/rand/v2"
	"testing"

	"discarena/internal/disc"
	"discarena/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newPlanner(seed uint64) *Planner {
	return NewPlanner(DefaultConfig(), rand.New(rand.NewPCG(seed, seed)))
}

func TestPerfectSkillUsesIdealDirection(t *testing.T) {
	warden := disc.New(1, "Warden", disc.KindWarden, 0, 0)
	warden.Skill = 100
	barb := disc.New(2, "Conan", disc.KindBarbarian, 3, 4)
	field := physics.Field{Width: 40, Depth: 40}

	for seed := uint64(0); seed < 20; seed++ {
		throw, ok := newPlanner(seed).Plan(warden, []*disc.Disc{warden, barb}, field)
		if !ok {
			t.Fatal("Expected a throw")
		}
		if throw.Attempts != 1 || !throw.Clear {
			t.Errorf("seed %d: expected a clear first attempt, got %d attempts", seed, throw.Attempts)
		}
		if math.Abs(float64(throw.Direction.X-0.6)) > 1e-6 || math.Abs(float64(throw.Direction.Z-0.8)) > 1e-6 {
			t.Errorf("seed %d: expected the ideal direction, got %v", seed, throw.Direction)
		}
	}
}

func TestTargetsNearestLivingEnemy(t *testing.T) {
	skel := disc.New(1, "Bones", disc.KindSkeleton, 0, 0)
	near := disc.New(2, "Near", disc.KindWizard, 2, 0)
	far := disc.New(3, "Far", disc.KindBarbarian, 8, 0)
	ally := disc.New(4, "Ally", disc.KindSkeleton, 1, 0)
	orb := disc.New(5, "Orb", disc.KindOrb, 1.5, 0)

	roster := []*disc.Disc{skel, near, far, ally, orb}
	if got := NearestTarget(skel, roster); got != near {
		t.Errorf("Expected Near, got %v", got)
	}

	near.Die()
	if got := NearestTarget(skel, roster); got != far {
		t.Errorf("Expected Far once Near is dead, got %v", got)
	}

	far.Die()
	if _, ok := newPlanner(1).Plan(skel, roster, physics.Field{Width: 20, Depth: 20}); ok {
		t.Error("No living enemy should mean no throw")
	}
}

func TestSpeedFormula(t *testing.T) {
	skel := disc.New(1, "Bones", disc.KindSkeleton, 0, 0) // skill 50, power 1, mass 0.8
	barb := disc.New(2, "Conan", disc.KindBarbarian, 5, 0)
	throw, ok := newPlanner(7).Plan(skel, []*disc.Disc{skel, barb}, physics.Field{Width: 40, Depth: 40})
	if !ok {
		t.Fatal("Expected a throw")
	}
	want := 0.5 * 0.85 / 0.8
	if math.Abs(float64(throw.Speed)-want) > 1e-5 {
		t.Errorf("Expected speed %v, got %v", want, throw.Speed)
	}
	if math.Abs(float64(rl.Vector3Length(throw.Direction))-1) > 1e-5 {
		t.Errorf("Direction should be a unit vector, got %v", throw.Direction)
	}
}

func TestFuzzStaysWithinSpread(t *testing.T) {
	skel := disc.New(1, "Bones", disc.KindSkeleton, 0, 0)
	skel.Skill = 0
	barb := disc.New(2, "Conan", disc.KindBarbarian, 10, 0)
	p := newPlanner(42)
	limit := 15 * math.Pi / 180

	for i := 0; i < 200; i++ {
		throw, _ := p.Plan(skel, []*disc.Disc{skel, barb}, physics.Field{Width: 40, Depth: 40})
		angle := math.Atan2(float64(throw.Direction.Z), float64(throw.Direction.X))
		if math.Abs(angle) > limit+1e-6 {
			t.Fatalf("Angle %v outside ±%v", angle, limit)
		}
	}
}

func TestAvoidsObstacle(t *testing.T) {
	skel := disc.New(1, "Bones", disc.KindSkeleton, 0, 0)
	barb := disc.New(2, "Conan", disc.KindBarbarian, 10, 0)
	field := physics.Field{
		Width: 40, Depth: 40,
		Obstacles: []physics.Box{physics.NewBox(rl.Vector3{X: 5}, rl.Vector3{X: 0.4, Y: 1, Z: 0.4})},
	}

	throw, ok := newPlanner(3).Plan(skel, []*disc.Disc{skel, barb}, field)
	if !ok || !throw.Clear {
		t.Fatalf("Expected a clear path around the post, got %+v", throw)
	}
	end := rl.Vector3Add(skel.Position, rl.Vector3Scale(throw.Direction, 10))
	if !field.SegmentClear(skel.Position, end, 10) {
		t.Error("Chosen direction runs through the obstacle")
	}
}

func TestExhaustedSearchFallsBack(t *testing.T) {
	skel := disc.New(1, "Bones", disc.KindSkeleton, 0, 0)
	barb := disc.New(2, "Conan", disc.KindBarbarian, 10, 0)
	field := physics.Field{
		Width: 40, Depth: 40,
		Obstacles: []physics.Box{physics.NewBox(rl.Vector3{X: 5}, rl.Vector3{X: 1, Y: 1, Z: 30})},
	}

	throw, ok := newPlanner(9).Plan(skel, []*disc.Disc{skel, barb}, field)
	if !ok {
		t.Fatal("Fallback should still produce a throw")
	}
	if throw.Clear || throw.Attempts != DefaultConfig().MaxAttempts {
		t.Errorf("Expected an exhausted search, got clear=%v attempts=%d", throw.Clear, throw.Attempts)
	}
	if throw.Speed <= 0 {
		t.Error("Fallback throw should still have speed")
	}
}
