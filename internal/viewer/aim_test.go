package viewer

import (
	"math"
	"testing"

	"discarena/internal/disc"
	"discarena/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestGroundPoint(t *testing.T) {
	ray := rl.Ray{Position: rl.Vector3{X: 1, Y: 10, Z: 2}, Direction: rl.Vector3{X: 0.6, Y: -0.8}}
	p, ok := groundPoint(ray)
	if !ok {
		t.Fatal("Expected a hit on the ground plane")
	}
	if math.Abs(float64(p.X-8.5)) > 1e-4 || p.Y != 0 || p.Z != 2 {
		t.Errorf("Expected (8.5, 0, 2), got %+v", p)
	}

	if _, ok := groundPoint(rl.Ray{Position: rl.Vector3{Y: 5}, Direction: rl.Vector3{X: 1}}); ok {
		t.Error("A ray parallel to the ground should miss")
	}
	if _, ok := groundPoint(rl.Ray{Position: rl.Vector3{Y: 5}, Direction: rl.Vector3{Y: 1}}); ok {
		t.Error("A ray pointing up should miss")
	}
}

func TestPullThrowsAwayFromDrag(t *testing.T) {
	dir, mag := pull(rl.Vector3{}, rl.Vector3{X: -3}, 6)
	if dir.X != 1 || dir.Z != 0 {
		t.Errorf("Expected +x, got %+v", dir)
	}
	if mag != 0.5 {
		t.Errorf("Expected magnitude 0.5, got %v", mag)
	}

	_, mag = pull(rl.Vector3{}, rl.Vector3{Z: 20}, 6)
	if mag != 1 {
		t.Errorf("Expected magnitude capped at 1, got %v", mag)
	}

	dir, mag = pull(rl.Vector3{X: 2}, rl.Vector3{X: 2}, 6)
	if mag != 0 || dir != (rl.Vector3{}) {
		t.Errorf("A zero drag should give nothing, got %+v %v", dir, mag)
	}
}

func TestPickPrefersLaterDiscs(t *testing.T) {
	wizard := disc.New(1, "Merlin", disc.KindWizard, 0, 0)
	orb := disc.New(2, "Merlin Orb 1", disc.KindOrb, 0.8, 0)
	dead := disc.New(3, "Bones", disc.KindSkeleton, 5, 0)
	dead.Die()
	roster := []*disc.Disc{wizard, orb, dead}

	if got := pick(roster, rl.Vector3{X: 0.7}); got != orb {
		t.Errorf("Expected the orb, got %v", got)
	}
	if got := pick(roster, rl.Vector3{X: -0.5}); got != wizard {
		t.Errorf("Expected the wizard, got %v", got)
	}
	if got := pick(roster, rl.Vector3{X: 5}); got != nil {
		t.Errorf("Dead discs should not be picked, got %v", got)
	}
}

func TestAimEndStopsAtFirstBlocker(t *testing.T) {
	field := physics.Field{
		Width: 40, Depth: 30,
		Obstacles: []physics.Box{physics.NewBox(rl.Vector3{X: 5, Y: 1}, rl.Vector3{X: 2, Y: 2, Z: 2})},
	}
	start := rl.Vector3{Y: 0.7}

	end, blocked := aimEnd(field, start, rl.Vector3{X: 1}, 10)
	if !blocked {
		t.Fatal("Expected the block to cut the guide")
	}
	if math.Abs(float64(end.X-4)) > 1e-4 || end.Y != 0.7 || end.Z != 0 {
		t.Errorf("Expected the guide to end on the block face at (4, 0.7, 0), got %+v", end)
	}

	end, blocked = aimEnd(field, start, rl.Vector3{X: -1}, 30)
	if !blocked || math.Abs(float64(end.X+20)) > 1e-4 {
		t.Errorf("Expected the guide to end on the left wall, got %+v blocked=%v", end, blocked)
	}

	end, blocked = aimEnd(field, start, rl.Vector3{Z: 1}, 3)
	if blocked || end != (rl.Vector3{Y: 0.7, Z: 3}) {
		t.Errorf("A clear path should keep the full length, got %+v blocked=%v", end, blocked)
	}
}
