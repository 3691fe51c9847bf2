package physics

import (
	"math"
	"testing"

	"discarena/internal/disc"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type recorder struct {
	contacts [][2]int
	stops    []int
}

func (r *recorder) OnContact(a, b *disc.Disc) { r.contacts = append(r.contacts, [2]int{a.ID, b.ID}) }
func (r *recorder) OnStop(d *disc.Disc)       { r.stops = append(r.stops, d.ID) }

func openField() Field {
	return Field{Width: 40, Depth: 30}
}

func newEngine(rec *recorder) *Engine {
	e := NewEngine(DefaultConfig())
	e.Contacts = rec
	e.Stops = rec
	return e
}

func TestThrownDiscComesToRest(t *testing.T) {
	rec := &recorder{}
	e := newEngine(rec)
	d := disc.New(1, "Conan", disc.KindBarbarian, 0, 0)
	d.Launch(rl.Vector3{X: 0.5})

	for i := 0; i < 600 && d.Moving; i++ {
		e.SimulateFrame([]*disc.Disc{d}, openField())
	}

	if d.Moving {
		t.Fatal("Disc never stopped")
	}
	if d.Velocity != (rl.Vector3{}) {
		t.Errorf("Stopped disc should have zero velocity, got %v", d.Velocity)
	}
	if d.Position.X <= 0 {
		t.Errorf("Disc should have travelled along +X, at %v", d.Position.X)
	}
	if len(rec.stops) != 1 || rec.stops[0] != 1 {
		t.Errorf("Expected one stop callback for disc 1, got %v", rec.stops)
	}
}

func TestWallBounceReflectsAndStaysInside(t *testing.T) {
	e := newEngine(&recorder{})
	field := Field{Width: 20, Depth: 20}
	d := disc.New(1, "Conan", disc.KindBarbarian, 8, 0)
	d.Launch(rl.Vector3{X: 2})

	bounced := false
	for i := 0; i < 50 && d.Moving; i++ {
		e.SimulateFrame([]*disc.Disc{d}, field)
		if d.Position.X+d.Radius > 10 {
			t.Fatalf("Disc left the field: x=%v", d.Position.X)
		}
		if d.Velocity.X < 0 {
			bounced = true
		}
	}
	if !bounced {
		t.Error("Disc should have bounced off the +X wall")
	}
}

func TestObstacleBounce(t *testing.T) {
	e := newEngine(&recorder{})
	field := Field{
		Width: 40, Depth: 40,
		Obstacles: []Box{NewBox(rl.Vector3{X: 5, Y: 1, Z: 0}, rl.Vector3{X: 2, Y: 2, Z: 10})},
	}
	d := disc.New(1, "Conan", disc.KindBarbarian, 0, 0)
	d.Launch(rl.Vector3{X: 1.5})

	for i := 0; i < 200 && d.Moving; i++ {
		e.SimulateFrame([]*disc.Disc{d}, field)
		if field.Obstacles[0].Overlaps(d.Position, d.Radius-0.01) {
			t.Fatalf("Disc penetrated the obstacle at %v", d.Position)
		}
	}
	if d.Position.X >= 4 {
		t.Errorf("Disc should have been turned back before the block, at %v", d.Position.X)
	}
}

func TestEqualMassHeadOnExchangesVelocity(t *testing.T) {
	rec := &recorder{}
	e := newEngine(rec)
	a := disc.New(1, "A", disc.KindSkeleton, 0, 0)
	b := disc.New(2, "B", disc.KindSkeleton, 1.7, 0)
	a.Launch(rl.Vector3{X: 0.8})

	e.SimulateFrame([]*disc.Disc{a, b}, openField())

	if len(rec.contacts) == 0 {
		t.Fatal("Expected a contact")
	}
	if math.Abs(float64(a.Velocity.X)) > 0.01 {
		t.Errorf("Striker should nearly stop, vx=%v", a.Velocity.X)
	}
	if b.Velocity.X <= 0.5 || !b.Moving {
		t.Errorf("Target should carry the momentum, vx=%v moving=%v", b.Velocity.X, b.Moving)
	}
}

func TestOverlapIsSeparated(t *testing.T) {
	rec := &recorder{}
	e := newEngine(rec)
	a := disc.New(1, "A", disc.KindWarden, 0, 0)
	b := disc.New(2, "B", disc.KindSkeleton, 1.5, 0.5)

	e.SimulateFrame([]*disc.Disc{a, b}, openField())

	dist := HorizontalDistance(a.Position, b.Position)
	if dist < a.Radius+b.Radius-0.001 {
		t.Errorf("Discs still overlap: dist=%v, radii=%v", dist, a.Radius+b.Radius)
	}
	if len(rec.contacts) != 0 {
		t.Error("Resting overlap should not count as an approaching contact")
	}
}

func TestSeparationHoldsAfterCollision(t *testing.T) {
	e := newEngine(&recorder{})
	discs := []*disc.Disc{
		disc.New(1, "A", disc.KindBarbarian, -6, 0),
		disc.New(2, "B", disc.KindSkeleton, 0, 0.3),
		disc.New(3, "C", disc.KindWarden, 6, -4),
	}
	discs[0].Launch(rl.Vector3{X: 2})

	for frame := 0; frame < 120; frame++ {
		e.SimulateFrame(discs, openField())
		for i := 0; i < len(discs); i++ {
			for j := i + 1; j < len(discs); j++ {
				a, b := discs[i], discs[j]
				if d := HorizontalDistance(a.Position, b.Position); d < a.Radius+b.Radius-0.01 {
					t.Fatalf("frame %d: %s and %s overlap (%v)", frame, a.Name, b.Name, d)
				}
			}
		}
	}
}

func TestAttachedOrbFollowsOwnerWithoutColliding(t *testing.T) {
	rec := &recorder{}
	e := newEngine(rec)
	wiz := disc.New(1, "Merlin", disc.KindWizard, 0, 0)
	orb := disc.New(2, "Orb 1", disc.KindOrb, 1.5, 0)
	orb.Owner = wiz.ID
	orb.Offset = rl.Vector3{X: 1.5}
	wiz.Launch(rl.Vector3{X: 0.5})

	e.SimulateFrame([]*disc.Disc{wiz, orb}, openField())

	if got := orb.Position.X - wiz.Position.X; math.Abs(float64(got-1.5)) > 1e-4 {
		t.Errorf("Orb should keep its offset, got %v", got)
	}
	if len(rec.contacts) != 0 {
		t.Error("Orb and owner must never collide")
	}
	if !orb.Moving || orb.Velocity != wiz.Velocity {
		t.Errorf("Attached orb should move with its owner, moving=%v v=%v owner v=%v", orb.Moving, orb.Velocity, wiz.Velocity)
	}
}

func TestRidingOrbCannotPushDiscsOutOfField(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		wizX  float32
		skelX float32
	}{
		// Skeleton resting against the +X wall
		{"wall", Field{Width: 40, Depth: 30}, 14, 20 - 0.8 - 0.01},
		// Skeleton resting against the left face of a block
		{"obstacle", Field{
			Width: 40, Depth: 30,
			Obstacles: []Box{NewBox(rl.Vector3{X: 3, Y: 1}, rl.Vector3{X: 2, Y: 2, Z: 4})},
		}, -4, 2 - 0.8 - 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			e := newEngine(rec)
			wiz := disc.New(1, "Merlin", disc.KindWizard, tt.wizX, 0)
			orb := disc.New(2, "Merlin Orb 1", disc.KindOrb, tt.wizX+1.8, 0)
			orb.Owner = wiz.ID
			orb.Offset = rl.Vector3{X: 1.8}
			skel := disc.New(3, "Bones", disc.KindSkeleton, tt.skelX, 0)
			discs := []*disc.Disc{wiz, orb, skel}

			wiz.Launch(rl.Vector3{X: 1})
			for frame := 0; frame < 300; frame++ {
				e.SimulateFrame(discs, tt.field)
				for _, d := range discs {
					if d.Attached() {
						continue
					}
					if !tt.field.Fits(d.Position, d.Radius-0.01) {
						t.Fatalf("frame %d: %s pushed out of the playable area to %v", frame, d.Name, d.Position)
					}
				}
			}

			hit := false
			for _, c := range rec.contacts {
				if c == [2]int{orb.ID, skel.ID} {
					hit = true
				}
			}
			if !hit {
				t.Error("The riding orb should meet the skeleton as an approaching contact")
			}
		})
	}
}

func TestSimulationIsDeterministic(t *testing.T) {
	build := func() []*disc.Disc {
		ds := []*disc.Disc{
			disc.New(1, "A", disc.KindBarbarian, -5, 1),
			disc.New(2, "B", disc.KindSkeleton, 0, 0),
			disc.New(3, "C", disc.KindWarden, 4, -1),
		}
		ds[0].Launch(rl.Vector3{X: 1.2, Z: -0.1})
		return ds
	}
	run := func() []rl.Vector3 {
		ds := build()
		e := newEngine(&recorder{})
		for i := 0; i < 200; i++ {
			e.SimulateFrame(ds, openField())
		}
		out := make([]rl.Vector3, len(ds))
		for i, d := range ds {
			out[i] = d.Position
		}
		return out
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("disc %d diverged: %v vs %v", i, first[i], second[i])
		}
	}
}
