package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestBoxResolveFromOutside(t *testing.T) {
	box := NewBox(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	normal, depth, ok := box.Resolve(rl.Vector3{X: 1.5}, 1)
	if !ok {
		t.Fatal("Expected overlap")
	}
	if normal != (rl.Vector3{X: 1}) {
		t.Errorf("Expected +X normal, got %v", normal)
	}
	if math.Abs(float64(depth-0.5)) > 1e-5 {
		t.Errorf("Expected depth 0.5, got %v", depth)
	}

	if _, _, ok := box.Resolve(rl.Vector3{X: 3}, 1); ok {
		t.Error("Circle clear of the box should not overlap")
	}
}

func TestBoxResolveFromInside(t *testing.T) {
	box := NewBox(rl.Vector3{}, rl.Vector3{X: 4, Y: 2, Z: 4})

	// Closer to the -Z face than any other
	normal, depth, ok := box.Resolve(rl.Vector3{X: 0.2, Z: -1.5}, 0.5)
	if !ok {
		t.Fatal("Expected overlap")
	}
	if normal != (rl.Vector3{Z: -1}) {
		t.Errorf("Expected -Z normal, got %v", normal)
	}
	if math.Abs(float64(depth-1.0)) > 1e-5 {
		t.Errorf("Expected depth 1.0, got %v", depth)
	}
}

func TestFieldFits(t *testing.T) {
	f := Field{
		Width: 10, Depth: 10,
		Obstacles: []Box{NewBox(rl.Vector3{X: 3}, rl.Vector3{X: 1, Y: 1, Z: 1})},
	}

	tests := []struct {
		name string
		p    rl.Vector3
		r    float32
		want bool
	}{
		{"centre", rl.Vector3{}, 1, true},
		{"past wall", rl.Vector3{X: -4.5}, 1, false},
		{"touching obstacle", rl.Vector3{X: 2}, 1, false},
		{"beside obstacle", rl.Vector3{X: 3, Z: 3}, 1, true},
	}
	for _, tt := range tests {
		if got := f.Fits(tt.p, tt.r); got != tt.want {
			t.Errorf("%s: Fits = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSegmentClear(t *testing.T) {
	f := Field{
		Width: 20, Depth: 20,
		Obstacles: []Box{NewBox(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})},
	}

	if f.SegmentClear(rl.Vector3{X: -5}, rl.Vector3{X: 5}, 10) {
		t.Error("Segment through the block should be obstructed")
	}
	if !f.SegmentClear(rl.Vector3{X: -5, Z: 3}, rl.Vector3{X: 5, Z: 3}, 10) {
		t.Error("Segment beside the block should be clear")
	}
}

func TestRaycastHitsNearestObstacle(t *testing.T) {
	f := Field{
		Width: 40, Depth: 40,
		Obstacles: []Box{
			NewBox(rl.Vector3{X: 10}, rl.Vector3{X: 2, Y: 2, Z: 2}),
			NewBox(rl.Vector3{X: 5}, rl.Vector3{X: 2, Y: 2, Z: 2}),
		},
	}

	hit, ok := f.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 100)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.Obstacle != 1 {
		t.Errorf("Expected obstacle 1, got %d", hit.Obstacle)
	}
	if math.Abs(float64(hit.Distance-4)) > 1e-4 {
		t.Errorf("Expected distance 4, got %v", hit.Distance)
	}

	hit, ok = f.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 100)
	if !ok || hit.Obstacle != -1 || math.Abs(float64(hit.Distance-20)) > 1e-4 {
		t.Errorf("Expected the -Z wall at 20, got %+v ok=%v", hit, ok)
	}
}

func TestRotateY(t *testing.T) {
	v := RotateY(rl.Vector3{X: 1}, math.Pi/2)
	if math.Abs(float64(v.X)) > 1e-6 || math.Abs(float64(v.Z-1)) > 1e-6 {
		t.Errorf("Quarter turn of +X should be +Z, got %v", v)
	}
}
