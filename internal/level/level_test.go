package level

import (
	"errors"
	"path/filepath"
	"testing"

	"discarena/internal/disc"
)

func TestDefaultArena(t *testing.T) {
	lv := Default()
	roster := lv.Spawn()
	if len(roster) != 5 {
		t.Fatalf("Expected 5 discs, got %d", len(roster))
	}

	players, npcs := 0, 0
	for i, d := range roster {
		if d.ID != i+1 {
			t.Errorf("Expected ID %d, got %d", i+1, d.ID)
		}
		if d.Type == disc.TypePlayer {
			players++
		} else {
			npcs++
		}
	}
	if players != 2 || npcs != 3 {
		t.Errorf("Expected 2 players and 3 NPCs, got %d and %d", players, npcs)
	}

	field := lv.Field()
	if len(field.Obstacles) != 3 {
		t.Errorf("Expected 3 obstacles, got %d", len(field.Obstacles))
	}
	for _, d := range roster {
		if !field.Fits(d.Position, d.Radius) {
			t.Errorf("%s starts inside a wall or obstacle", d.Name)
		}
	}
}

func TestSpawnOverridesAndUniqueNames(t *testing.T) {
	hp, skill := 7, 150
	lv := &Level{
		Width: 20, Depth: 20,
		Discs: []DiscDef{
			{Kind: "skeleton", Position: [2]float32{1, 1}},
			{Kind: "Skeleton", Position: [2]float32{3, 3}, HP: &hp, Skill: &skill},
			{Kind: "Wizard", Type: "npc", Position: [2]float32{-3, -3}},
		},
	}

	roster := lv.Spawn()
	if roster[0].Name != "Skeleton" || roster[1].Name != "Skeleton 2" {
		t.Errorf("Expected unique names, got %q and %q", roster[0].Name, roster[1].Name)
	}
	if roster[1].HP != 7 || roster[1].MaxHP != 7 {
		t.Errorf("HP override not applied: %d/%d", roster[1].HP, roster[1].MaxHP)
	}
	if roster[1].Skill != 100 {
		t.Errorf("Skill should clamp to 100, got %d", roster[1].Skill)
	}
	if roster[2].Type != disc.TypeNPC {
		t.Error("Type override not applied")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"zero field", `{"width": 0, "depth": 10, "discs": []}`},
		{"unknown kind", `{"width": 10, "depth": 10, "discs": [{"kind": "Dragon", "position": [0, 0]}]}`},
		{"placed orb", `{"width": 10, "depth": 10, "discs": [{"kind": "Orb", "position": [0, 0]}]}`},
		{"outside", `{"width": 10, "depth": 10, "discs": [{"kind": "Warden", "position": [4, 0]}]}`},
		{"bad type", `{"width": 10, "depth": 10, "discs": [{"kind": "Warden", "type": "ally", "position": [0, 0]}]}`},
	}
	for _, tt := range tests {
		if _, err := Parse([]byte(tt.json)); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.json")
	if err := Default().Save(path); err != nil {
		t.Fatal(err)
	}
	lv, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if lv.Name != "Arena" || len(lv.Discs) != 5 {
		t.Errorf("Unexpected level after round trip: %s with %d discs", lv.Name, len(lv.Discs))
	}
}
