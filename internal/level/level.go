// Package level provides the playing field and starting roster of a match.
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"discarena/internal/disc"
	"discarena/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type Level struct {
	Name      string        `json:"name"`
	Width     float32       `json:"width"`
	Depth     float32       `json:"depth"`
	Obstacles []ObstacleDef `json:"obstacles,omitempty"`
	Discs     []DiscDef     `json:"discs"`
}

type ObstacleDef struct {
	Name     string     `json:"name,omitempty"`
	Position [3]float32 `json:"position"`
	Size     [3]float32 `json:"size"`
	Color    string     `json:"color,omitempty"`
}

// DiscDef places one disc. Optional fields override the kind preset.
type DiscDef struct {
	Kind     string     `json:"kind"`
	Name     string     `json:"name,omitempty"`
	Position [2]float32 `json:"position"` // x, z
	Type     string     `json:"type,omitempty"`
	HP       *int       `json:"hp,omitempty"`
	Attack   *int       `json:"attack,omitempty"`
	Skill    *int       `json:"skill,omitempty"`
}

var ErrInvalid = errors.New("invalid level")

// --- Loading ---

func Parse(data []byte) (*Level, error) {
	var lv Level
	if err := json.Unmarshal(data, &lv); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	return &lv, nil
}

func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lv, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lv, nil
}

func (lv *Level) Save(path string) error {
	data, err := json.MarshalIndent(lv, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal level: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write level: %w", err)
	}
	return nil
}

// Validate checks the level can be played: a positive field, known kinds, and
// every disc inside the walls.
func (lv *Level) Validate() error {
	if lv.Width <= 0 || lv.Depth <= 0 {
		return fmt.Errorf("%w: field must have positive width and depth", ErrInvalid)
	}
	field := lv.Field()
	for i, d := range lv.Discs {
		kind, ok := disc.ParseKind(d.Kind)
		if !ok {
			return fmt.Errorf("%w: disc %d: unknown kind %q", ErrInvalid, i, d.Kind)
		}
		if kind == disc.KindOrb {
			return fmt.Errorf("%w: disc %d: orbs are summoned, not placed", ErrInvalid, i)
		}
		if d.Type != "" {
			if _, ok := disc.ParseType(d.Type); !ok {
				return fmt.Errorf("%w: disc %d: unknown type %q", ErrInvalid, i, d.Type)
			}
		}
		pos := rl.Vector3{X: d.Position[0], Z: d.Position[1]}
		if !field.InBounds(pos, disc.Preset(kind).Radius) {
			return fmt.Errorf("%w: disc %d (%s) is outside the field", ErrInvalid, i, d.Kind)
		}
	}
	return nil
}

// Field builds the physics view of the level.
func (lv *Level) Field() physics.Field {
	f := physics.Field{Width: lv.Width, Depth: lv.Depth}
	for _, o := range lv.Obstacles {
		f.Obstacles = append(f.Obstacles, physics.NewBox(
			rl.Vector3{X: o.Position[0], Y: o.Position[1], Z: o.Position[2]},
			rl.Vector3{X: o.Size[0], Y: o.Size[1], Z: o.Size[2]},
		))
	}
	return f
}

// Spawn creates the starting roster with IDs from 1 in file order. Names are
// made unique by suffixing a counter.
func (lv *Level) Spawn() []*disc.Disc {
	roster := make([]*disc.Disc, 0, len(lv.Discs))
	used := make(map[string]bool, len(lv.Discs))

	for i, def := range lv.Discs {
		kind, ok := disc.ParseKind(def.Kind)
		if !ok {
			continue
		}
		name := def.Name
		if name == "" {
			name = kind.String()
		}
		name = uniqueName(name, used)

		d := disc.New(i+1, name, kind, def.Position[0], def.Position[1])
		if t, ok := disc.ParseType(def.Type); ok {
			d.Type = t
		}
		if def.HP != nil && *def.HP > 0 {
			d.HP, d.MaxHP = *def.HP, *def.HP
		}
		if def.Attack != nil {
			d.Attack = *def.Attack
		}
		if def.Skill != nil {
			d.Skill = min(max(*def.Skill, 0), 100)
		}
		roster = append(roster, d)
	}
	return roster
}

func uniqueName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[candidate]; n++ {
		candidate = name + " " + strconv.Itoa(n)
	}
	used[candidate] = true
	return candidate
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"LightGray": rl.LightGray,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"DarkBlue":  rl.DarkBlue,
	"DarkGreen": rl.DarkGreen,
}

// ObstacleColor returns the draw color of obstacle i.
func (lv *Level) ObstacleColor(i int) rl.Color {
	if i >= 0 && i < len(lv.Obstacles) {
		if c, ok := colorByName[lv.Obstacles[i].Color]; ok {
			return c
		}
	}
	return rl.Gray
}
