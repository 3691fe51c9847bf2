package disc

import "strings"

// Kind identifies a disc variant. The set is closed; stats come from the preset table.
type Kind int

const (
	KindBarbarian Kind = iota // melee bruiser, earns rage on kills
	KindWizard                // caster, summons orbs
	KindSkeleton              // minion
	KindWarden                // tank
	KindOrb                   // ephemeral, owned by a wizard
)

var kindNames = map[Kind]string{
	KindBarbarian: "Barbarian",
	KindWizard:    "Wizard",
	KindSkeleton:  "Skeleton",
	KindWarden:    "Warden",
	KindOrb:       "Orb",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKind maps a kind name (case-insensitive) back to its tag.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}

// Type is the side a disc fights for.
type Type int

const (
	TypePlayer Type = iota
	TypeNPC
)

func (t Type) String() string {
	if t == TypeNPC {
		return "npc"
	}
	return "player"
}

// ParseType accepts "player" or "npc".
func ParseType(name string) (Type, bool) {
	switch strings.ToLower(name) {
	case "player":
		return TypePlayer, true
	case "npc":
		return TypeNPC, true
	}
	return 0, false
}

// Stats is the default stat block for a kind.
type Stats struct {
	Type   Type
	Radius float32
	Mass   float32
	Power  float32 // throw power multiplier
	HP     int
	Attack int
	Skill  int // 0-100, AI accuracy
}

var presets = map[Kind]Stats{
	KindBarbarian: {Type: TypePlayer, Radius: 1.0, Mass: 1.5, Power: 1.3, HP: 5, Attack: 1},
	KindWizard:    {Type: TypePlayer, Radius: 0.9, Mass: 1.0, Power: 1.0, HP: 3, Attack: 1},
	KindSkeleton:  {Type: TypeNPC, Radius: 0.8, Mass: 0.8, Power: 1.0, HP: 2, Attack: 1, Skill: 50},
	KindWarden:    {Type: TypeNPC, Radius: 2.0, Mass: 3.0, Power: 1.4, HP: 2, Attack: 1, Skill: 70},
	KindOrb:       {Type: TypePlayer, Radius: 0.4, Mass: 0.5, Power: 1.0, HP: 1, Attack: 1},
}

// Preset returns the default stats for k. Unknown kinds get the skeleton block.
func Preset(k Kind) Stats {
	if s, ok := presets[k]; ok {
		return s
	}
	return presets[KindSkeleton]
}
