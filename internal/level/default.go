package level

import (
	_ "embed"
)

//go:embed levels/arena.json
var arenaJSON []byte

// Default returns the built-in arena.
func Default() *Level {
	lv, err := Parse(arenaJSON)
	if err != nil {
		panic("level: built-in arena is invalid: " + err.Error())
	}
	return lv
}
