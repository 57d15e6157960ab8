package ui

import (
	"fmt"

	"hyperlife/internal/core"
)

// StatusLines formats Stats for the HUD.
func StatusLines(s core.Stats, paused bool) []string {
	state := "running"
	if paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("gen %d  alive %d  (%s)", s.Generation, s.Alive, state),
		fmt.Sprintf("z %d  w %d  edge %d", s.SliceZ, s.SliceW, s.Edge),
	}
}
