//go:build ebiten

package ui

import (
	"image/color"

	"hyperlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudMargin = 4

// HUD draws a status line with the generation, live count and displayed plane.
type HUD struct {
	sim   core.Sim
	title string
	back  *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, title: sim.Name()}
	h.back = ebiten.NewImage(1, 1)
	h.back.Fill(color.RGBA{A: 0xb0})
	return h
}

// Draw renders the status lines in the top-left corner of screen.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil {
		return
	}
	lines := []string{h.title}
	if provider, ok := h.sim.(core.StatsProvider); ok {
		lines = append(lines, StatusLines(provider.Stats(), paused)...)
	}

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*7)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*hudMargin), float64(len(lines)*lineHeight+2*hudMargin))
	screen.DrawImage(h.back, op)

	for i, l := range lines {
		text.Draw(screen, l, face, hudMargin, hudMargin+(i+1)*lineHeight-3, color.White)
	}
}
