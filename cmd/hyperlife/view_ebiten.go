//go:build ebiten

package main

import (
	"errors"

	"hyperlife/internal/app"
	"hyperlife/internal/config"
	"hyperlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func runViewer(sim core.Sim, vc config.ViewerConfig) error {
	game := app.New(sim, vc.Scale, vc.Seed, vc.GenerationsPerSecond)
	size := sim.Size()

	ebiten.SetWindowTitle("hyperlife — " + sim.Name())
	ebiten.SetTPS(vc.TPS)
	ebiten.SetWindowSize(size.W*vc.Scale, size.H*vc.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
