//go:build !ebiten

package main

import (
	"errors"

	"hyperlife/internal/config"
	"hyperlife/internal/core"
)

var errNoViewer = errors.New("the viewer requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/hyperlife`")

func runViewer(core.Sim, config.ViewerConfig) error {
	return errNoViewer
}
