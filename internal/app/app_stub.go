//go:build !ebiten

package app

import (
	"errors"

	"toroid/internal/config"
	"toroid/pkg/sims/life"
)

// ErrNoWindow is returned by Run in builds without the ebiten tag.
var ErrNoWindow = errors.New("the window front end requires building with -tags ebiten")

// Run reports that the window front end is unavailable.
func Run(*life.Grid, *config.Config) error {
	return ErrNoWindow
}
