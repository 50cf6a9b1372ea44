package cli

import (
	"github.com/spf13/cobra"

	"toroid/internal/app"
	"toroid/internal/tui"
)

// NewTUICommand creates the tui command.
func NewTUICommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run in the terminal",
		Long: `Run the simulation in the terminal, two columns per cell.

Keys: space run/pause, n step, r clear, g population chart, q quit.
Left mouse button draws live cells, right button erases.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
}

func runTUI(opts *RootOptions) error {
	cfg := opts.Config
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}
	g, err := newGrid(cfg)
	if err != nil {
		return err
	}
	return tui.Run(g, tui.Options{FPS: cfg.FPS, TPS: cfg.TPS, Paused: cfg.Paused, Palette: palette})
}

// NewWindowCommand creates the window command.
func NewWindowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Run in a resizable window",
		Long: `Run the simulation in a window. The grid is resized to fill the window.

Keys: space run/pause, n step, r clear, f overlay, q or escape quit.
Left mouse button draws live cells, right button erases.

Requires a binary built with -tags ebiten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGrid(opts.Config)
			if err != nil {
				return err
			}
			return app.Run(g, opts.Config)
		},
	}
}
