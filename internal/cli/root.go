// Package cli wires the toroid commands together.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"toroid/internal/config"
	"toroid/pkg/patterns"
	"toroid/pkg/sims/life"
)

// RootOptions holds the settings shared by every command.
type RootOptions struct {
	ConfigPath string
	LogLevel   string

	// Config starts as the defaults with flag values bound to it and is
	// replaced by the loaded file, flags applied on top, before a command
	// runs.
	Config *config.Config
}

// NewRootCommand creates the root command. Without a subcommand it starts
// the terminal front end.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Config: config.Default()}

	cmd := &cobra.Command{
		Use:   "toroid",
		Short: "Conway's Game of Life on a torus",
		Long: `toroid runs Conway's Game of Life on a wrap-around grid.

Paused grids show a preview of the next generation: cells about to be born
and cells about to die are drawn in their own colors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(cmd.ErrOrStderr(), opts.LogLevel); err != nil {
				return err
			}
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	opts.Config.Bind(cmd.PersistentFlags())

	cmd.AddCommand(NewTUICommand(opts))
	cmd.AddCommand(NewWindowCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewSweepCommand(opts))
	cmd.AddCommand(NewPatternsCommand(opts))

	return cmd
}

func (o *RootOptions) load(cmd *cobra.Command) error {
	if o.ConfigPath != "" {
		cfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return err
		}
		if err := cfg.ApplyChanged(cmd.Flags()); err != nil {
			return err
		}
		o.Config = cfg
		slog.Debug("config loaded", "path", o.ConfigPath)
	}
	return o.Config.Validate()
}

func setupLogging(w io.Writer, level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})))
	return nil
}

// newGrid builds the starting grid from cfg: an optional random soup with
// an optional pattern stamped at the center.
func newGrid(cfg *config.Config) (*life.Grid, error) {
	g, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Density > 0 {
		g.Randomize(cfg.Seed, cfg.Density)
	}
	if cfg.Pattern != "" {
		p, ok := patterns.Lookup(cfg.Pattern)
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q (see 'toroid patterns')", cfg.Pattern)
		}
		if err := patterns.StampCentered(g, p); err != nil {
			return nil, err
		}
	}
	slog.Debug("grid ready", "width", cfg.Width, "height", cfg.Height,
		"population", g.Population(), "pattern", cfg.Pattern)
	return g, nil
}
