package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"toroid/internal/sweep"
)

// SweepOptions holds flags for the sweep command.
type SweepOptions struct {
	*RootOptions
	Count       int
	Generations int
	Workers     int
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SweepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run many random soups in parallel and tabulate them",
		Long: `Run one random soup per seed, starting at --seed, and report the
initial, final and peak population of each and when it stopped changing.

Example:
  toroid sweep --count 64 --density 0.35 --generations 2000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.Config
			density := cfg.Density
			if density == 0 {
				density = 0.3
			}
			start := time.Now()
			results, err := sweep.Run(cmd.Context(), sweep.Options{
				Width:       cfg.Width,
				Height:      cfg.Height,
				Generations: opts.Generations,
				Density:     density,
				Workers:     opts.Workers,
			}, sweep.Seeds(cfg.Seed, opts.Count))
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}
			slog.Info("sweep finished", "soups", len(results), "elapsed", time.Since(start))
			return sweep.WriteTable(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", 16, "number of soups")
	cmd.Flags().IntVarP(&opts.Generations, "generations", "n", 1000, "generation limit per soup")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "concurrent soups (0 uses one per CPU)")

	return cmd
}
