package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"toroid/internal/render"
	"toroid/pkg/sims/life"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Generations int
	Every       int
}

// NewRunCommand creates the headless run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance a grid without a display and print snapshots",
		Long: `Advance a grid headlessly and print text snapshots.

Each snapshot shows the committed generation together with the preview of
the next one: '.' dead, '+' about to be born, '-' about to die, 'O' alive.

Example:
  toroid run --pattern glider --width 8 --height 8 --generations 4 --every 1
  toroid run --density 0.3 --seed 7 --generations 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadless(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&opts.Generations, "generations", "n", 100, "generations to advance")
	cmd.Flags().IntVar(&opts.Every, "every", 0, "print a snapshot every N generations (0 prints only the first and last)")

	return cmd
}

func runHeadless(opts *RunOptions, out io.Writer) error {
	if opts.Generations < 0 || opts.Every < 0 {
		return fmt.Errorf("generations and every must not be negative")
	}
	g, err := newGrid(opts.Config)
	if err != nil {
		return err
	}
	g.Evolve()
	if err := snapshot(out, g); err != nil {
		return err
	}
	for i := 1; i <= opts.Generations; i++ {
		g.Step()
		last := i == opts.Generations
		if last || (opts.Every > 0 && i%opts.Every == 0) {
			if err := snapshot(out, g); err != nil {
				return err
			}
		}
	}
	slog.Debug("run finished", "generations", g.Generation(), "population", g.Population())
	_, err = fmt.Fprintf(out, "population %d\n", g.Population())
	return err
}

func snapshot(out io.Writer, g *life.Grid) error {
	_, err := fmt.Fprintf(out, "generation %d\n%s\n", g.Generation(), render.Text(g))
	return err
}
