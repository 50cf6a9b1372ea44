package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"toroid/pkg/patterns"
)

// NewPatternsCommand creates the patterns command.
func NewPatternsCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the built-in patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSIZE\tCELLS\tDESCRIPTION")
			for _, name := range patterns.Names() {
				p, _ := patterns.Lookup(name)
				s := p.Size()
				fmt.Fprintf(tw, "%s\t%dx%d\t%d\t%s\n", p.Name, s.W, s.H, len(p.Cells()), p.Description)
			}
			return tw.Flush()
		},
	}
}
