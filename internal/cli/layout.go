package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kdmsoft/nodegrid/pkg/scene"
	"github.com/kdmsoft/nodegrid/pkg/snap"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	output    string // output file path; empty writes back to the input
	summaries bool   // print a membership summary per container
}

// layoutCommand creates the layout command. It runs the compositor over
// every container in a scene file: membership lists are pruned of stale
// entries, members are re-stacked, and container heights are recomputed.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "layout [scene]",
		Short: "Re-stack every container in a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().BoolVar(&opts.summaries, "summaries", true, "print a membership summary per container")

	return cmd
}

func (c *CLI) runLayout(input string, opts *layoutOpts) error {
	prog := newProgress(c.Logger)

	sc, err := scene.ReadFile(input)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded scene", "nodes", sc.NodeCount(), "edges", sc.EdgeCount())
	c.Config.Layout.Apply(sc)

	engine := snap.New(c.Logger)
	engine.LayoutAll(sc)

	output := opts.output
	if output == "" {
		output = input
	}
	if err := scene.WriteFile(sc, output); err != nil {
		return err
	}

	containers := sc.Containers()
	prog.done(fmt.Sprintf("Laid out %d containers", len(containers)))

	printSuccess("Layout complete")
	printStats(sc.NodeCount(), len(containers))
	printFile(output)

	if opts.summaries {
		for _, s := range engine.SummarizeAll(sc) {
			printDetail("%s", s)
		}
	}
	return nil
}
