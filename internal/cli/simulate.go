package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kdmsoft/nodegrid/pkg/scene"
	"github.com/kdmsoft/nodegrid/pkg/snap"
)

// simulateOpts holds the command-line flags for the simulate command.
type simulateOpts struct {
	output string // output file path; empty derives <scene>_result.json
}

// simulateCommand creates the simulate command. It replays a JSON move-event
// script through the membership resolver, event by event, exactly as a GUI
// host would commit the moves, then writes the resulting scene.
func (c *CLI) simulateCommand() *cobra.Command {
	var opts simulateOpts

	cmd := &cobra.Command{
		Use:   "simulate [scene] [events]",
		Short: "Replay a move-event script against a scene",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSimulate(args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <scene>_result.json)")

	return cmd
}

func (c *CLI) runSimulate(sceneFile, eventsFile string, opts *simulateOpts) error {
	prog := newProgress(c.Logger)

	sc, err := scene.ReadFile(sceneFile)
	if err != nil {
		return err
	}
	events, err := snap.ReadEventsFile(eventsFile)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded script", "nodes", sc.NodeCount(), "events", len(events))
	c.Config.Layout.Apply(sc)

	engine := snap.New(c.Logger)
	engine.Apply(sc, events)

	output := opts.output
	if output == "" {
		base := strings.TrimSuffix(sceneFile, filepath.Ext(sceneFile))
		output = base + "_result.json"
	}
	if err := scene.WriteFile(sc, output); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Applied %d events", len(events)))

	printSuccess("Simulation complete")
	printStats(sc.NodeCount(), len(sc.Containers()))
	printFile(output)
	for _, s := range engine.SummarizeAll(sc) {
		printDetail("%s", s)
	}
	return nil
}
