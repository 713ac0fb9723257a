package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kdmsoft/nodegrid/pkg/cache"
	"github.com/kdmsoft/nodegrid/pkg/render"
	"github.com/kdmsoft/nodegrid/pkg/scene"
)

// Supported output formats.
const (
	formatSVG = "svg"
	formatPNG = "png"
	formatDOT = "dot"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; empty derives <scene>.<format>
	format   string // output format: svg, png, dot
	detailed bool   // include geometry and member counts in labels
	noCache  bool   // bypass the render cache
}

// renderCommand creates the render command for generating scene previews.
// Scenes render through Graphviz with pinned positions, so the preview shows
// the exact geometry the compositor produced.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: ""}

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a scene preview via Graphviz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format == "" {
				opts.format = c.Config.Render.Format
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: derived from input)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include geometry and member counts in labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPNG: true, formatDOT: true}

// validateFormat checks that the requested format is supported.
func validateFormat(f string) error {
	if !validFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'dot')", f)
	}
	return nil
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	logger.Infof("Rendering %s", input)

	sc, err := scene.ReadFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded scene: %d nodes, %d containers", sc.NodeCount(), len(sc.Containers()))

	dot := render.ToDOT(sc, render.Options{Detailed: opts.detailed})

	data, err := c.renderCached(cmd, dot, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}

	printSuccess("Generated %s", output)
	return nil
}

// renderCached renders the DOT graph to the requested format, reusing a
// cached result when the rendered content is unchanged. DOT output is
// returned directly; it is already the cache key's content.
func (c *CLI) renderCached(cmd *cobra.Command, dot string, opts *renderOpts) ([]byte, error) {
	if opts.format == formatDOT {
		return []byte(dot), nil
	}
	logger := loggerFromContext(cmd.Context())

	byteCache, err := newCache(opts.noCache)
	if err != nil {
		return nil, err
	}
	defer byteCache.Close()

	key := cache.RenderKey(cache.Hash([]byte(dot)), opts.format)
	if data, ok, err := byteCache.Get(cmd.Context(), key); err == nil && ok {
		logger.Debug("render cache hit", "format", opts.format)
		return data, nil
	}

	var data []byte
	switch opts.format {
	case formatSVG:
		data, err = render.RenderSVG(cmd.Context(), dot)
	case formatPNG:
		data, err = render.RenderPNG(cmd.Context(), dot)
	}
	if err != nil {
		return nil, err
	}

	if err := byteCache.Set(cmd.Context(), key, data, 0); err != nil {
		logger.Debug("render cache write failed", "err", err)
	}
	return data, nil
}
