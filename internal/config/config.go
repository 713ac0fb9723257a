// Package config loads TOML configuration for engine defaults and the
// serve/render surfaces. A missing config file yields defaults; a malformed
// one is an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kdmsoft/nodegrid/pkg/scene"
)

// Config is the root configuration.
type Config struct {
	Layout Layout `toml:"layout"`
	Serve  Serve  `toml:"serve"`
	Render Render `toml:"render"`
}

// Layout carries container geometry defaults. They seed new container
// nodes and fill fields a loaded scene file leaves unset; see Apply.
type Layout struct {
	MarginX    float64 `toml:"margin_x"`
	SpacingY   float64 `toml:"spacing_y"`
	MinHeight  float64 `toml:"min_height"`
	SnapHeight float64 `toml:"snap_height"`
	GridWidth  float64 `toml:"grid_width"`
}

// Serve configures the HTTP server and its optional backends.
type Serve struct {
	Addr string `toml:"addr"`

	// RedisAddr enables the Redis summary cache when non-empty.
	RedisAddr string `toml:"redis_addr"`

	// MongoURI enables the Mongo scene store when non-empty.
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// Render configures preview rendering.
type Render struct {
	Format string `toml:"format"`
}

// Default returns the built-in configuration. Geometry defaults come from
// the scene package so the registry and the config file can't drift apart.
func Default() Config {
	return Config{
		Layout: Layout{
			MarginX:    scene.DefaultMarginX,
			SpacingY:   scene.DefaultSpacingY,
			MinHeight:  scene.DefaultMinHeight,
			SnapHeight: scene.DefaultSnapHeight,
			GridWidth:  scene.DefaultGridWidth,
		},
		Serve: Serve{
			Addr:          ":8080",
			MongoDatabase: "nodegrid",
		},
		Render: Render{
			Format: "svg",
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.config/nodegrid/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "nodegrid", "config.toml"), nil
}

// Load reads a TOML config file, layering it over the defaults.
// A missing file returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Container builds a container payload from the layout defaults, sized for
// the given width.
func (l Layout) Container(width float64) *scene.Container {
	return &scene.Container{
		SnapRegion: scene.Rect{W: width, H: l.SnapHeight},
		MarginX:    l.MarginX,
		SpacingY:   l.SpacingY,
		MinHeight:  l.MinHeight,
	}
}

// Apply fills in layout parameters a scene file left unset. Zero-valued
// container fields take the configured defaults; explicit values are kept.
// A container with no width at all is sized to the default grid width.
func (l Layout) Apply(sc *scene.Scene) {
	if sc == nil {
		return
	}
	for _, n := range sc.Containers() {
		if n.Width == 0 {
			n.Width = l.GridWidth
		}
		g := n.Grid
		d := l.Container(n.Width)
		if g.SnapRegion.W == 0 {
			g.SnapRegion.W = d.SnapRegion.W
		}
		if g.SnapRegion.H == 0 {
			g.SnapRegion.H = d.SnapRegion.H
		}
		if g.MarginX == 0 {
			g.MarginX = d.MarginX
		}
		if g.SpacingY == 0 {
			g.SpacingY = d.SpacingY
		}
		if g.MinHeight == 0 {
			g.MinHeight = d.MinHeight
		}
	}
}
