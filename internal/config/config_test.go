package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kdmsoft/nodegrid/pkg/scene"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load(missing) = %v, want nil", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[layout]
margin_x = 30

[serve]
addr = ":9000"
redis_addr = "localhost:6379"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if cfg.Layout.MarginX != 30 {
		t.Errorf("Layout.MarginX = %v, want 30", cfg.Layout.MarginX)
	}
	if cfg.Serve.Addr != ":9000" {
		t.Errorf("Serve.Addr = %q, want :9000", cfg.Serve.Addr)
	}
	if cfg.Serve.RedisAddr != "localhost:6379" {
		t.Errorf("Serve.RedisAddr = %q, want localhost:6379", cfg.Serve.RedisAddr)
	}
	// Untouched sections keep their defaults.
	if cfg.Layout.SpacingY != Default().Layout.SpacingY {
		t.Errorf("Layout.SpacingY = %v, want default %v", cfg.Layout.SpacingY, Default().Layout.SpacingY)
	}
	if cfg.Render.Format != "svg" {
		t.Errorf("Render.Format = %q, want svg", cfg.Render.Format)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[layout\nmargin_x ="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(malformed) = nil, want error")
	}
}

func TestLayoutApply(t *testing.T) {
	s := scene.New()
	bare := &scene.Node{ID: "bare", Type: scene.TypeGrid, Height: 200, Grid: &scene.Container{}}
	explicit := &scene.Node{
		ID: "explicit", Type: scene.TypeGrid, Width: 500, Height: 200,
		Grid: &scene.Container{
			SnapRegion: scene.Rect{W: 500, H: 30},
			MarginX:    5, SpacingY: 2, MinHeight: 80,
		},
	}
	for _, n := range []*scene.Node{bare, explicit} {
		if err := s.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s) = %v, want nil", n.ID, err)
		}
	}

	l := Default().Layout
	l.Apply(s)

	if bare.Width != l.GridWidth {
		t.Errorf("bare.Width = %v, want default grid width %v", bare.Width, l.GridWidth)
	}
	if bare.Grid.SnapRegion.W != bare.Width {
		t.Errorf("SnapRegion.W = %v, want container width %v", bare.Grid.SnapRegion.W, bare.Width)
	}
	if bare.Grid.SnapRegion.H != l.SnapHeight {
		t.Errorf("SnapRegion.H = %v, want %v", bare.Grid.SnapRegion.H, l.SnapHeight)
	}
	if bare.Grid.MarginX != l.MarginX || bare.Grid.SpacingY != l.SpacingY || bare.Grid.MinHeight != l.MinHeight {
		t.Errorf("bare params = (%v, %v, %v), want (%v, %v, %v)",
			bare.Grid.MarginX, bare.Grid.SpacingY, bare.Grid.MinHeight,
			l.MarginX, l.SpacingY, l.MinHeight)
	}

	// Explicit values survive untouched.
	if explicit.Grid.SnapRegion.H != 30 || explicit.Grid.MarginX != 5 ||
		explicit.Grid.SpacingY != 2 || explicit.Grid.MinHeight != 80 {
		t.Errorf("explicit params changed: %+v", explicit.Grid)
	}

	// A nil scene is a no-op.
	l.Apply(nil)
}

func TestLayoutContainer(t *testing.T) {
	c := Default().Layout.Container(400)
	if c.SnapRegion.W != 400 {
		t.Errorf("SnapRegion.W = %v, want 400", c.SnapRegion.W)
	}
	if c.SnapRegion.H != Default().Layout.SnapHeight {
		t.Errorf("SnapRegion.H = %v, want %v", c.SnapRegion.H, Default().Layout.SnapHeight)
	}
	if c.MarginX != Default().Layout.MarginX {
		t.Errorf("MarginX = %v, want %v", c.MarginX, Default().Layout.MarginX)
	}
}
