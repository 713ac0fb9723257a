package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/kdmsoft/nodegrid/pkg/scene"
)

func writeTestScene(t *testing.T, dir string) string {
	t.Helper()

	s := scene.New()
	grid := &scene.Node{
		ID: "grid", Type: scene.TypeGrid, Label: "Shots",
		X: 0, Y: 0, Width: 300, Height: 200,
		Grid: &scene.Container{
			Members:    []string{"clip", "ghost"},
			SnapRegion: scene.Rect{W: 300, H: 40},
			MarginX:    20, SpacingY: 10, MinHeight: 120,
		},
	}
	clip := &scene.Node{ID: "clip", Type: scene.TypeBasic, X: 10, Y: 10, Width: 160, Height: 60}
	for _, n := range []*scene.Node{grid, clip} {
		if err := s.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s) = %v, want nil", n.ID, err)
		}
	}

	path := filepath.Join(dir, "scene.json")
	if err := scene.WriteFile(s, path); err != nil {
		t.Fatalf("WriteFile() = %v, want nil", err)
	}
	return path
}

func TestRunLayout(t *testing.T) {
	dir := t.TempDir()
	input := writeTestScene(t, dir)
	output := filepath.Join(dir, "out.json")

	c := New(io.Discard, LogInfo)
	if err := c.runLayout(input, &layoutOpts{output: output}); err != nil {
		t.Fatalf("runLayout() = %v, want nil", err)
	}

	got, err := scene.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() = %v, want nil", err)
	}

	clip, ok := got.Node("clip")
	if !ok {
		t.Fatal("clip missing after layout")
	}
	if clip.X != 20 || clip.Y != 50 {
		t.Errorf("clip position = (%v, %v), want (20, 50)", clip.X, clip.Y)
	}
	if clip.Width != 260 {
		t.Errorf("clip width = %v, want 260", clip.Width)
	}

	grid, _ := got.Node("grid")
	if grid.Grid.Has("ghost") {
		t.Error("stale member should be pruned by layout")
	}
	if grid.Height != 120 {
		t.Errorf("grid height = %v, want min height 120", grid.Height)
	}
}

func TestRunLayoutAppliesConfigDefaults(t *testing.T) {
	dir := t.TempDir()

	// The grid declares a member but no layout parameters; the config
	// defaults fill them before the layout pass.
	s := scene.New()
	grid := &scene.Node{
		ID: "grid", Type: scene.TypeGrid,
		X: 0, Y: 0, Width: 300, Height: 50,
		Grid: &scene.Container{Members: []string{"clip"}},
	}
	clip := &scene.Node{ID: "clip", Type: scene.TypeBasic, X: 10, Y: 10, Width: 160, Height: 60}
	for _, n := range []*scene.Node{grid, clip} {
		if err := s.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s) = %v, want nil", n.ID, err)
		}
	}
	input := filepath.Join(dir, "scene.json")
	if err := scene.WriteFile(s, input); err != nil {
		t.Fatalf("WriteFile() = %v, want nil", err)
	}

	output := filepath.Join(dir, "out.json")
	c := New(io.Discard, LogInfo)
	if err := c.runLayout(input, &layoutOpts{output: output}); err != nil {
		t.Fatalf("runLayout() = %v, want nil", err)
	}

	got, err := scene.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() = %v, want nil", err)
	}
	g, _ := got.Node("grid")
	if g.Grid.SnapRegion.H != scene.DefaultSnapHeight {
		t.Errorf("SnapRegion.H = %v, want default %v", g.Grid.SnapRegion.H, scene.DefaultSnapHeight)
	}
	// Member stacked below a default-height band with default margins.
	m, _ := got.Node("clip")
	if m.X != 20 || m.Y != 58 {
		t.Errorf("clip position = (%v, %v), want (20, 58)", m.X, m.Y)
	}
	if m.Width != 260 {
		t.Errorf("clip width = %v, want 260", m.Width)
	}
	if g.Height != 128 {
		t.Errorf("grid height = %v, want 128", g.Height)
	}
}

func TestRunLayoutOverwritesInput(t *testing.T) {
	dir := t.TempDir()
	input := writeTestScene(t, dir)

	c := New(io.Discard, LogInfo)
	if err := c.runLayout(input, &layoutOpts{}); err != nil {
		t.Fatalf("runLayout() = %v, want nil", err)
	}

	got, err := scene.ReadFile(input)
	if err != nil {
		t.Fatalf("ReadFile() = %v, want nil", err)
	}
	clip, _ := got.Node("clip")
	if clip.Y != 50 {
		t.Errorf("clip.Y = %v, want 50 after in-place layout", clip.Y)
	}
}

func TestRunSimulate(t *testing.T) {
	dir := t.TempDir()
	input := writeTestScene(t, dir)

	events := filepath.Join(dir, "events.json")
	script := `[
		{"node_id": "clip", "x": 400, "y": 400},
		{"node_id": "clip", "x": 10, "y": 0},
		{"node_id": "missing", "x": 0, "y": 0}
	]`
	if err := os.WriteFile(events, []byte(script), 0644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "result.json")
	c := New(io.Discard, LogInfo)
	if err := c.runSimulate(input, events, &simulateOpts{output: output}); err != nil {
		t.Fatalf("runSimulate() = %v, want nil", err)
	}

	got, err := scene.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() = %v, want nil", err)
	}
	grid, _ := got.Node("grid")
	if !grid.Grid.Has("clip") {
		t.Error("clip should be re-adopted by the final event")
	}
	clip, _ := got.Node("clip")
	if clip.X != 20 || clip.Y != 50 {
		t.Errorf("clip position = (%v, %v), want (20, 50)", clip.X, clip.Y)
	}
}

func TestRunRenderDOT(t *testing.T) {
	dir := t.TempDir()
	input := writeTestScene(t, dir)
	output := filepath.Join(dir, "scene.dot")

	c := New(io.Discard, LogInfo)
	cmd := c.renderCommand()
	cmd.SetArgs([]string{input, "-f", "dot", "-o", output})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("render = %v, want nil", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() = %v, want nil", err)
	}
	if len(data) == 0 {
		t.Error("DOT output is empty")
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"svg", "png", "dot"} {
		if err := validateFormat(f); err != nil {
			t.Errorf("validateFormat(%q) = %v, want nil", f, err)
		}
	}
	if err := validateFormat("pdf"); err == nil {
		t.Error("validateFormat(pdf) = nil, want error")
	}
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{"layout": false, "simulate": false, "render": false, "serve": false, "inspect": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}

	for _, flag := range []string{"config", "verbose"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("root command missing persistent flag %q", flag)
		}
	}
}
