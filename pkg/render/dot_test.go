package render

import (
	"strings"
	"testing"

	"github.com/kdmsoft/nodegrid/pkg/scene"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.New()
	grid := &scene.Node{
		ID: "grid", Type: scene.TypeGrid, Label: "Shots",
		X: 0, Y: 0, Width: 300, Height: 200,
		Grid: &scene.Container{
			Members:    []string{"a"},
			SnapRegion: scene.Rect{W: 300, H: 40},
			MarginX:    20, SpacingY: 10, MinHeight: 120,
		},
	}
	a := &scene.Node{ID: "a", Type: scene.TypeBasic, Label: "clip", X: 20, Y: 50, Width: 260, Height: 60}
	b := &scene.Node{ID: "b", Type: scene.TypeBasic, X: 400, Y: 100, Width: 160, Height: 60}
	for _, n := range []*scene.Node{grid, a, b} {
		if err := s.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s) = %v, want nil", n.ID, err)
		}
	}
	if err := s.AddEdge(scene.Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge() = %v, want nil", err)
	}
	return s
}

func TestToDOTPinsPositions(t *testing.T) {
	dot := ToDOT(testScene(t), Options{})

	if !strings.Contains(dot, "layout=neato") {
		t.Error("DOT should select the neato engine")
	}
	// Node b: center (480, 130), y flipped.
	if !strings.Contains(dot, `pos="480.00,-130.00!"`) {
		t.Errorf("DOT missing pinned position for node b:\n%s", dot)
	}
}

func TestToDOTContainerStyling(t *testing.T) {
	dot := ToDOT(testScene(t), Options{})

	gridLine := ""
	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, `"grid"`) && strings.Contains(line, "[") {
			gridLine = line
			break
		}
	}
	if gridLine == "" {
		t.Fatalf("DOT missing container node:\n%s", dot)
	}
	if !strings.Contains(gridLine, "lightsteelblue") {
		t.Errorf("container line missing fill style: %s", gridLine)
	}
	if !strings.Contains(gridLine, `label="Shots"`) {
		t.Errorf("container line missing label: %s", gridLine)
	}
}

func TestToDOTContainersDrawFirst(t *testing.T) {
	dot := ToDOT(testScene(t), Options{})

	gridIdx := strings.Index(dot, `"grid"`)
	memberIdx := strings.Index(dot, `"a"`)
	if gridIdx < 0 || memberIdx < 0 {
		t.Fatalf("DOT missing nodes:\n%s", dot)
	}
	if gridIdx > memberIdx {
		t.Error("container should be emitted before its members")
	}
}

func TestToDOTEdges(t *testing.T) {
	dot := ToDOT(testScene(t), Options{})
	if !strings.Contains(dot, `"a" -> "b";`) {
		t.Errorf("DOT missing edge:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testScene(t), Options{Detailed: true})
	if !strings.Contains(dot, "members: 1") {
		t.Errorf("detailed DOT missing member count:\n%s", dot)
	}
	if !strings.Contains(dot, "at (400, 100)") {
		t.Errorf("detailed DOT missing position line:\n%s", dot)
	}
}
