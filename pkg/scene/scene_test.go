package scene

import (
	"errors"
	"testing"
)

func TestAddNode(t *testing.T) {
	s := New()

	if err := s.AddNode(&Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode(a) = %v, want nil", err)
	}
	if s.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", s.NodeCount())
	}

	if err := s.AddNode(&Node{ID: ""}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(empty) = %v, want ErrInvalidNodeID", err)
	}
	if err := s.AddNode(nil); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(nil) = %v, want ErrInvalidNodeID", err)
	}
	if err := s.AddNode(&Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(duplicate) = %v, want ErrDuplicateNodeID", err)
	}
}

func TestRemoveNodeDetachesEdges(t *testing.T) {
	s := New()
	s.AddNode(&Node{ID: "a"})
	s.AddNode(&Node{ID: "b"})
	s.AddNode(&Node{ID: "c"})
	s.AddEdge(Edge{From: "a", To: "b"})
	s.AddEdge(Edge{From: "b", To: "c"})

	s.RemoveNode("b")

	if s.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", s.NodeCount())
	}
	if s.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", s.EdgeCount())
	}

	// Unknown ID is a no-op, not a panic.
	s.RemoveNode("missing")
}

func TestAddEdge(t *testing.T) {
	s := New()
	s.AddNode(&Node{ID: "a"})
	s.AddNode(&Node{ID: "b"})

	if err := s.AddEdge(Edge{From: "x", To: "b"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge(unknown from) = %v, want ErrUnknownSourceNode", err)
	}
	if err := s.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge(unknown to) = %v, want ErrUnknownTargetNode", err)
	}

	if err := s.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge(a→b) = %v, want nil", err)
	}

	edges := s.Edges()
	if len(edges) != 1 {
		t.Fatalf("len(Edges()) = %d, want 1", len(edges))
	}
	if edges[0].FromPort != PortOut || edges[0].ToPort != PortIn {
		t.Errorf("default ports = %q→%q, want %q→%q", edges[0].FromPort, edges[0].ToPort, PortOut, PortIn)
	}
}

func TestRemoveEdge(t *testing.T) {
	s := New()
	s.AddNode(&Node{ID: "a"})
	s.AddNode(&Node{ID: "b"})
	s.AddEdge(Edge{From: "a", To: "b"})

	s.RemoveEdge("a", "b")
	if s.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", s.EdgeCount())
	}

	// Removing a missing edge is a no-op.
	s.RemoveEdge("a", "b")
}

func TestNodesSorted(t *testing.T) {
	s := New()
	s.AddNode(&Node{ID: "c"})
	s.AddNode(&Node{ID: "a"})
	s.AddNode(&Node{ID: "b"})

	nodes := s.Nodes()
	want := []string{"a", "b", "c"}
	for i, n := range nodes {
		if n.ID != want[i] {
			t.Errorf("Nodes()[%d].ID = %q, want %q", i, n.ID, want[i])
		}
	}
}

func TestContainers(t *testing.T) {
	s := New()
	s.AddNode(&Node{ID: "n1"})
	s.AddNode(&Node{ID: "g2", Grid: NewContainer(800)})
	s.AddNode(&Node{ID: "g1", Grid: NewContainer(800)})

	containers := s.Containers()
	if len(containers) != 2 {
		t.Fatalf("len(Containers()) = %d, want 2", len(containers))
	}
	if containers[0].ID != "g1" || containers[1].ID != "g2" {
		t.Errorf("Containers() order = [%s %s], want [g1 g2]", containers[0].ID, containers[1].ID)
	}
}

func TestNodeAccessors(t *testing.T) {
	n := &Node{ID: "a", X: 10, Y: 20, Width: 100, Height: 40}

	if got := n.Center(); got != (Point{X: 60, Y: 40}) {
		t.Errorf("Center() = %v, want {60 40}", got)
	}
	if got := n.Rect(); got != (Rect{X: 10, Y: 20, W: 100, H: 40}) {
		t.Errorf("Rect() = %v", got)
	}

	n.SetPos(5, 6)
	if n.X != 5 || n.Y != 6 {
		t.Errorf("SetPos: pos = (%v, %v), want (5, 6)", n.X, n.Y)
	}

	// Negative sizes are clamped, never inverted.
	n.SetSize(-10, 30)
	if n.Width != 0 || n.Height != 30 {
		t.Errorf("SetSize(-10, 30): size = (%v, %v), want (0, 30)", n.Width, n.Height)
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := (&Node{ID: "id-1", Label: "Render"}).DisplayLabel(); got != "Render" {
		t.Errorf("DisplayLabel() = %q, want Render", got)
	}
	if got := (&Node{ID: "id-1"}).DisplayLabel(); got != "id-1" {
		t.Errorf("DisplayLabel() = %q, want id-1", got)
	}
}

func TestContainerHas(t *testing.T) {
	c := &Container{Members: []string{"a", "b"}}
	if !c.Has("a") {
		t.Error("Has(a) = false, want true")
	}
	if c.Has("z") {
		t.Error("Has(z) = true, want false")
	}
}
