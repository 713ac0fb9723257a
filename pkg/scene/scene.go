package scene

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrInvalidNodeID is returned by [Scene.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Scene.AddNode] when a node with
	// the same ID already exists. Node IDs must be unique per scene.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Scene.AddEdge] when the From
	// node does not exist in the scene.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Scene.AddEdge] when the To
	// node does not exist in the scene.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Default port names. Built-in node types carry one input and one output.
const (
	PortIn  = "in"
	PortOut = "out"
)

// Edge is a directed connection between two node ports.
// The container engine ignores edges; they are carried for host fidelity
// and round-trip through serialization unchanged.
type Edge struct {
	From     string `json:"from" bson:"from"`
	FromPort string `json:"from_port,omitempty" bson:"from_port,omitempty"`
	To       string `json:"to" bson:"to"`
	ToPort   string `json:"to_port,omitempty" bson:"to_port,omitempty"`
}

// Scene is the in-memory node graph the editor host owns. It resolves nodes
// by ID, enumerates them in a stable order, and tracks port connections.
//
// The zero value is not usable - use New to create a valid Scene.
// Scene is not safe for concurrent use without external synchronization;
// the editor drives it from a single logical thread.
type Scene struct {
	nodes map[string]*Node
	edges []Edge
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{nodes: make(map[string]*Node)}
}

// AddNode adds a node to the scene.
// Returns ErrInvalidNodeID if the node ID is empty, or ErrDuplicateNodeID
// if a node with the same ID already exists.
func (s *Scene) AddNode(n *Node) error {
	if n == nil || n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := s.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	s.nodes[n.ID] = n
	return nil
}

// RemoveNode deletes the node and detaches all edges touching it.
// Removing an unknown ID is a no-op: the host may deliver deletions for
// nodes that already raced away. Membership entries pointing at a removed
// node are not touched here; they go stale and are pruned by the container
// engine on its next layout pass.
func (s *Scene) RemoveNode(id string) {
	if _, ok := s.nodes[id]; !ok {
		return
	}
	delete(s.nodes, id)
	s.edges = slices.DeleteFunc(s.edges, func(e Edge) bool {
		return e.From == id || e.To == id
	})
}

// AddEdge connects two existing nodes. Empty port names default to the
// built-in out/in ports. Returns ErrUnknownSourceNode or
// ErrUnknownTargetNode when an endpoint does not exist.
func (s *Scene) AddEdge(e Edge) error {
	if _, ok := s.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := s.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if e.FromPort == "" {
		e.FromPort = PortOut
	}
	if e.ToPort == "" {
		e.ToPort = PortIn
	}
	s.edges = append(s.edges, e)
	return nil
}

// RemoveEdge removes the edge from→to if it exists.
// No error is returned if the edge does not exist.
func (s *Scene) RemoveEdge(from, to string) {
	s.edges = slices.DeleteFunc(s.edges, func(e Edge) bool {
		return e.From == from && e.To == to
	})
}

// Node returns the node with the given ID and true, or nil and false if not
// found. The returned pointer refers to the live node, so position and size
// mutations are visible to the scene.
func (s *Scene) Node(id string) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Nodes returns all nodes sorted by ID.
// Sorting keeps enumeration, serialization, and membership tie-breaks
// deterministic across runs.
func (s *Scene) Nodes() []*Node {
	nodes := make([]*Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		nodes = append(nodes, n)
	}
	slices.SortFunc(nodes, func(a, b *Node) int { return strings.Compare(a.ID, b.ID) })
	return nodes
}

// Containers returns all container nodes sorted by ID. This is the stable
// enumeration order the membership resolver uses: when a node's reference
// point falls inside two containers' snap regions at once, the first
// container in this order adopts it.
func (s *Scene) Containers() []*Node {
	var containers []*Node
	for _, n := range s.nodes {
		if n.IsContainer() {
			containers = append(containers, n)
		}
	}
	slices.SortFunc(containers, func(a, b *Node) int { return strings.Compare(a.ID, b.ID) })
	return containers
}

// Edges returns a copy of all edges in insertion order.
func (s *Scene) Edges() []Edge { return slices.Clone(s.edges) }

// NodeCount returns the number of nodes in the scene.
func (s *Scene) NodeCount() int { return len(s.nodes) }

// EdgeCount returns the number of edges in the scene.
func (s *Scene) EdgeCount() int { return len(s.edges) }
