package scene

// Node type tags for the built-in node types.
const (
	// TypeBasic is an ordinary node with in/out ports and label/note text.
	TypeBasic = "basic"
	// TypeGrid is the background container node that adopts and stacks
	// other nodes dropped onto its snap region.
	TypeGrid = "grid"
)

// Default geometry for newly created nodes.
const (
	// DefaultNodeWidth is the initial width of an ordinary node.
	DefaultNodeWidth = 160.0
	// DefaultNodeHeight is the initial height of an ordinary node.
	DefaultNodeHeight = 60.0
	// DefaultGridWidth is the initial width of a grid container.
	DefaultGridWidth = 800.0
	// DefaultGridHeight is the initial height of a grid container.
	DefaultGridHeight = 300.0
)

// Node is a vertex on the editor canvas. Position is the top-left corner in
// scene coordinates. Ordinary nodes leave Grid nil; container nodes carry a
// Grid payload holding membership and layout parameters.
//
// The zero value is not usable - ID must be set before adding to a Scene.
// Use NewNode to construct nodes of a registered type.
type Node struct {
	ID     string  `json:"id" bson:"id"`
	Type   string  `json:"type" bson:"type"`
	Label  string  `json:"label,omitempty" bson:"label,omitempty"`
	Note   string  `json:"note,omitempty" bson:"note,omitempty"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	// Grid is non-nil exactly for container-kind nodes.
	Grid *Container `json:"grid,omitempty" bson:"grid,omitempty"`
}

// IsContainer reports whether the node is a container (grid) node.
// Containers are never valid members of another container.
func (n *Node) IsContainer() bool { return n.Grid != nil }

// Pos returns the node's top-left position.
func (n *Node) Pos() Point { return Point{X: n.X, Y: n.Y} }

// SetPos moves the node's top-left corner.
func (n *Node) SetPos(x, y float64) { n.X, n.Y = x, y }

// Size returns the node's width and height.
func (n *Node) Size() (w, h float64) { return n.Width, n.Height }

// SetSize resizes the node. Negative dimensions are clamped to zero so a
// misbehaving caller can never produce an inverted rectangle.
func (n *Node) SetSize(w, h float64) {
	n.Width = max(w, 0)
	n.Height = max(h, 0)
}

// Rect returns the node's bounding rectangle in scene coordinates.
func (n *Node) Rect() Rect {
	return Rect{X: n.X, Y: n.Y, W: n.Width, H: n.Height}
}

// Center returns the node's center point in scene coordinates.
// This is the reference point used for snap-region containment tests.
func (n *Node) Center() Point { return n.Rect().Center() }

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Container holds the membership and layout state of a grid node.
// Members is ordered top to bottom; the order is re-derived from member
// y-positions on every layout pass, not preserved from insertion.
type Container struct {
	// Members lists the node IDs currently owned by this container.
	// It never contains a container ID, and each ID appears in at most
	// one container scene-wide.
	Members []string `json:"members,omitempty" bson:"members,omitempty"`

	// SnapRegion is the activation band in container-local coordinates.
	// A node is adopted when its center falls inside this rectangle
	// translated to scene coordinates. Its height also acts as the header
	// band below which members are stacked.
	SnapRegion Rect `json:"snap_region" bson:"snap_region"`

	// MarginX is the horizontal inset of members from the container edges.
	MarginX float64 `json:"margin_x" bson:"margin_x"`

	// SpacingY is the vertical gap between stacked members, and between
	// the header band and the first member.
	SpacingY float64 `json:"spacing_y" bson:"spacing_y"`

	// MinHeight is the height the container shrinks back to when empty.
	MinHeight float64 `json:"min_height" bson:"min_height"`
}

// Has reports whether the container currently lists id as a member.
func (c *Container) Has(id string) bool {
	for _, m := range c.Members {
		if m == id {
			return true
		}
	}
	return false
}
