package scene

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrUnknownNodeType is returned by [NewNode] when the type tag has
	// not been registered.
	ErrUnknownNodeType = errors.New("unknown node type")

	// ErrDuplicateNodeType is returned by [RegisterType] when the tag is
	// already taken.
	ErrDuplicateNodeType = errors.New("duplicate node type")
)

// TypeSpec describes a registered node type: its display name, default
// geometry, and whether instances are containers. Registration is explicit;
// there is no scanning for node definitions at runtime.
type TypeSpec struct {
	// Name is the human-readable type name shown in the editor palette.
	Name string

	// Width and Height are the initial node dimensions.
	Width, Height float64

	// Container marks the type as a grid container. Instances get a Grid
	// payload built by NewContainer.
	Container bool

	// Init optionally customizes a freshly constructed node.
	Init func(*Node)
}

var (
	typesMu sync.RWMutex
	types   = make(map[string]TypeSpec)
)

// RegisterType registers a node type under the given tag.
// Returns ErrDuplicateNodeType if the tag is already registered.
// Typically called from init code or start-up wiring, once per type.
func RegisterType(tag string, spec TypeSpec) error {
	if tag == "" {
		return fmt.Errorf("register node type: empty tag")
	}
	typesMu.Lock()
	defer typesMu.Unlock()
	if _, exists := types[tag]; exists {
		return fmt.Errorf("register node type %q: %w", tag, ErrDuplicateNodeType)
	}
	types[tag] = spec
	return nil
}

// RegisteredTypes returns the registered type tags in no particular order.
func RegisteredTypes() []string {
	typesMu.RLock()
	defer typesMu.RUnlock()
	tags := make([]string, 0, len(types))
	for tag := range types {
		tags = append(tags, tag)
	}
	return tags
}

// NewNode constructs a node of the registered type with a fresh UUID.
// Returns ErrUnknownNodeType for unregistered tags. The node is not yet
// part of any scene; pass it to [Scene.AddNode].
func NewNode(tag string) (*Node, error) {
	typesMu.RLock()
	spec, ok := types[tag]
	typesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("node type %q: %w", tag, ErrUnknownNodeType)
	}

	n := &Node{
		ID:     uuid.NewString(),
		Type:   tag,
		Label:  spec.Name,
		Width:  spec.Width,
		Height: spec.Height,
	}
	if spec.Container {
		n.Grid = NewContainer(spec.Width)
	}
	if spec.Init != nil {
		spec.Init(n)
	}
	return n, nil
}

// Default layout parameters for new containers.
const (
	// DefaultSnapHeight is the height of the snap/header band.
	DefaultSnapHeight = 48.0
	// DefaultMarginX is the horizontal member inset.
	DefaultMarginX = 20.0
	// DefaultSpacingY is the vertical gap between stacked members.
	DefaultSpacingY = 10.0
	// DefaultMinHeight is the empty-container height.
	DefaultMinHeight = 120.0
)

// NewContainer builds a container payload with default layout parameters.
// The snap region spans the full container width as a header band at the top.
func NewContainer(width float64) *Container {
	return &Container{
		SnapRegion: Rect{X: 0, Y: 0, W: width, H: DefaultSnapHeight},
		MarginX:    DefaultMarginX,
		SpacingY:   DefaultSpacingY,
		MinHeight:  DefaultMinHeight,
	}
}

// RegisterBuiltins registers the basic and grid node types.
// Registration is idempotent: tags that are already present are left as-is
// so hosts can override a built-in before calling this.
func RegisterBuiltins() {
	builtins := map[string]TypeSpec{
		TypeBasic: {
			Name:   "Basic Node",
			Width:  DefaultNodeWidth,
			Height: DefaultNodeHeight,
		},
		TypeGrid: {
			Name:      "Grid",
			Width:     DefaultGridWidth,
			Height:    DefaultGridHeight,
			Container: true,
			Init: func(n *Node) {
				n.Note = "background grid"
			},
		},
	}

	typesMu.Lock()
	defer typesMu.Unlock()
	for tag, spec := range builtins {
		if _, exists := types[tag]; !exists {
			types[tag] = spec
		}
	}
}
