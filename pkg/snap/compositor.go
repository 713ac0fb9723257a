package snap

import (
	"slices"
	"strings"

	"github.com/kdmsoft/nodegrid/pkg/scene"
)

// Layout recomputes member positions and the container's height.
// Given unchanged member geometry it is idempotent: members are stacked in
// ascending y order, so a second pass re-derives the same order and moves
// nothing.
//
// Members are pinned to the container's left margin, normalized to the
// container width minus both margins, and stacked below the snap band with
// SpacingY between them. The container grows to fit the bottom-most member
// and never shrinks below MinHeight. A nil or non-container node is a no-op.
func (e *Engine) Layout(sc *scene.Scene, container *scene.Node) {
	if sc == nil || container == nil || container.Grid == nil {
		return
	}
	g := container.Grid

	minHeight := g.MinHeight
	if minHeight <= 0 {
		minHeight = scene.DefaultMinHeight
	}

	members := resolveLive(sc, g)
	if len(members) == 0 {
		container.Height = minHeight
		return
	}

	// Stacking order is vertical position, not insertion order: dragging a
	// member above a sibling reorders the stack on this pass. Ties fall
	// back to ID so equal-y members still lay out deterministically.
	slices.SortStableFunc(members, func(a, b *scene.Node) int {
		switch {
		case a.Y < b.Y:
			return -1
		case a.Y > b.Y:
			return 1
		default:
			return strings.Compare(a.ID, b.ID)
		}
	})
	g.Members = memberIDs(members)

	// The members below are moved by the engine, not the user; absorb the
	// host echoing those moves back for the duration of the pass.
	restore := e.suppress(g.Members)
	defer restore()

	memberWidth := max(container.Width-2*g.MarginX, 0)

	y := container.Y + g.SnapRegion.H + g.SpacingY
	for _, m := range members {
		m.SetPos(container.X+g.MarginX, y)
		m.SetSize(memberWidth, m.Height)
		y += m.Height + g.SpacingY
	}

	container.Height = max(y-container.Y, minHeight)
}

// LayoutAll runs a layout pass over every container in the scene, in the
// stable enumeration order. Used after loading a scene so persisted
// membership is pruned and geometry is normalized before the first event.
func (e *Engine) LayoutAll(sc *scene.Scene) {
	if sc == nil {
		return
	}
	for _, c := range sc.Containers() {
		e.Layout(sc, c)
	}
}

func memberIDs(nodes []*scene.Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
