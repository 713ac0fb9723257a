package snap

import (
	"github.com/charmbracelet/log"

	"github.com/kdmsoft/nodegrid/pkg/scene"
)

// Engine owns the containment state machine for all grid nodes in a scene.
// It carries no per-scene state of its own - membership lives on the
// container payloads - only the transient suppression set that breaks
// re-entrant move notifications.
//
// Engine methods never panic and never return errors; see the package
// documentation for the degradation contract.
type Engine struct {
	logger     *log.Logger
	suppressed map[string]int
}

// New creates an engine. logger may be nil to disable debug tracing.
func New(logger *log.Logger) *Engine {
	return &Engine{
		logger:     logger,
		suppressed: make(map[string]int),
	}
}

// NodeMoved is the single entry point the host calls whenever a node's
// position is committed. A nil scene or node is a no-op, as is a
// notification for a node the engine itself is currently repositioning.
//
// Calling this per drag frame instead of per commit is safe - layout is
// idempotent - just wasteful.
func (e *Engine) NodeMoved(sc *scene.Scene, moved *scene.Node) {
	if sc == nil || moved == nil || moved.ID == "" {
		return
	}
	if e.suppressed[moved.ID] > 0 {
		return
	}
	if _, live := sc.Node(moved.ID); !live {
		// Stale reference from a deletion race.
		return
	}

	if moved.IsContainer() {
		// Container repositions never change who belongs to it, but all
		// members shift relative to the new origin.
		e.Layout(sc, moved)
		return
	}

	containers := sc.Containers()
	current := findOwner(containers, moved.ID)
	target := findTarget(containers, moved)

	switch {
	case target == nil && current == nil:
		return

	case target == nil:
		e.debugf("release", "node", moved.ID, "from", current.ID)
		release(current.Grid, moved.ID)
		e.Layout(sc, current)

	case current == nil:
		e.debugf("adopt", "node", moved.ID, "into", target.ID)
		adopt(target.Grid, moved.ID)
		e.Layout(sc, target)

	case target == current:
		// Same owner: the member may have been dragged past a sibling,
		// so the stacking order can still change.
		e.Layout(sc, target)

	default:
		e.debugf("transfer", "node", moved.ID, "from", current.ID, "into", target.ID)
		release(current.Grid, moved.ID)
		e.Layout(sc, current)
		adopt(target.Grid, moved.ID)
		e.Layout(sc, target)
	}
}

// findTarget returns the first container, in the scene's stable enumeration
// order, whose snap region contains the moved node's center. The first-wins
// rule is the defined tie-break for overlapping snap regions, not an
// accident of iteration.
func findTarget(containers []*scene.Node, moved *scene.Node) *scene.Node {
	center := moved.Center()
	for _, c := range containers {
		if c.Grid == nil || c.ID == moved.ID {
			continue
		}
		region := c.Grid.SnapRegion.Translate(c.X, c.Y)
		if region.Contains(center) {
			return c
		}
	}
	return nil
}

// suppress marks ids as engine-moved and returns the matching release.
// Entries are counted so nested passes (a transfer lays out two containers)
// cannot clear each other's marks early. The release must run even if a
// pass bails out partway, so callers defer it immediately.
func (e *Engine) suppress(ids []string) (release func()) {
	for _, id := range ids {
		e.suppressed[id]++
	}
	return func() {
		for _, id := range ids {
			if e.suppressed[id] > 1 {
				e.suppressed[id]--
			} else {
				delete(e.suppressed, id)
			}
		}
	}
}

// Suppressed reports whether move notifications for the node are currently
// being absorbed. Exposed for the host's own bookkeeping and for tests.
func (e *Engine) Suppressed(id string) bool { return e.suppressed[id] > 0 }

func (e *Engine) debugf(msg string, kv ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, kv...)
	}
}
