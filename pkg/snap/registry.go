package snap

import (
	"slices"

	"github.com/kdmsoft/nodegrid/pkg/scene"
)

// adopt appends id to the container's member list if absent.
// Re-adopting an existing member is a no-op, not an error.
func adopt(c *scene.Container, id string) {
	if c == nil || id == "" || c.Has(id) {
		return
	}
	c.Members = append(c.Members, id)
}

// release removes id from the container's member list if present.
// Releasing a non-member is a no-op.
func release(c *scene.Container, id string) {
	if c == nil {
		return
	}
	c.Members = slices.DeleteFunc(c.Members, func(m string) bool { return m == id })
}

// findOwner returns the container whose member list contains id, or nil.
// The exclusive-ownership invariant means at most one can match; the scan
// still honors enumeration order so a corrupted scene degrades predictably.
func findOwner(containers []*scene.Node, id string) *scene.Node {
	for _, c := range containers {
		if c.Grid != nil && c.Grid.Has(id) {
			return c
		}
	}
	return nil
}

// resolveLive returns the member nodes that still resolve to existing,
// non-container nodes, in member-list order. IDs that fail to resolve are
// dropped from the list permanently as a side effect - this is the only
// place dangling members are garbage-collected.
func resolveLive(sc *scene.Scene, c *scene.Container) []*scene.Node {
	if c == nil || len(c.Members) == 0 {
		return nil
	}

	live := make([]*scene.Node, 0, len(c.Members))
	kept := c.Members[:0]
	for _, id := range c.Members {
		n, ok := sc.Node(id)
		if !ok || n.IsContainer() {
			continue
		}
		kept = append(kept, id)
		live = append(live, n)
	}
	c.Members = kept
	return live
}
