package snap

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kdmsoft/nodegrid/pkg/scene"
)

// MoveEvent is one committed position change from the host, identified by
// node and carrying the new top-left position.
type MoveEvent struct {
	NodeID string  `json:"node_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Apply commits each event and runs the membership resolver, strictly in
// the order given. Events are never reordered, batched, or debounced.
// Events naming unknown nodes are skipped - the host may replay a script
// against a scene that no longer contains every node.
func (e *Engine) Apply(sc *scene.Scene, events []MoveEvent) {
	if sc == nil {
		return
	}
	for _, ev := range events {
		n, ok := sc.Node(ev.NodeID)
		if !ok {
			e.debugf("skip move for unknown node", "node", ev.NodeID)
			continue
		}
		n.SetPos(ev.X, ev.Y)
		e.NodeMoved(sc, n)
	}
}

// ReadEventsFile reads a JSON move-event script: an array of objects with
// node_id, x, and y fields.
func ReadEventsFile(path string) ([]MoveEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var events []MoveEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return events, nil
}
