package snap

import (
	"fmt"
	"strings"

	"github.com/kdmsoft/nodegrid/pkg/scene"
)

// Summary is the human-readable membership digest of one container, in
// stacking order. It is presentation data for inspector surfaces; building
// it never mutates the scene (stale members are skipped here and pruned by
// the next layout pass).
type Summary struct {
	ContainerID string   `json:"container_id" bson:"container_id"`
	Label       string   `json:"label" bson:"label"`
	Members     []string `json:"members,omitempty" bson:"members,omitempty"`
}

// String formats the summary as a single inspector line,
// e.g. "Shots: 3 nodes (intro, cut-a, outro)".
func (s Summary) String() string {
	if len(s.Members) == 0 {
		return fmt.Sprintf("%s: empty", s.Label)
	}
	noun := "nodes"
	if len(s.Members) == 1 {
		noun = "node"
	}
	return fmt.Sprintf("%s: %d %s (%s)", s.Label, len(s.Members), noun, strings.Join(s.Members, ", "))
}

// Summarize returns the membership summary for the given container node.
// The second return is false when the id does not resolve to a container.
func (e *Engine) Summarize(sc *scene.Scene, containerID string) (Summary, bool) {
	if sc == nil {
		return Summary{}, false
	}
	c, ok := sc.Node(containerID)
	if !ok || c.Grid == nil {
		return Summary{}, false
	}

	s := Summary{ContainerID: c.ID, Label: c.DisplayLabel()}
	for _, id := range c.Grid.Members {
		if m, live := sc.Node(id); live && !m.IsContainer() {
			s.Members = append(s.Members, m.DisplayLabel())
		}
	}
	return s, true
}

// SummarizeAll returns summaries for every container in enumeration order.
func (e *Engine) SummarizeAll(sc *scene.Scene) []Summary {
	if sc == nil {
		return nil
	}
	var out []Summary
	for _, c := range sc.Containers() {
		if s, ok := e.Summarize(sc, c.ID); ok {
			out = append(out, s)
		}
	}
	return out
}
