package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Scene Serialization
// =============================================================================

// File is the canonical serialization format for scenes. It is the same
// shape the Mongo store persists (bson tags on [Node], [Edge], [Container]),
// so a scene round-trips identically through files and the database.
//
// Nodes are sorted by ID on output for deterministic files.
type File struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges,omitempty" bson:"edges,omitempty"`
}

// FromScene converts a live scene to its serialization format.
func FromScene(s *Scene) File {
	nodes := s.Nodes()
	out := File{
		Nodes: make([]Node, len(nodes)),
		Edges: s.Edges(),
	}
	for i, n := range nodes {
		out.Nodes[i] = *n
		if n.Grid != nil {
			g := *n.Grid
			g.Members = append([]string(nil), n.Grid.Members...)
			out.Nodes[i].Grid = &g
		}
	}
	return out
}

// ToScene converts a serialized scene file to a live scene.
// Returns an error if node IDs are empty or duplicated, or an edge
// references a missing node.
func ToScene(f File) (*Scene, error) {
	s := New()
	for i := range f.Nodes {
		n := f.Nodes[i]
		if err := s.AddNode(&n); err != nil {
			return nil, fmt.Errorf("add node %s: %w", n.ID, err)
		}
	}
	for _, e := range f.Edges {
		if err := s.AddEdge(e); err != nil {
			return nil, fmt.Errorf("add edge %s→%s: %w", e.From, e.To, err)
		}
	}
	return s, nil
}

// Marshal serializes a scene to pretty-printed JSON bytes.
func Marshal(s *Scene) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes JSON bytes into a scene.
func Unmarshal(data []byte) (*Scene, error) {
	return readFrom(bytes.NewReader(data))
}

// Write writes a scene as JSON to an io.Writer.
func Write(s *Scene, w io.Writer) error {
	return writeTo(s, w)
}

// Read decodes a JSON scene from an io.Reader.
func Read(r io.Reader) (*Scene, error) {
	return readFrom(r)
}

// WriteFile writes a scene to a JSON file with 0644 permissions.
func WriteFile(s *Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(s, f)
}

// ReadFile reads a JSON file and returns the decoded scene.
func ReadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFrom(f)
}

func writeTo(s *Scene, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromScene(s)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readFrom(r io.Reader) (*Scene, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToScene(f)
}

// Hash computes a content hash of the scene's serialized form.
// Two scenes with identical nodes, geometry, and membership hash the same.
// Used as a cache key for derived artifacts (summaries, renders).
func (s *Scene) Hash() (string, error) {
	data, err := json.Marshal(FromScene(s))
	if err != nil {
		return "", fmt.Errorf("hash scene: %w", err)
	}
	return contentHash(data), nil
}
