// Package scene models the node-editor canvas the container engine operates
// on: nodes with floating-point geometry, port edges, and a scene container
// that resolves and enumerates them in a stable order.
//
// # Nodes and containers
//
// Every node has a unique ID, a top-left position, and a size. Grid nodes
// additionally carry a [Container] payload with the membership list and
// layout parameters the snap engine maintains. Node kinds are registered
// explicitly via [RegisterType]; there is no runtime discovery.
//
// # Serialization
//
// Scenes serialize to a deterministic JSON format ([File]) with nodes sorted
// by ID. The same struct tags drive the bson encoding used by the Mongo
// scene store, so files and database documents stay interchangeable.
//
// # Concurrency
//
// Scene is not safe for concurrent use. The editor host drives all
// mutations from a single logical thread; out-of-process hosts serialize
// access at their boundary (see internal/api).
package scene
