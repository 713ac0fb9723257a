// Package snap implements the container layout engine behind grid nodes:
// the membership test that decides which container owns a moved node, the
// per-container membership bookkeeping, and the deterministic re-layout
// that stacks members inside their container.
//
// # Control flow
//
// The host calls [Engine.NodeMoved] once per committed position change.
// For an ordinary node the engine resolves the gained/lost membership,
// updates at most two containers, and re-lays each one out. For a container
// node it re-lays out that container directly, which shifts all members
// relative to the new origin.
//
// # Guarantees
//
//   - A node belongs to at most one container at a time.
//   - No container ever lists another container as a member.
//   - Layout is deterministic and idempotent: member order is re-derived
//     from vertical positions each pass, and a second pass with unchanged
//     state moves nothing.
//   - Neither NodeMoved nor Layout ever fails; malformed input degrades to
//     a no-op for that call.
//
// The engine is single-threaded by contract. The only hazard is
// re-entrancy - the host echoing the engine's own programmatic moves back
// into NodeMoved - which a per-node suppression set absorbs for the
// duration of each layout pass.
package snap
