/*
Package runner implements the Flow Runner: the state machine engine that
tracks a current position inside a Flow, computes legal moves, applies
transitions and executes per-state agent actions against a generative-text
provider.

A Runner binds to immutable Flow and Project snapshots at construction. Edits
made elsewhere are not picked up; callers reconstruct the runner to refresh.

# Error channels

Structural errors (unknown state or transition IDs, transitions not
applicable from the current position, missing position) fail the operation
with a typed error from pkg/domain. Execution-time errors (agent not found,
provider call failed, missing credentials) are returned as descriptive
strings from Run so the caller's trace can display them inline; they never
abort the session and leave the runner's position intact.
*/
package runner
