// Package force computes 2D node positions by force-directed simulation.
//
// # Model
//
// Nodes behave as mutually repelling charged particles and edges as springs.
// With ideal distance k, two nodes at distance d repel with magnitude k²/d
// and the endpoints of an edge attract with magnitude d²/k. Each round sums
// all forces into a per-node displacement, clamps its length to the round's
// maximum step and moves the node. The clamp is the only cooling: a fixed
// number of rounds runs with no convergence test.
//
// # Usage
//
// Positions must be placed before a layout runs. [Randomize] scatters nodes
// with an explicit seed, [Circle] places them deterministically:
//
//	force.Randomize(g, 42, force.DefaultSpread)
//	force.Layout(g, force.DefaultOptions())
//
// The result depends only on the initial positions and [Options], so a
// fixed seed reproduces a layout exactly.
//
// # Degenerate Cases
//
// Coincident nodes exert no force on each other and self-loops exert none
// on their node; zero distances are never divided by. Displacements that
// overflow are reduced to a finite direction before they are applied, so no
// position ever becomes NaN or infinite.
//
// # Cost
//
// Repulsion is O(n²) per round and dominates. With [Options.Workers] > 1
// the pair loop is split across goroutines, each with its own accumulator;
// the accumulators are merged in worker order before any node moves.
package force
