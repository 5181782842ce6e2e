// Package tsp provides a restart-controlled local-search heuristic for the
// symmetric and asymmetric Travelling Salesman Problem.
//
// The engine is built from four cooperating parts:
//
//   - Candidate lists — per-node bounded sets of promising edges
//     (nearest-neighbor or α-nearness ranking) that prune the move
//     neighborhood from O(n²) to O(n·k).
//
//   - Tour — an array/position representation of a Hamiltonian cycle with
//     O(1) succ/pred/between queries and O(segment) reversal.
//
//   - Local search — candidate-guided first-improvement 2-opt with an
//     Or-opt relocation phase for symmetric instances; an
//     orientation-preserving 3-opt tail swap plus Or-opt for asymmetric
//     instances (no segment reversal on directed costs).
//
//   - Run controller — RUNS independent restarts with double-bridge 4-opt
//     kicks between runs, keeping the best tour found; restarts may run on
//     a worker pool.
//
// All randomness flows through seeded streams (same seed ⇒ same result);
// there is no time-based randomness and no global mutable state, so
// independent Solve calls may run concurrently.
//
// Use this package when you need good tours fast on small-to-medium dense
// instances; it trades optimality guarantees for bounded runtime.
package tsp
