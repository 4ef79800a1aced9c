// Package strategy provides pluggable search algorithms for policykit.
//
// A Strategy is a pure function from a descriptor to distance and parent
// maps. Different implementations can cover different cost models; the two
// built-in variants implement 0/1-weighted breadth-first search forward and
// backward. A future general-cost algorithm becomes a new Strategy with no
// change to the engine.
package strategy
