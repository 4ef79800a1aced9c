// Package arith provides the arithmetic operation-chaining domain: planning
// a shortest sequence of macro operations that drives a pair of natural
// numbers toward a target value.
//
// A state is the operand pair (Left, Right); the available operations are
// addition, subtraction (only when Left >= Right) and the doubling shift
// Left * 2^Right. Every operation leaves its result in Left and resets Right
// to zero. Successor values are computed in closed form; no state-machine
// simulation is involved.
//
// The domain satisfies core.Domain and is the canonical policykit example of
// a bidirectional descriptor: it supplies both closed-form successors and
// inverse-operation predecessors.
package arith
