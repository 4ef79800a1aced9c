package arith

import (
	"fmt"
	"math/bits"

	"github.com/skoeber/policykit/core"
)

// Op is an arithmetic macro operation.
type Op string

const (
	// OpAdd folds the operands: (l, r) -> (l+r, 0).
	OpAdd Op = "+"
	// OpSub subtracts the right operand: (l, r) -> (l-r, 0), only when l >= r.
	OpSub Op = "-"
	// OpShift doubles exponentially: (l, r) -> (l*2^r, 0), doubling plainly
	// when r is zero so chains like 1 -> 2 -> 4 -> ... remain possible after
	// the first operation has cleared the right operand.
	OpShift Op = "#"
)

// maxShift caps the shift exponent so successor values cannot overflow.
const maxShift = 20

// maxSubPredecessors bounds inverse-subtraction enumeration; without it
// every (l+b, b) would be a predecessor of (l, 0).
const maxSubPredecessors = 100

// CostMode selects the domain's edge-cost model.
type CostMode string

const (
	// CostModeUniform charges 1 per macro operation.
	CostModeUniform CostMode = "uniform"
	// CostModeRealistic approximates the micro-step effort of each
	// operation. Costs may exceed 1 for large operands, in which case the
	// current 0/1 search rejects the descriptor at runtime with a
	// CostDomainError.
	CostModeRealistic CostMode = "realistic"
)

// State is a point in the planning space: the pair of natural operands.
// Every operation leaves its result in Left and resets Right to zero.
type State struct {
	Left  int
	Right int
}

// String renders the state for logs and error messages.
func (s State) String() string {
	return fmt.Sprintf("(%d,%d)", s.Left, s.Right)
}

// Options configures a Domain.
type Options struct {
	// Ops restricts the available operations. Defaults to all three.
	Ops []Op

	// MaxValue bounds operand values to keep the state space finite.
	// Defaults to 10000.
	MaxValue int

	// CostMode selects the edge-cost model. Defaults to CostModeUniform.
	CostMode CostMode
}

// Domain plans macro-operation chains from a start operand pair to a target
// value. It satisfies core.Domain.
type Domain struct {
	startLeft  int
	startRight int
	target     int
	ops        []Op
	maxValue   int
	costMode   CostMode
}

// NewDomain creates an arithmetic chaining domain for startLeft, startRight
// and target, with optional overrides.
func NewDomain(startLeft, startRight, target int, optFns ...func(*Options)) (*Domain, error) {
	opts := Options{
		Ops:      []Op{OpAdd, OpSub, OpShift},
		MaxValue: 10000,
		CostMode: CostModeUniform,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if startLeft < 0 || startRight < 0 {
		return nil, fmt.Errorf("start operands must be >= 0, got (%d,%d)", startLeft, startRight)
	}
	if target <= 0 {
		return nil, fmt.Errorf("target must be > 0, got %d", target)
	}
	if len(opts.Ops) == 0 {
		return nil, fmt.Errorf("op set must not be empty")
	}
	if opts.MaxValue <= 0 {
		return nil, fmt.Errorf("max value must be > 0, got %d", opts.MaxValue)
	}

	return &Domain{
		startLeft:  startLeft,
		startRight: startRight,
		target:     target,
		ops:        opts.Ops,
		maxValue:   opts.MaxValue,
		costMode:   opts.CostMode,
	}, nil
}

// InitialState returns the state the plan starts from.
func (d *Domain) InitialState() State {
	return State{Left: d.startLeft, Right: d.startRight}
}

// Target returns the goal value.
func (d *Domain) Target() int { return d.target }

// BuildDescriptor produces the declarative problem statement consumed by the
// policy engine. The descriptor is bidirectional: both generators are
// supplied, and the engine runs the forward variant from the initial state.
func (d *Domain) BuildDescriptor() *core.Descriptor[State, Op] {
	costModel := core.CostUniform
	if d.costMode == CostModeRealistic {
		costModel = core.CostArbitrary
	}

	return &core.Descriptor[State, Op]{
		IsGoal:       d.isGoal,
		Successors:   d.successors,
		Predecessors: d.predecessors,
		Seeds:        []State{d.InitialState()},
		Direction:    core.DirectionBidirectional,
		CostModel:    costModel,
		MaxStates:    d.maxValue * 10,
		DomainName:   fmt.Sprintf("arith(%d,%d->%d)", d.startLeft, d.startRight, d.target),
		Metadata: map[string]any{
			"ops":       d.ops,
			"cost_mode": string(d.costMode),
			"max_value": d.maxValue,
		},
	}
}

// isGoal holds when Left reached the target. Right must be zero, which every
// operation guarantees for its result.
func (d *Domain) isGoal(s State) bool {
	return s.Left == d.target && s.Right == 0
}

// hasOp reports whether op is enabled for this domain.
func (d *Domain) hasOp(op Op) bool {
	for _, o := range d.ops {
		if o == op {
			return true
		}
	}
	return false
}

// shifted returns the closed-form shift result, doubling when the exponent
// is zero.
func shifted(left, right int) int {
	if right == 0 {
		return left * 2
	}
	return left * (1 << right)
}

// successors yields the closed-form results of every applicable operation,
// omitting edges that would not change the state (add and sub degenerate
// to no-ops once Right is zero). The yield order (add, sub, shift) is fixed,
// making tie-breaking in the derived policy deterministic.
func (d *Domain) successors(s State) []core.Edge[State, Op] {
	var edges []core.Edge[State, Op]

	if d.hasOp(OpAdd) && s.Right > 0 {
		if result := s.Left + s.Right; result <= d.maxValue {
			edges = append(edges, core.Edge[State, Op]{
				State:  State{Left: result},
				Action: OpAdd,
				Cost:   d.cost(s, OpAdd),
			})
		}
	}

	if d.hasOp(OpSub) && s.Right > 0 && s.Left >= s.Right {
		edges = append(edges, core.Edge[State, Op]{
			State:  State{Left: s.Left - s.Right},
			Action: OpSub,
			Cost:   d.cost(s, OpSub),
		})
	}

	if d.hasOp(OpShift) && s.Right <= maxShift {
		if result := shifted(s.Left, s.Right); result > 0 && result <= d.maxValue {
			edges = append(edges, core.Edge[State, Op]{
				State:  State{Left: result},
				Action: OpShift,
				Cost:   d.cost(s, OpShift),
			})
		}
	}

	return edges
}

// predecessors enumerates states whose operation result is s, by inverting
// each operation. Only states with Right == 0 can be the result of an
// operation. The enumerations are bounded: inverse addition by MaxValue,
// inverse subtraction by maxSubPredecessors, inverse shift by the value's
// bit length.
func (d *Domain) predecessors(s State) []core.Edge[State, Op] {
	if s.Right != 0 {
		return nil
	}

	var edges []core.Edge[State, Op]

	// Inverse addition: (l, 0) came from any (a, b) with a+b == l, b > 0.
	if d.hasOp(OpAdd) {
		for a := 0; a < s.Left; a++ {
			b := s.Left - a
			if b > d.maxValue {
				continue
			}
			prev := State{Left: a, Right: b}
			edges = append(edges, core.Edge[State, Op]{State: prev, Action: OpAdd, Cost: d.cost(prev, OpAdd)})
		}
	}

	// Inverse subtraction: (l, 0) came from (l+b, b) for any b >= 1.
	if d.hasOp(OpSub) {
		for b := 1; b < maxSubPredecessors && s.Left+b <= d.maxValue; b++ {
			prev := State{Left: s.Left + b, Right: b}
			edges = append(edges, core.Edge[State, Op]{State: prev, Action: OpSub, Cost: d.cost(prev, OpSub)})
		}
	}

	// Inverse shift: (l, 0) came from (a, b) with a*2^b == l for b >= 1, or
	// from (l/2, 0) via the plain-doubling case.
	if d.hasOp(OpShift) {
		if s.Left%2 == 0 && s.Left/2 > 0 {
			prev := State{Left: s.Left / 2}
			edges = append(edges, core.Edge[State, Op]{State: prev, Action: OpShift, Cost: d.cost(prev, OpShift)})
		}
		for b := 1; b <= bits.Len(uint(s.Left)) && b <= maxShift; b++ {
			if s.Left%(1<<b) != 0 {
				continue
			}
			a := s.Left / (1 << b)
			if a <= 0 || a > d.maxValue {
				continue
			}
			prev := State{Left: a, Right: b}
			edges = append(edges, core.Edge[State, Op]{State: prev, Action: OpShift, Cost: d.cost(prev, OpShift)})
		}
	}

	return edges
}

// cost returns the edge cost of applying op in state s. Uniform mode charges
// 1 per macro operation; realistic mode approximates the micro-step effort
// of the underlying unary machinery.
func (d *Domain) cost(s State, op Op) core.Cost {
	if d.costMode == CostModeUniform {
		return 1
	}

	switch op {
	case OpSub:
		return max(1, core.Cost(s.Right/10))
	case OpShift:
		return max(1, core.Cost(s.Left/100))
	default:
		return 1
	}
}
