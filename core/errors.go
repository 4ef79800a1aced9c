package core

import "fmt"

// ConfigurationError reports an invalid descriptor. It is returned
// synchronously by Validate (and therefore by engine construction) and names
// the rule that was violated. No partial engine is ever produced from a
// failed construction.
type ConfigurationError struct {
	Rule    string // identifier of the violated validation rule
	Message string // human-readable explanation
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid descriptor [%s]: %s", e.Rule, e.Message)
}

// NewConfigurationError creates a ConfigurationError for the given rule.
func NewConfigurationError(rule, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// CostDomainError reports an edge whose cost lies outside {0,1} observed
// during 0/1 search. The in-progress search is aborted entirely; no partial
// result is returned.
type CostDomainError struct {
	From   any  // source state of the offending edge
	Action any  // action labelling the edge
	To     any  // target state of the edge
	Cost   Cost // the observed out-of-range cost
}

func (e *CostDomainError) Error() string {
	return fmt.Sprintf("0/1 search requires edge costs 0 or 1, got %d for %v --[%v]--> %v",
		e.Cost, e.From, e.Action, e.To)
}

// NewCostDomainError creates a CostDomainError for the offending edge.
func NewCostDomainError(from, action, to any, cost Cost) *CostDomainError {
	return &CostDomainError{From: from, Action: action, To: to, Cost: cost}
}
