package circuit

import "github.com/samber/lo"

// Evaluate computes the value at the circuit's output gate for the given
// assignment. Variables absent from the assignment evaluate to false; callers
// that want every variable supplied should check MissingVariables first.
func (c *Circuit) Evaluate(assignment map[string]bool) bool {
	return c.EvaluateGate(c.Output, assignment)
}

// EvaluateGate computes the value at any single gate by pure recursion over
// the gate tree. Both operands of a binary gate are always evaluated; a
// combinational gate has no notion of short-circuiting.
func (c *Circuit) EvaluateGate(id int, assignment map[string]bool) bool {
	gate := c.Gates[id]

	switch gate.Kind {
	case INPUT:
		return assignment[gate.Variable]

	case NOT:
		return !c.EvaluateGate(gate.Left, assignment)

	case AND:
		left := c.EvaluateGate(gate.Left, assignment)
		right := c.EvaluateGate(gate.Right, assignment)
		return left && right

	case OR:
		left := c.EvaluateGate(gate.Left, assignment)
		right := c.EvaluateGate(gate.Right, assignment)
		return left || right
	}

	return false
}

// MissingVariables returns the circuit inputs that have no value in the given
// assignment, in Inputs order. An empty result means the assignment covers
// every input.
func (c *Circuit) MissingVariables(assignment map[string]bool) []string {
	return lo.Filter(c.Inputs, func(name string, _ int) bool {
		_, ok := assignment[name]
		return !ok
	})
}
