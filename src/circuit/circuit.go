package circuit

import (
	"fmt"
	"sort"

	"github.com/mattisv/circuitsim/src/logic"
	"github.com/samber/lo"
)

// GateKind identifies the kind of a gate.
type GateKind int

const (
	INPUT GateKind = iota
	NOT
	AND
	OR
)

func (k GateKind) String() string {
	switch k {
	case INPUT:
		return "INPUT"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	}
	return fmt.Sprintf("GateKind(%d)", int(k))
}

// Gate is a single node in the lowered gate graph. Gates live in the
// circuit's arena and reference their operands by gate ID; construction is
// bottom-up, so operands always have a lower ID than the gate using them.
type Gate struct {
	ID   int
	Kind GateKind

	// Variable is set only for INPUT gates.
	Variable string

	// Left is the sole operand of a NOT gate and the left operand of an
	// AND/OR gate. Right is only meaningful for AND/OR.
	Left  int
	Right int
}

// Circuit is the complete gate graph for one parsed expression: the gate
// arena in construction order, the ID of the output gate, and the
// lexicographically sorted list of distinct input variable names. A circuit
// is immutable once built.
type Circuit struct {
	Gates  []Gate
	Output int
	Inputs []string
}

// Build lowers a syntax tree into a circuit in a single bottom-up traversal.
// Every AST node becomes exactly one gate, so a variable referenced twice in
// the expression yields two INPUT gates; only Inputs is deduplicated. Gate
// IDs are assigned in post-order starting at 0 and double as indices into
// Gates.
func Build(ast *logic.Node) (*Circuit, error) {
	if ast == nil {
		return nil, fmt.Errorf("cannot build a circuit from a nil syntax tree")
	}

	c := &Circuit{}

	var variables []string
	output, err := c.lower(ast, &variables)
	if err != nil {
		return nil, err
	}

	c.Output = output
	c.Inputs = lo.Uniq(variables)
	sort.Strings(c.Inputs)

	return c, nil
}

func (c *Circuit) lower(node *logic.Node, variables *[]string) (int, error) {
	switch node.Op {
	case logic.IDENTIFIER:
		*variables = append(*variables, node.Name)
		return c.addGate(Gate{Kind: INPUT, Variable: node.Name}), nil

	case logic.NOT:
		operand, err := c.lower(node.Left, variables)
		if err != nil {
			return 0, err
		}
		return c.addGate(Gate{Kind: NOT, Left: operand}), nil

	case logic.AND, logic.OR:
		left, err := c.lower(node.Left, variables)
		if err != nil {
			return 0, err
		}
		right, err := c.lower(node.Right, variables)
		if err != nil {
			return 0, err
		}

		kind := AND
		if node.Op == logic.OR {
			kind = OR
		}
		return c.addGate(Gate{Kind: kind, Left: left, Right: right}), nil

	default:
		// the parser never produces such a node; this is an internal
		// invariant violation, not a user-facing error
		return 0, fmt.Errorf("unknown AST operator: %v", node.Op)
	}
}

func (c *Circuit) addGate(gate Gate) int {
	gate.ID = len(c.Gates)
	c.Gates = append(c.Gates, gate)
	return gate.ID
}
