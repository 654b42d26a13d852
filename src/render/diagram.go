package render

import (
	"fmt"
	"strings"

	"github.com/mattisv/circuitsim/src/circuit"
)

// Diagram renders the gate graph as a text tree rooted at the output gate,
// one line per gate, children drawn left then right. The circuit is read-only
// input; rendering never touches its state.
//
// Example for "A AND NOT B":
//
//	AND#3
//	├── INPUT#0 (A)
//	└── NOT#2
//	    └── INPUT#1 (B)
func Diagram(c *circuit.Circuit) string {
	var sb strings.Builder
	writeGate(&sb, c, c.Output, "", "")
	return sb.String()
}

func writeGate(sb *strings.Builder, c *circuit.Circuit, id int, prefix, childPrefix string) {
	gate := c.Gates[id]

	sb.WriteString(prefix)
	sb.WriteString(gateLabel(gate))
	sb.WriteByte('\n')

	switch gate.Kind {
	case circuit.NOT:
		writeGate(sb, c, gate.Left, childPrefix+"└── ", childPrefix+"    ")
	case circuit.AND, circuit.OR:
		writeGate(sb, c, gate.Left, childPrefix+"├── ", childPrefix+"│   ")
		writeGate(sb, c, gate.Right, childPrefix+"└── ", childPrefix+"    ")
	}
}

func gateLabel(gate circuit.Gate) string {
	if gate.Kind == circuit.INPUT {
		return fmt.Sprintf("INPUT#%d (%s)", gate.ID, gate.Variable)
	}
	return fmt.Sprintf("%s#%d", gate.Kind, gate.ID)
}
