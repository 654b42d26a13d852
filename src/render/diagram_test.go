package render_test

import (
	"testing"

	"github.com/mattisv/circuitsim/src/circuit"
	"github.com/mattisv/circuitsim/src/logic"
	"github.com/mattisv/circuitsim/src/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCircuit(t *testing.T, expression string) *circuit.Circuit {
	t.Helper()

	ast, err := logic.Parse(expression)
	require.NoError(t, err)

	c, err := circuit.Build(ast)
	require.NoError(t, err)

	return c
}

func TestDiagram(t *testing.T) {
	testCases := map[string]string{
		"A": "INPUT#0 (A)\n",

		"NOT A": "NOT#1\n" +
			"└── INPUT#0 (A)\n",

		"A AND NOT B": "AND#3\n" +
			"├── INPUT#0 (A)\n" +
			"└── NOT#2\n" +
			"    └── INPUT#1 (B)\n",

		"NOT (A OR B)": "NOT#3\n" +
			"└── OR#2\n" +
			"    ├── INPUT#0 (A)\n" +
			"    └── INPUT#1 (B)\n",

		"(A OR B) AND C": "AND#4\n" +
			"├── OR#2\n" +
			"│   ├── INPUT#0 (A)\n" +
			"│   └── INPUT#1 (B)\n" +
			"└── INPUT#3 (C)\n",
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			c := buildCircuit(t, expression)

			assert.Equal(t, expected, render.Diagram(c))
		})
	}
}

func TestDiagramDoesNotMutateTheCircuit(t *testing.T) {
	c := buildCircuit(t, "A AND B")

	gatesBefore := make([]circuit.Gate, len(c.Gates))
	copy(gatesBefore, c.Gates)

	render.Diagram(c)

	assert.Equal(t, gatesBefore, c.Gates)
	assert.Equal(t, []string{"A", "B"}, c.Inputs)
}
