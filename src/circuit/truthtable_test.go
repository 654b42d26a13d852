package circuit_test

import (
	"testing"

	"github.com/mattisv/circuitsim/src/circuit"
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTruthTableAAndB(t *testing.T) {
	c := buildCircuit(t, "A AND B")

	rows := circuit.GenerateTruthTable(c)

	expected := []circuit.Row{
		{Values: map[string]bool{"A": false, "B": false}, Output: false},
		{Values: map[string]bool{"A": false, "B": true}, Output: false},
		{Values: map[string]bool{"A": true, "B": false}, Output: false},
		{Values: map[string]bool{"A": true, "B": true}, Output: true},
	}
	assert.Equal(t, expected, rows)
}

func TestGenerateTruthTableParenthesesAreTransparent(t *testing.T) {
	plain := circuit.GenerateTruthTable(buildCircuit(t, "A AND B"))
	wrapped := circuit.GenerateTruthTable(buildCircuit(t, "(A AND B)"))

	assert.Equal(t, plain, wrapped)
}

func TestGenerateTruthTableRowCountAndOrder(t *testing.T) {
	c := buildCircuit(t, "A OR B AND NOT C")
	require.Len(t, c.Inputs, 3)

	rows := circuit.GenerateTruthTable(c)
	require.Len(t, rows, 8)

	for i, row := range rows {
		// the row's assignment read MSB-first must equal the row index
		value := 0
		for _, name := range c.Inputs {
			value <<= 1
			if row.Values[name] {
				value |= 1
			}
		}
		assert.Equal(t, i, value)
	}
}

func TestGenerateTruthTableSingleVariable(t *testing.T) {
	rows := circuit.GenerateTruthTable(buildCircuit(t, "NOT A"))

	expected := []circuit.Row{
		{Values: map[string]bool{"A": false}, Output: true},
		{Values: map[string]bool{"A": true}, Output: false},
	}
	assert.Equal(t, expected, rows)
}

func TestGenerateTruthTableDuplicateVariablesCountOnce(t *testing.T) {
	// A appears three times but is a single column
	rows := circuit.GenerateTruthTable(buildCircuit(t, "A AND (A OR A)"))

	require.Len(t, rows, 2)
	assert.False(t, rows[0].Output)
	assert.True(t, rows[1].Output)
}

func TestGenerateTruthTableIsDeterministic(t *testing.T) {
	first := buildCircuit(t, "NOT (A OR B) AND C")
	second := buildCircuit(t, "NOT (A OR B) AND C")

	assert.Equal(t, first.Inputs, second.Inputs)
	assert.Equal(t, len(first.Gates), len(second.Gates))
	assert.Equal(t, circuit.GenerateTruthTable(first), circuit.GenerateTruthTable(second))
}

func TestGenerateTruthTableOutputDistribution(t *testing.T) {
	testCases := map[string]float64{
		"A":           0.5,  // half the rows are true
		"A OR B":      0.75, // only 0,0 is false
		"A AND B":     0.25, // only 1,1 is true
		"A AND NOT A": 0,    // contradiction
		"A OR NOT A":  1,    // tautology
	}

	for expression, expectedShare := range testCases {
		t.Run(expression, func(t *testing.T) {
			rows := circuit.GenerateTruthTable(buildCircuit(t, expression))

			outputs := lo.Map(rows, func(row circuit.Row, _ int) float64 {
				if row.Output {
					return 1
				}
				return 0
			})

			share, err := stats.Mean(outputs)
			require.NoError(t, err)
			assert.InDelta(t, expectedShare, share, 0.0001)
		})
	}
}
