package circuit

// Row is one line of a truth table: a complete assignment over the circuit's
// inputs and the resulting output value.
type Row struct {
	Values map[string]bool
	Output bool
}

// GenerateTruthTable enumerates every assignment over the circuit's inputs in
// ascending binary order, most significant bit first, and evaluates the
// output gate for each. A circuit with k distinct inputs yields exactly 2^k
// rows; the result is fully materialized and deterministic.
func GenerateTruthTable(c *Circuit) []Row {
	k := len(c.Inputs)
	rows := make([]Row, 0, 1<<k)

	for i := 0; i < 1<<k; i++ {
		assignment := make(map[string]bool, k)
		for j, name := range c.Inputs {
			// bit j, counted from the most significant bit of a k-bit value
			assignment[name] = i&(1<<(k-1-j)) != 0
		}

		rows = append(rows, Row{
			Values: assignment,
			Output: c.Evaluate(assignment),
		})
	}

	return rows
}
