package render

import (
	"fmt"
	"strings"

	"github.com/mattisv/circuitsim/src/circuit"
	"github.com/samber/lo"
)

// TruthTable formats truth table rows as a fixed-width text table with one
// column per input variable, in the given order, followed by an Output
// column. Cells are 0 or 1.
func TruthTable(rows []circuit.Row, inputs []string) string {
	headers := append(append([]string{}, inputs...), "Output")
	widths := lo.Map(headers, func(header string, _ int) int {
		return len(header)
	})

	var sb strings.Builder
	writeCells(&sb, headers, widths)
	writeSeparator(&sb, widths)

	for _, row := range rows {
		cells := lo.Map(inputs, func(name string, _ int) string {
			return Bit(row.Values[name])
		})
		cells = append(cells, Bit(row.Output))
		writeCells(&sb, cells, widths)
	}

	return sb.String()
}

// Bit renders a boolean the way the truth table does, as 0 or 1.
func Bit(value bool) string {
	if value {
		return "1"
	}
	return "0"
}

func writeCells(sb *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(" | ")
		}
		if i == len(cells)-1 {
			// last column is not padded to keep lines free of trailing spaces
			sb.WriteString(cell)
		} else {
			fmt.Fprintf(sb, "%-*s", widths[i], cell)
		}
	}
	sb.WriteByte('\n')
}

func writeSeparator(sb *strings.Builder, widths []int) {
	for i, width := range widths {
		if i > 0 {
			sb.WriteString("-+-")
		}
		sb.WriteString(strings.Repeat("-", width))
	}
	sb.WriteByte('\n')
}
