package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattisv/circuitsim/src/circuit"
)

// WriteTruthTableToCSV writes a truth table to a CSV file: a header record
// with one column per input variable plus Output, then one record per row
// with 0/1 cells.
func WriteTruthTableToCSV(path string, inputs []string, rows []circuit.Row) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// this isn't an error enough to stop execution. It's just to make it
		// easier for the user to find the file. Best effort.
		absPath = path
	}

	file, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", absPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := append(append([]string{}, inputs...), "Output")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header %v: %w", header, err)
	}

	for _, row := range rows {
		record := make([]string, 0, len(inputs)+1)
		for _, name := range inputs {
			record = append(record, formatBit(row.Values[name]))
		}
		record = append(record, formatBit(row.Output))

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %v: %w", record, err)
		}
	}

	return nil
}

func formatBit(value bool) string {
	if value {
		return "1"
	}
	return "0"
}
