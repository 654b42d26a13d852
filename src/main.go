package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattisv/circuitsim/src/circuit"
	"github.com/mattisv/circuitsim/src/config"
	"github.com/mattisv/circuitsim/src/environment"
	"github.com/mattisv/circuitsim/src/logic"
	"github.com/mattisv/circuitsim/src/render"
	"github.com/mattisv/circuitsim/src/tui"
)

const settingsPath = "circuitsim.yaml"

func main() {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		slog.Error("failed to load settings", "path", settingsPath, "error", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		// expression given on the command line, no interactive session
		expression := strings.Join(os.Args[1:], " ")
		if err := runOnce(expression, settings); err != nil {
			slog.Error("failed to process expression", "expression", expression, "error", err)
			os.Exit(1)
		}
		return
	}

	if !environment.IsInteractive() {
		fmt.Fprintln(os.Stderr, "usage: circuitsim <expression>")
		os.Exit(2)
	}

	runInteractive(tui.New(), settings)
}

// runOnce handles the non-interactive path: compile one expression, print its
// diagram and truth table, done.
func runOnce(expression string, settings *config.Settings) error {
	c, err := compile(expression, settings)
	if err != nil {
		return err
	}

	fmt.Print(render.Diagram(c))
	fmt.Println()
	fmt.Print(render.TruthTable(circuit.GenerateTruthTable(c), c.Inputs))
	return nil
}

// compile runs the expression through the whole front half of the pipeline:
// parse, lower to a gate graph, and check the variable ceiling.
func compile(expression string, settings *config.Settings) (*circuit.Circuit, error) {
	ast, err := logic.Parse(expression)
	if err != nil {
		return nil, err
	}

	c, err := circuit.Build(ast)
	if err != nil {
		return nil, err
	}

	if len(c.Inputs) > settings.MaxVariables {
		return nil, fmt.Errorf("expression uses %d variables, the configured limit is %d", len(c.Inputs), settings.MaxVariables)
	}

	return c, nil
}

func runInteractive(t *tui.TUI, settings *config.Settings) {
	printBanner(t)

	for {
		expression, ok := t.ReadLine("Enter your logic expression (or 'quit' to exit): ")
		if !ok || strings.EqualFold(expression, "quit") {
			t.Printf("\nThank you for using the logic circuit simulator!\n")
			return
		}
		if expression == "" {
			t.Printf("Error: expression cannot be empty. Please try again.\n\n")
			continue
		}

		c, err := compile(expression, settings)
		if err != nil {
			t.Printf("Error: %v\nPlease check your expression and try again.\n\n", err)
			continue
		}

		t.Printf("\nCircuit generated with %d gates\n", len(c.Gates))
		t.Printf("Input variables: %s\n\n", strings.Join(c.Inputs, ", "))
		t.Printf("%s\n", render.Diagram(c))

		rows := circuit.GenerateTruthTable(c)
		t.Printf("%s\n", render.TruthTable(rows, c.Inputs))

		if t.AskForever("Save the truth table as CSV? (y/n): ") {
			saveTruthTable(t, settings, expression, c.Inputs, rows)
		}

		if t.AskForever("Test the circuit interactively? (y/n): ") {
			testInteractively(t, c)
		}

		if !t.AskForever("\nCreate another circuit? (y/n): ") {
			t.Printf("\nThank you for using the logic circuit simulator!\n")
			return
		}
		t.Printf("\n")
	}
}

func printBanner(t *tui.TUI) {
	t.Printf("%s\n", strings.Repeat("=", 60))
	t.Printf("        LOGIC CIRCUIT SIMULATOR\n")
	t.Printf("%s\n", strings.Repeat("=", 60))
	t.Printf("Convert propositional logic into circuits and truth tables.\n\n")
	t.Printf("Supported operators:\n")
	t.Printf("  - AND: logical conjunction\n")
	t.Printf("  - OR:  logical disjunction\n")
	t.Printf("  - NOT: logical negation\n")
	t.Printf("  - Use parentheses () for grouping\n\n")
	t.Printf("Example: (A AND B) OR (NOT C)\n")
	t.Printf("%s\n\n", strings.Repeat("=", 60))
}

func saveTruthTable(t *tui.TUI, settings *config.Settings, expression string, inputs []string, rows []circuit.Row) {
	path := filepath.Join(settings.OutputDir, csvFileName(expression))
	if err := config.WriteTruthTableToCSV(path, inputs, rows); err != nil {
		slog.Error("failed to save truth table", "path", path, "error", err)
		t.Printf("Could not save the truth table: %v\n", err)
		return
	}
	t.Printf("Saved to %s\n", path)
}

// csvFileName derives a filesystem-friendly name from the expression.
func csvFileName(expression string) string {
	name := strings.ReplaceAll(expression, " ", "_")
	if len(name) > 30 {
		name = name[:30]
	}
	return "circuit_" + name + ".csv"
}

// testInteractively lets the user probe the circuit with hand-picked values.
// A variable left blank stays unset and evaluates as 0.
func testInteractively(t *tui.TUI, c *circuit.Circuit) {
	t.Printf("\nEnter values for each variable (1 for true, 0 for false).\n")
	t.Printf("Leave a variable blank to let it default to 0.\n\n")

	for {
		assignment := make(map[string]bool, len(c.Inputs))
		for _, name := range c.Inputs {
			value, set, ok := readBit(t, name)
			if !ok {
				return
			}
			if set {
				assignment[name] = value
			}
		}

		if missing := c.MissingVariables(assignment); len(missing) > 0 {
			t.Printf("  Unset, defaulting to 0: %s\n", strings.Join(missing, ", "))
		}
		t.Printf("  Output = %s\n\n", render.Bit(c.Evaluate(assignment)))

		if !t.AskForever("Test another combination? (y/n): ") {
			return
		}
		t.Printf("\n")
	}
}

// readBit asks for a single variable value. It returns set=false when the
// user leaves the variable blank, and ok=false when the input is exhausted.
func readBit(t *tui.TUI, name string) (value, set, ok bool) {
	for {
		answer, stillReading := t.ReadLine(fmt.Sprintf("  %s = ", name))
		if !stillReading {
			return false, false, false
		}

		switch answer {
		case "":
			return false, false, true
		case "0":
			return false, true, true
		case "1":
			return true, true, true
		}
		t.Printf("    Invalid input. Use 0 or 1.\n")
	}
}
