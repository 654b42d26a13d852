package tui

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// TUI handles all console interaction for the simulator. Input and output
// default to stdin/stdout but can be replaced, mainly in tests.
type TUI struct {
	input  *bufio.Scanner
	output io.Writer
}

func New() *TUI {
	return &TUI{
		input:  bufio.NewScanner(os.Stdin),
		output: os.Stdout,
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = bufio.NewScanner(input)
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// Printf writes formatted text to the output.
func (t *TUI) Printf(format string, a ...any) {
	fmt.Fprintf(t.output, format, a...)
}

// ReadLine prints the prompt and returns the next input line with surrounding
// whitespace trimmed. The second return value is false once the input is
// exhausted.
func (t *TUI) ReadLine(prompt string) (string, bool) {
	fmt.Fprint(t.output, prompt)

	if !t.input.Scan() {
		if err := t.input.Err(); err != nil {
			slog.Error("failed to read user input", "error", err)
		}
		return "", false
	}

	return strings.TrimSpace(t.input.Text()), true
}

// AskForever repeats the question until the user answers yes or no. An empty
// answer, or running out of input, counts as no.
func (t *TUI) AskForever(question string, a ...any) bool {
	for {
		response, ok := t.ReadLine(fmt.Sprintf(question, a...))
		if !ok {
			return false
		}

		switch strings.ToLower(response) {
		case "y", "yes":
			return true
		case "n", "no", "":
			return false
		}
	}
}
