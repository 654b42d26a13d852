package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal check, mainly for tests and
// for a CLI flag forcing one of the modes.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// IsInteractive returns true if the simulator is run by a user with an
// interactive shell, false when output is piped or redirected.
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
