// Package spinner shows survey progress on interactive terminals.
package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

var loader *spinner.Spinner

// StartSpinner starts the CLI loading spinner. It is a no-op when stdout
// is not a terminal so piped output stays clean.
func StartSpinner(suffix string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = " " + suffix
	loader.Start()
}

// StopSpinner stops the CLI loading spinner.
func StopSpinner() {
	if loader != nil {
		loader.Stop()
		loader = nil
	}
}
