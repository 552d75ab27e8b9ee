package cmd

import (
	"errors"
	"fmt"
	"os"
)

// Execute runs the CLI. A single-mode target's exit status becomes the
// process exit status; any other error is printed and exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var status *exitStatusError
		if errors.As(err, &status) {
			exitFunc(status.code)
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
