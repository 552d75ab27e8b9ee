package cmd

import "os"

// exitFunc is os.Exit, swapped out by tests that check exit codes.
var exitFunc = os.Exit
