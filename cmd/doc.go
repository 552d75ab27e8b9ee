// Package cmd implements the test-all command-line interface.
//
// test-all reads the module_info.json manifest of the HDL tree and runs the
// unit tests it lists. Without --target every entry flagged unit_test runs in
// manifest order and the first one whose stderr carries the [error] marker
// stops the run. With --target a single unit test runs with its output
// streamed to the console.
//
// rootCmd.go holds the main flow, targetCommand.go renders the make command
// lines, runBatch.go and runSingle.go drive the two modes, and commandRunner.go
// picks between the local shell and a remote build host reached over SSH.
package cmd
