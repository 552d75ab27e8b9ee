package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExit records the code Execute would exit with; -1 means no exit.
func stubExit(t *testing.T) *int {
	t.Helper()
	origExit := exitFunc
	t.Cleanup(func() { exitFunc = origExit })
	code := -1
	exitFunc = func(c int) { code = c }
	return &code
}

// Happy path: Execute() should not call exitFunc when rootCmd succeeds.
func TestExecute_Success_NoExit(t *testing.T) {
	resetConfig()
	runs := stubLocalRuns(t, nil)
	code := stubExit(t)

	mf := writeTemp(t, t.TempDir(), "module_info.json", threeTargets)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--manifest", mf})

	Execute()

	require.Equal(t, -1, *code)
	require.Len(t, *runs, 3)
}

// Single mode hands the child's exit status through unchanged.
func TestExecute_SingleMode_PropagatesExitStatus(t *testing.T) {
	resetConfig()
	stubLocalRuns(t, func(line string, stdout, stderr io.Writer) (int, error) {
		return 7, nil
	})
	code := stubExit(t)

	mf := writeTemp(t, t.TempDir(), "module_info.json", threeTargets)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--manifest", mf, "--target", "a"})

	Execute()

	require.Equal(t, 7, *code)
}

// Sad path: a failed batch target is printed to stderr and exits 1.
func TestExecute_BatchFailure_StderrExit1(t *testing.T) {
	resetConfig()
	stubLocalRuns(t, func(line string, stdout, stderr io.Writer) (int, error) {
		_, _ = io.WriteString(stderr, "[error] tb timeout\n")
		return 0, nil
	})
	code := stubExit(t)

	mf := writeTemp(t, t.TempDir(), "module_info.json", threeTargets)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--manifest", mf})

	// Capture stderr
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	Execute()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	require.Contains(t, buf.String(), "build package: SimpleL2 target: a failed! ==> [error] tb timeout")
	require.Equal(t, 1, *code)
}
