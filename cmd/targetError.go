package cmd

import (
	"errors"
	"fmt"
)

// errNonZeroExit is the cause recorded when --strict-exit fails a target on
// its exit status alone.
var errNonZeroExit = errors.New("non-zero exit status")

// targetError reports a failed batch target. Err is nil when the failure was
// detected from the [error] marker in Stderr.
type targetError struct {
	Package string
	Target  string
	Stderr  string
	Err     error
}

func (e *targetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("build package: %s target: %s failed! ==> %v", e.Package, e.Target, e.Err)
	}
	return fmt.Sprintf("build package: %s target: %s failed! ==> %s", e.Package, e.Target, e.Stderr)
}

func (e *targetError) Unwrap() error { return e.Err }

// exitStatusError carries a single-mode command's non-zero exit status out to
// Execute, which exits with it.
type exitStatusError struct {
	code int
}

func (e *exitStatusError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
