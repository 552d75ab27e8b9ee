package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

// targetResult is the outcome of one batch target. err is a *targetError
// when the target failed.
type targetResult struct {
	entry    manifestEntry
	command  string
	exitCode int
	duration time.Duration
	stderr   string
	err      error
}

// runTarget executes one batch target with stdout streamed and stderr
// captured, then decides pass/fail: the [error] marker, a runner failure or
// timeout, and with strictExit a non-zero status.
func runTarget(runner commandRunner, e manifestEntry, line string, stdout io.Writer, timeout time.Duration, strictExit bool) targetResult {
	logger := log.WithFields(log.Fields{"package": e.Package, "target": e.Target})
	logger.WithField("command", line).Debug("running target")

	var stderr bytes.Buffer
	start := time.Now()
	code, runErr := runner.run(line, stdout, &stderr, timeout)
	res := targetResult{
		entry:    e,
		command:  line,
		exitCode: code,
		duration: time.Since(start),
		stderr:   stderr.String(),
	}

	var cause error
	switch {
	case runErr != nil:
		cause = runErr
	case strictExit && code != 0:
		cause = fmt.Errorf("%w: %d", errNonZeroExit, code)
	}
	if cause != nil || strings.Contains(res.stderr, errorMarker) {
		res.err = &targetError{Package: e.Package, Target: e.Target, Stderr: res.stderr, Err: cause}
	}

	logger.WithFields(log.Fields{
		"exit_code":   code,
		"duration":    res.duration.Round(time.Millisecond),
		"stderr_size": humanize.Bytes(uint64(stderr.Len())),
		"passed":      res.err == nil,
	}).Info("target finished")
	return res
}
