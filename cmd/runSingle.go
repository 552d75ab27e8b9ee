package cmd

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

// runSingle streams one command's output to the console. Output is not
// inspected; a non-zero exit comes back as *exitStatusError.
func runSingle(runner commandRunner, line string, stdout, stderr io.Writer, timeout time.Duration) error {
	log.WithFields(log.Fields{"command": line, "executor": runner.where()}).Info("running unit test")
	code, err := runner.run(line, stdout, stderr, timeout)
	if err != nil {
		return fmt.Errorf("run %q: %w", line, err)
	}
	if code != 0 {
		return &exitStatusError{code: code}
	}
	return nil
}
