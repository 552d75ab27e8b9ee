package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"
)

// waitDelay bounds how long a killed command may keep its output pipes open
// through grandchildren such as make or the simulator.
const waitDelay = 2 * time.Second

// runLocalCommand runs line through sh -c in dir, inheriting the environment
// and stdin. Like runRemoteCommand it reports a non-zero exit as a status, not
// an error.
func runLocalCommand(dir, line string, stdout, stderr io.Writer, timeout time.Duration) (int, error) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	c := exec.CommandContext(ctx, "sh", "-c", line)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = stdout
	c.Stderr = stderr
	c.WaitDelay = waitDelay

	err := c.Run()
	if err == nil {
		return 0, nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return -1, context.DeadlineExceeded
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) && ee.ExitCode() >= 0 {
		return ee.ExitCode(), nil
	}
	return -1, err
}
