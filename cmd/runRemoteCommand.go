package cmd

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
)

// runRemoteCommand runs cmd in a fresh session and returns its exit status. A
// command that ran and exited non-zero is not an error; err is set only when
// the session failed or the timeout elapsed. Once it returns nothing more is
// written to stdout or stderr.
func runRemoteCommand(client sessionClient, cmd string, stdout, stderr io.Writer, timeout time.Duration) (int, error) {
	if timeout <= 0 {
		sess, err := client.NewSession(stdout, stderr)
		if err != nil {
			return -1, err
		}
		defer func() { _ = sess.Close() }()
		return remoteExitStatus(sess.Run(cmd))
	}

	outW := &cutoffWriter{w: stdout}
	errW := &cutoffWriter{w: stderr}
	defer outW.cut()
	defer errW.cut()
	sess, err := client.NewSession(outW, errW)
	if err != nil {
		return -1, err
	}
	defer func() { _ = sess.Close() }()

	type result struct {
		exitCode int
		err      error
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ch := make(chan result, 1)
	go func() {
		code, err := remoteExitStatus(sess.Run(cmd))
		ch <- result{code, err}
	}()

	select {
	case r := <-ch:
		return r.exitCode, r.err
	case <-ctx.Done():
		// Closing the channel makes the remote side hang up on the command.
		_ = sess.Close()
		select {
		case <-ch:
		case <-time.After(waitDelay):
		}
		return -1, context.DeadlineExceeded
	}
}

var errWriterCut = errors.New("output closed after timeout")

// cutoffWriter forwards to w until cut is called. Writes after that fail, so
// session copy goroutines still draining a timed-out command cannot touch w.
type cutoffWriter struct {
	mu     sync.Mutex
	w      io.Writer
	closed bool
}

func (c *cutoffWriter) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, errWriterCut
	}
	return c.w.Write(p)
}

func (c *cutoffWriter) cut() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func remoteExitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var ee *ssh.ExitError
	if errors.As(err, &ee) && ee.Signal() == "" {
		return ee.ExitStatus(), nil
	}
	return -1, err
}
