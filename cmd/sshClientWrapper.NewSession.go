package cmd

import (
	"errors"
	"io"
)

// NewSession opens an exec channel on the underlying *ssh.Client with the
// remote stdout and stderr kept apart, so the [error] marker check only ever
// sees stderr.
func (w sshClientWrapper) NewSession(stdout, stderr io.Writer) (session, error) {
	if w.c == nil {
		return nil, errors.New("nil ssh client")
	}
	s, err := w.c.NewSession()
	if err != nil {
		return nil, err
	}
	s.Stdout = stdout
	s.Stderr = stderr
	return sshSessionWrapper{s}, nil
}
