package cmd

import "io"

// sessionClient opens sessions whose stdout and stderr go to the given writers.
type sessionClient interface {
	NewSession(stdout, stderr io.Writer) (session, error)
}
