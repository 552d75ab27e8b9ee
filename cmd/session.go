package cmd

// session runs exactly one command on a remote host. Output is routed to the
// writers the session was opened with.
type session interface {
	Run(cmd string) error
	Close() error
}
