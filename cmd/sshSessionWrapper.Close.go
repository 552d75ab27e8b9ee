package cmd

// Close closes the underlying ssh.Session.
func (w sshSessionWrapper) Close() error {
	return w.s.Close()
}
