package cmd

import "golang.org/x/crypto/ssh"

// sshSessionWrapper adapts *ssh.Session to the session interface.
type sshSessionWrapper struct {
	s *ssh.Session
}

func (w sshSessionWrapper) Run(cmd string) error { return w.s.Run(cmd) }
